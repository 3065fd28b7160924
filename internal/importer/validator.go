package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudflare/ahocorasick"
	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/shopspring/decimal"
)

// DateLayouts are tried in order; the first layout that yields a real
// calendar date wins. Day and month accept one or two digits.
var DateLayouts = []string{
	"2006-1-2", // yyyy-MM-dd
	"2/1/2006", // dd/MM/yyyy
	"1/2/2006", // MM/dd/yyyy
	"2-1-2006", // dd-MM-yyyy
	"1-2-2006", // MM-dd-yyyy
	"2006/1/2", // yyyy/MM/dd
}

// DateFormat is the normalized candidate date format.
const DateFormat = "2006-01-02"

// FirstRowNumber is the number reported for the first data row; the header is row 1.
const FirstRowNumber = 2

var (
	errInvalidDate   = errors.New("invalid date")
	errInvalidAmount = errors.New("invalid amount")
)

var (
	incomeMatcher  = ahocorasick.NewStringMatcher([]string{"ingreso", "income", "credit", "crédito", "credito", "abono"})
	expenseMatcher = ahocorasick.NewStringMatcher([]string{"egreso", "gasto", "expense", "debit", "débito", "debito", "cargo"})
)

// Validation is the outcome of checking every row of a file in order.
type Validation struct {
	Candidates []domain.Candidate
	Outcomes   []domain.RowOutcome
}

// Invalid returns the rejected rows, in file order.
func (v Validation) Invalid() []domain.RowOutcome {
	invalid := []domain.RowOutcome{}
	for _, o := range v.Outcomes {
		if o.Status == domain.RowStatusInvalid {
			invalid = append(invalid, o)
		}
	}
	return invalid
}

// Validate checks every row against mapping and refs. A bad row is recorded
// and skipped; it never stops the rows after it.
func Validate(rows []Row, mapping ColumnMapping, refs *References) Validation {
	v := Validation{
		Candidates: make([]domain.Candidate, 0, len(rows)),
		Outcomes:   make([]domain.RowOutcome, 0, len(rows)),
	}

	for i, row := range rows {
		rowNumber := i + FirstRowNumber
		candidate, problems := ValidateRow(row, rowNumber, mapping, refs)
		if len(problems) > 0 {
			v.Outcomes = append(v.Outcomes, domain.RowOutcome{
				RowNumber: rowNumber,
				Status:    domain.RowStatusInvalid,
				Message:   strings.Join(problems, "; "),
			})
			continue
		}
		v.Candidates = append(v.Candidates, candidate)
		v.Outcomes = append(v.Outcomes, domain.RowOutcome{
			RowNumber: rowNumber,
			Status:    domain.RowStatusValid,
		})
	}

	return v
}

// ValidateRow runs every check on one row and returns the candidate together
// with all problems found. The candidate is only meaningful when no problems are returned.
func ValidateRow(row Row, rowNumber int, mapping ColumnMapping, refs *References) (domain.Candidate, []string) {
	var problems []string
	candidate := domain.Candidate{RowNumber: rowNumber, Tags: []string{}}

	value := func(f Field) string {
		if !mapping.Mapped(f) {
			return ""
		}
		return strings.TrimSpace(row[mapping[f]])
	}

	if raw := value(FieldDate); raw == "" {
		problems = append(problems, "date is required")
	} else if date, err := ParseDate(raw); err != nil {
		problems = append(problems, fmt.Sprintf("%s %q", errInvalidDate, raw))
	} else {
		candidate.Date = date
	}

	candidate.Description = value(FieldDescription)
	if candidate.Description == "" {
		problems = append(problems, "description is required")
	}

	sign, amountOK := 0, false
	if raw := value(FieldAmount); raw == "" {
		problems = append(problems, "amount is required")
	} else if amount, s, err := ParseAmount(raw); err != nil {
		problems = append(problems, fmt.Sprintf("%s %q", errInvalidAmount, raw))
	} else {
		candidate.Amount, sign, amountOK = amount, s, true
	}

	if mapping.Mapped(FieldKind) {
		raw := value(FieldKind)
		if kind, ok := ClassifyKind(raw); ok {
			candidate.Kind = kind
			if amountOK && sign == 0 {
				problems = append(problems, "amount must be greater than zero")
			}
		} else {
			problems = append(problems, fmt.Sprintf("unrecognized kind %q", raw))
		}
	} else if amountOK {
		switch {
		case sign > 0:
			candidate.Kind = domain.KindIncome
		case sign < 0:
			candidate.Kind = domain.KindExpense
		default:
			problems = append(problems, "cannot determine kind from a zero amount")
		}
	}

	if raw := value(FieldCategory); raw == "" {
		problems = append(problems, "category is required")
	} else if ref, ok := refs.Category(raw); !ok {
		problems = append(problems, notFound("category", raw, refs.SuggestCategory(raw)))
	} else if candidate.Kind != "" && ref.Kind != candidate.Kind {
		problems = append(problems, fmt.Sprintf("kind mismatch: category %q is %s but the row is %s", ref.Name, ref.Kind, candidate.Kind))
	} else {
		candidate.CategoryID = ref.ID
	}

	if raw := value(FieldWallet); raw == "" {
		problems = append(problems, "wallet is required")
	} else if id, ok := refs.Wallet(raw); !ok {
		problems = append(problems, notFound("wallet", raw, refs.SuggestWallet(raw)))
	} else {
		candidate.WalletID = id
	}

	candidate.Tags = ParseTags(value(FieldTags))

	return candidate, problems
}

func notFound(what, raw, suggestion string) string {
	if suggestion != "" {
		return fmt.Sprintf("%s not found: %q (did you mean %q?)", what, raw, suggestion)
	}
	return fmt.Sprintf("%s not found: %q", what, raw)
}

// ParseDate normalizes raw to yyyy-MM-dd using DateLayouts.
func ParseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateFormat), nil
		}
	}
	return "", errInvalidDate
}

// ParseAmount keeps digits, '.', ',' and '-', reads ',' as the decimal
// separator and returns the absolute value with the sign (-1, 0 or 1).
func ParseAmount(raw string) (decimal.Decimal, int, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, raw)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return decimal.Zero, 0, errInvalidAmount
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("%w: %w", errInvalidAmount, err)
	}

	return amount.Abs(), amount.Sign(), nil
}

// ClassifyKind reads a free-text type cell. Income keywords are checked first.
func ClassifyKind(raw string) (domain.Kind, bool) {
	text := []byte(strings.ToLower(strings.TrimSpace(raw)))
	if len(text) == 0 {
		return "", false
	}
	if len(incomeMatcher.MatchThreadSafe(text)) > 0 {
		return domain.KindIncome, true
	}
	if len(expenseMatcher.MatchThreadSafe(text)) > 0 {
		return domain.KindExpense, true
	}
	return "", false
}

// ParseTags splits a comma separated cell, dropping blank entries.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
