package importer

import (
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/grachmannico95/wallet-import/internal/domain"
)

// Field is a transaction attribute a file column can be mapped to.
type Field string

const (
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldKind        Field = "kind"
	FieldCategory    Field = "category"
	FieldWallet      Field = "wallet"
	FieldTags        Field = "tags"
)

// Fields lists every mappable field in display order.
var Fields = []Field{
	FieldDate,
	FieldDescription,
	FieldAmount,
	FieldKind,
	FieldCategory,
	FieldWallet,
	FieldTags,
}

// RequiredFields must all be mapped before an import can start.
var RequiredFields = []Field{
	FieldDate,
	FieldDescription,
	FieldAmount,
	FieldCategory,
	FieldWallet,
}

func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, s)
}

func (f Field) Required() bool {
	for _, r := range RequiredFields {
		if f == r {
			return true
		}
	}
	return false
}

// ColumnMapping assigns a source header to each field. An empty header means
// the field is not mapped.
type ColumnMapping map[Field]string

// Clone returns an independent copy holding an entry for every field.
func (m ColumnMapping) Clone() ColumnMapping {
	out := make(ColumnMapping, len(Fields))
	for _, f := range Fields {
		out[f] = m[f]
	}
	return out
}

func (m ColumnMapping) Mapped(f Field) bool {
	return m[f] != ""
}

// Missing returns the required fields that have no header, in field order.
func (m ColumnMapping) Missing() []Field {
	missing := []Field{}
	for _, f := range RequiredFields {
		if !m.Mapped(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func (m ColumnMapping) Complete() bool {
	return len(m.Missing()) == 0
}

// headerKeywords drives GuessMapping. Keywords are matched against headers
// lowercased with spaces removed.
var headerKeywords = map[Field][]string{
	FieldDate:        {"fecha", "date", "día"},
	FieldDescription: {"desc", "concepto", "detalle", "detail", "memo", "nota", "note", "payee"},
	FieldAmount:      {"monto", "amount", "importe", "valor", "cantidad"},
	FieldKind:        {"tipo", "type", "kind", "naturaleza"},
	FieldCategory:    {"categor"},
	FieldWallet:      {"billetera", "wallet", "cuenta", "account", "cartera"},
	FieldTags:        {"etiqueta", "tag"},
}

// guessOrder resolves headers that match several fields: earlier fields claim first.
var guessOrder = []Field{
	FieldDate,
	FieldAmount,
	FieldCategory,
	FieldWallet,
	FieldTags,
	FieldKind,
	FieldDescription,
}

var headerMatcher, headerMatchField = buildKeywordMatcher(headerKeywords)

func buildKeywordMatcher(keywords map[Field][]string) (*ahocorasick.Matcher, []Field) {
	var (
		dictionary []string
		owners     []Field
	)
	for _, f := range Fields {
		for _, kw := range keywords[f] {
			dictionary = append(dictionary, kw)
			owners = append(owners, f)
		}
	}
	return ahocorasick.NewStringMatcher(dictionary), owners
}

func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "")
}

// GuessMapping suggests a mapping from header names. It never fails; fields
// without a plausible header stay unmapped and each header is used at most once.
func GuessMapping(headers []string) ColumnMapping {
	candidates := make([]map[Field]bool, len(headers))
	for i, h := range headers {
		candidates[i] = map[Field]bool{}
		for _, idx := range headerMatcher.MatchThreadSafe([]byte(normalizeHeader(h))) {
			candidates[i][headerMatchField[idx]] = true
		}
	}

	mapping := ColumnMapping{}
	taken := make([]bool, len(headers))
	for _, f := range guessOrder {
		for i, h := range headers {
			if !taken[i] && candidates[i][f] {
				mapping[f] = h
				taken[i] = true
				break
			}
		}
	}

	return mapping.Clone()
}

// PreviewRow holds the mapped values of one row. Unmapped fields are nil so
// they can be told apart from blank source values.
type PreviewRow map[Field]*string

// DefaultPreviewLimit is the number of rows shown under the current mapping.
const DefaultPreviewLimit = 5

// Preview projects the first limit rows through mapping. It has no side effects.
func Preview(rows []Row, mapping ColumnMapping, limit int) []PreviewRow {
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}

	preview := make([]PreviewRow, 0, limit)
	for _, row := range rows[:limit] {
		p := make(PreviewRow, len(Fields))
		for _, f := range Fields {
			header := mapping[f]
			if header == "" {
				p[f] = nil
				continue
			}
			value := row[header]
			p[f] = &value
		}
		preview = append(preview, p)
	}
	return preview
}
