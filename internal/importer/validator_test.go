package importer

import (
	"testing"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMapping() ColumnMapping {
	return ColumnMapping{
		FieldDate:        "Fecha",
		FieldDescription: "Descripción",
		FieldAmount:      "Monto",
		FieldCategory:    "Categoría",
		FieldWallet:      "Billetera",
	}.Clone()
}

func withKind(m ColumnMapping) ColumnMapping {
	m = m.Clone()
	m[FieldKind] = "Tipo"
	return m
}

func row(date, amount, category string) Row {
	return Row{
		"Fecha":       date,
		"Descripción": "Compra",
		"Monto":       amount,
		"Categoría":   category,
		"Billetera":   "Efectivo",
	}
}

func TestValidateRow_SignDerivedKind(t *testing.T) {
	refs := testReferences()
	mapping := baseMapping()

	expense, problems := ValidateRow(row("2024-07-15", "-150.00", "Comida"), 2, mapping, refs)
	require.Empty(t, problems)
	assert.Equal(t, domain.KindExpense, expense.Kind)
	assert.True(t, decimal.RequireFromString("150.00").Equal(expense.Amount))

	income, problems := ValidateRow(row("2024-07-15", "200", "Salario"), 3, mapping, refs)
	require.Empty(t, problems)
	assert.Equal(t, domain.KindIncome, income.Kind)
	assert.True(t, decimal.RequireFromString("200.00").Equal(income.Amount))

	_, problems = ValidateRow(row("2024-07-15", "0", "Comida"), 4, mapping, refs)
	assert.Equal(t, []string{"cannot determine kind from a zero amount"}, problems)
}

func TestValidateRow_DatePrecedence(t *testing.T) {
	refs := testReferences()
	mapping := baseMapping()

	c, problems := ValidateRow(row("15/07/2024", "-1", "Comida"), 2, mapping, refs)
	require.Empty(t, problems)
	assert.Equal(t, "2024-07-15", c.Date)

	c, problems = ValidateRow(row("2024-07-15", "-1", "Comida"), 2, mapping, refs)
	require.Empty(t, problems)
	assert.Equal(t, "2024-07-15", c.Date)

	_, problems = ValidateRow(row("31/13/2024", "-1", "Comida"), 2, mapping, refs)
	assert.Equal(t, []string{`invalid date "31/13/2024"`}, problems)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-07-15", "2024-07-15"},
		{"2024-7-5", "2024-07-05"},
		{"15/07/2024", "2024-07-15"},
		{"01/02/2024", "2024-02-01"},
		{"07/15/2024", "2024-07-15"},
		{"15-07-2024", "2024-07-15"},
		{"07-15-2024", "2024-07-15"},
		{"2024/07/15", "2024-07-15"},
		{" 2024-07-15 ", "2024-07-15"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"31/13/2024", "30/02/2024", "yesterday", "2024-13-45", "15.07.2024"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		sign  int
	}{
		{"-150.00", "150", -1},
		{"200", "200", 1},
		{"$ 1500,75", "1500.75", 1},
		{"- 42", "42", -1},
		{"0", "0", 0},
		{"-0,00", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, sign, err := ParseAmount(tt.input)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(amount), "got %s", amount)
			assert.Equal(t, tt.sign, sign)
		})
	}

	for _, bad := range []string{"abc", "1,234.56", "--5", "1-2"} {
		_, _, err := ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Kind
		ok    bool
	}{
		{"Ingreso", domain.KindIncome, true},
		{"INCOME", domain.KindIncome, true},
		{"Credit", domain.KindIncome, true},
		{"Crédito", domain.KindIncome, true},
		{"Egreso", domain.KindExpense, true},
		{"gasto fijo", domain.KindExpense, true},
		{"Expense", domain.KindExpense, true},
		{"Débito", domain.KindExpense, true},
		{"debit", domain.KindExpense, true},
		{"transfer", "", false},
		{"  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, ok := ClassifyKind(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestValidateRow_CategoryKindMismatch(t *testing.T) {
	refs := testReferences()

	explicit := row("2024-07-15", "-20", "Comida")
	explicit["Tipo"] = "Ingreso"
	_, problems := ValidateRow(explicit, 2, withKind(baseMapping()), refs)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "kind mismatch")

	explicit["Monto"] = "20"
	_, problems = ValidateRow(explicit, 2, withKind(baseMapping()), refs)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "kind mismatch")

	_, problems = ValidateRow(row("2024-07-15", "20", "Comida"), 2, baseMapping(), refs)
	require.Len(t, problems, 1)
	assert.Equal(t, `kind mismatch: category "Comida" is Expense but the row is Income`, problems[0])
}

func TestValidateRow_ExplicitKindIgnoresSign(t *testing.T) {
	r := row("2024-07-15", "-3000", "Salario")
	r["Tipo"] = "Ingreso"

	c, problems := ValidateRow(r, 2, withKind(baseMapping()), testReferences())

	require.Empty(t, problems)
	assert.Equal(t, domain.KindIncome, c.Kind)
	assert.True(t, decimal.NewFromInt(3000).Equal(c.Amount))
	assert.Equal(t, "8", c.CategoryID)
}

func TestValidateRow_ExplicitKindProblems(t *testing.T) {
	refs := testReferences()

	r := row("2024-07-15", "0", "Comida")
	r["Tipo"] = "Gasto"
	_, problems := ValidateRow(r, 2, withKind(baseMapping()), refs)
	assert.Equal(t, []string{"amount must be greater than zero"}, problems)

	r = row("2024-07-15", "-5", "Comida")
	r["Tipo"] = "transfer"
	_, problems = ValidateRow(r, 2, withKind(baseMapping()), refs)
	assert.Equal(t, []string{`unrecognized kind "transfer"`}, problems)

	r["Tipo"] = ""
	_, problems = ValidateRow(r, 2, withKind(baseMapping()), refs)
	assert.Equal(t, []string{`unrecognized kind ""`}, problems)
}

func TestValidateRow_ResolvesReferences(t *testing.T) {
	r := row("2024-07-15", "-12.5", " comida ")
	r["Billetera"] = "BANCO NACIÓN"
	r["Etiquetas"] = " viaje, ,trabajo ,"
	mapping := baseMapping()
	mapping[FieldTags] = "Etiquetas"

	c, problems := ValidateRow(r, 6, mapping, testReferences())

	require.Empty(t, problems)
	assert.Equal(t, domain.Candidate{
		RowNumber:   6,
		Date:        "2024-07-15",
		Description: "Compra",
		Amount:      c.Amount,
		Kind:        domain.KindExpense,
		CategoryID:  "7",
		WalletID:    "w-bank",
		Tags:        []string{"viaje", "trabajo"},
	}, c)
	assert.Equal(t, "12.5", c.Amount.String())
}

func TestValidateRow_NotFoundWithSuggestion(t *testing.T) {
	r := row("2024-07-15", "-5", "Comdia")
	r["Billetera"] = "Tarjeta"

	_, problems := ValidateRow(r, 2, baseMapping(), testReferences())

	assert.Equal(t, []string{
		`category not found: "Comdia" (did you mean "Comida"?)`,
		`wallet not found: "Tarjeta"`,
	}, problems)
}

func TestValidateRow_CollectsEveryProblem(t *testing.T) {
	r := Row{"Fecha": "nope", "Descripción": " ", "Monto": "", "Categoría": "", "Billetera": ""}

	_, problems := ValidateRow(r, 2, baseMapping(), testReferences())

	assert.Equal(t, []string{
		`invalid date "nope"`,
		"description is required",
		"amount is required",
		"category is required",
		"wallet is required",
	}, problems)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags(" a, b,,c "))
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{}, ParseTags(" , ,"))
}

func TestValidate_FailIsolated(t *testing.T) {
	rows := []Row{
		row("2024-07-01", "-10", "Comida"),
		row("not a date", "-10", "Comida"),
		row("2024-07-03", "-10", "Ropa"),
		row("2024-07-04", "500", "Salario"),
	}

	v := Validate(rows, baseMapping(), testReferences())

	require.Len(t, v.Candidates, 2)
	assert.Equal(t, 2, v.Candidates[0].RowNumber)
	assert.Equal(t, 5, v.Candidates[1].RowNumber)

	invalid := v.Invalid()
	require.Len(t, invalid, 2)
	assert.Equal(t, 3, invalid[0].RowNumber)
	assert.Equal(t, 4, invalid[1].RowNumber)
	assert.Equal(t, `Row 3: invalid date "not a date"`, invalid[0].ErrorLine())

	require.Len(t, v.Outcomes, 4)
	assert.Equal(t, domain.RowStatusValid, v.Outcomes[0].Status)
	assert.Equal(t, domain.RowStatusInvalid, v.Outcomes[1].Status)
}
