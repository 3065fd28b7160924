package importer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV_Success(t *testing.T) {
	input := "Fecha,Descripción,Monto\n" +
		"2024-07-15,Café,-3.50\n" +
		"16/07/2024,\"Supermercado, centro\",-120\n"

	file, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"Fecha", "Descripción", "Monto"}, file.Headers)
	require.Len(t, file.Rows, 2)
	assert.Equal(t, "Café", file.Rows[0]["Descripción"])
	assert.Equal(t, "Supermercado, centro", file.Rows[1]["Descripción"])
	assert.Equal(t, "-120", file.Rows[1]["Monto"])
}

func TestParseCSV_KeepsValuesAsStrings(t *testing.T) {
	file, err := ParseCSV(strings.NewReader("Monto,Fecha\n007,2024-01-01\n"))

	require.NoError(t, err)
	assert.Equal(t, "007", file.Rows[0]["Monto"])
}

func TestParseCSV_StripsBOM(t *testing.T) {
	input := string(utf8BOM) + "Fecha,Monto\n2024-01-01,10\n"

	file, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "Fecha", file.Headers[0])
	assert.Equal(t, "2024-01-01", file.Rows[0]["Fecha"])
}

func TestParseCSV_SkipsBlankLines(t *testing.T) {
	input := "\nFecha,Monto\n\n2024-01-01,10\n,\n  ,  \n2024-01-02,20\n\n"

	file, err := ParseCSV(strings.NewReader(input))

	require.NoError(t, err)
	assert.Len(t, file.Rows, 2)
	assert.Equal(t, "20", file.Rows[1]["Monto"])
}

func TestParseCSV_IgnoresEmptyHeaderColumns(t *testing.T) {
	file, err := ParseCSV(strings.NewReader("Fecha,,Monto\n2024-01-01,ignored,10\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"Fecha", "Monto"}, file.Headers)
	assert.Equal(t, Row{"Fecha": "2024-01-01", "Monto": "10"}, file.Rows[0])
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		reason string
	}{
		{name: "empty file", input: "", reason: "file has no header row"},
		{name: "only blank lines", input: "\n\n\n", reason: "file has no header row"},
		{name: "header only", input: "Fecha,Monto\n", reason: "file has no data rows"},
		{name: "duplicate header", input: "Monto,Monto\n1,2\n", line: 1, reason: `duplicate header "Monto"`},
		{name: "field count mismatch", input: "Fecha,Monto\n2024-01-01,10,extra\n", line: 2},
		{name: "unterminated quote", input: "Fecha,Monto\n\"2024-01-01,10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ParseCSV(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.Nil(t, file)
			assert.ErrorIs(t, err, domain.ErrParse)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			if tt.line > 0 {
				assert.Equal(t, tt.line, parseErr.Line)
			}
			if tt.reason != "" {
				assert.Equal(t, tt.reason, parseErr.Reason)
			}
		})
	}
}

func TestParseFile_DispatchesOnExtension(t *testing.T) {
	file, err := ParseFile("movimientos.CSV", strings.NewReader("Fecha,Monto\n2024-01-01,10\n"))
	require.NoError(t, err)
	assert.Equal(t, "movimientos.CSV", file.Name)

	_, err = ParseFile("statement.pdf", strings.NewReader("%PDF"))
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), `unsupported file type ".pdf"`)
}

func TestParseXLSX_FirstSheet(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"Fecha", "Descripción", "Monto"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{"2024-07-15", "Café", "-3.50"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A4", &[]interface{}{"2024-07-16", "Taxi", "-12"}))
	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, wb.Close())

	file, err := ParseFile("movimientos.xlsx", bytes.NewReader(buf.Bytes()))

	require.NoError(t, err)
	assert.Equal(t, []string{"Fecha", "Descripción", "Monto"}, file.Headers)
	require.Len(t, file.Rows, 2)
	assert.Equal(t, "Taxi", file.Rows[1]["Descripción"])
	assert.Equal(t, "-3.50", file.Rows[0]["Monto"])
}

func TestParseXLSX_UnreadableWorkbook(t *testing.T) {
	_, err := ParseFile("broken.xlsx", strings.NewReader("not a workbook"))

	assert.ErrorIs(t, err, domain.ErrParse)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "unreadable workbook", parseErr.Reason)
}

func TestFile_HasHeader(t *testing.T) {
	file := &File{Headers: []string{"Fecha", "Monto"}}

	assert.True(t, file.HasHeader("Monto"))
	assert.False(t, file.HasHeader("monto"))
}
