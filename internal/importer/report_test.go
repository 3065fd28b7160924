package importer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport_ErrorsFollowRowOrder(t *testing.T) {
	validation := Validation{
		Outcomes: []domain.RowOutcome{
			{RowNumber: 2, Status: domain.RowStatusInvalid, Message: `invalid date "x"`},
			{RowNumber: 3, Status: domain.RowStatusValid},
			{RowNumber: 4, Status: domain.RowStatusValid},
			{RowNumber: 5, Status: domain.RowStatusInvalid, Message: "wallet is required"},
			{RowNumber: 9, Status: domain.RowStatusValid},
		},
	}
	result := Result{
		SuccessCount: 2,
		Outcomes: []domain.RowOutcome{
			{RowNumber: 3, Status: domain.RowStatusSubmittedOK, TransactionID: "a"},
			{RowNumber: 4, Status: domain.RowStatusSubmittedOK, TransactionID: "b"},
			{RowNumber: 9, Status: domain.RowStatusSubmittedFailed, Message: "remote error - timeout"},
		},
	}

	report := NewReport(5, validation, result)

	assert.Equal(t, []string{
		`Row 2: invalid date "x"`,
		"Row 5: wallet is required",
		"Row 9: remote error - timeout",
	}, report.Errors)
	assert.Equal(t, 5, report.TotalRows)
	assert.Equal(t, 3, report.Submitted)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 3, report.FailedCount)

	rows := make([]int, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		rows = append(rows, o.RowNumber)
	}
	assert.Equal(t, []int{2, 3, 4, 5, 9}, rows)
}

func TestReport_DisplayCap(t *testing.T) {
	var report Report
	for i := 0; i < 120; i++ {
		report.Errors = append(report.Errors, fmt.Sprintf("Row %d: bad", i+2))
	}

	shown, remaining := report.Display(DefaultErrorDisplayLimit)
	assert.Len(t, shown, 50)
	assert.Equal(t, 70, remaining)
	assert.Equal(t, "Row 51: bad", shown[49])
	assert.Len(t, report.Errors, 120)

	shown, remaining = report.Display(0)
	assert.Len(t, shown, 120)
	assert.Zero(t, remaining)

	shown, remaining = CapErrors([]string{"Row 2: x"}, 50)
	assert.Len(t, shown, 1)
	assert.Zero(t, remaining)
}

func TestWriteOutcomesCSV(t *testing.T) {
	var buf bytes.Buffer

	err := WriteOutcomesCSV(&buf, []domain.RowOutcome{
		{RowNumber: 2, Status: domain.RowStatusSubmittedOK, TransactionID: "tx-1"},
		{RowNumber: 3, Status: domain.RowStatusInvalid, Message: "category not found: \"Ropa\""},
	})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "row,status,message,transaction_id", lines[0])
	assert.Equal(t, "2,submitted-ok,,tx-1", lines[1])
	assert.Equal(t, `3,invalid,"category not found: ""Ropa""",`, lines[2])
}
