package importer

import (
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/grachmannico95/wallet-import/internal/domain"
)

// DefaultErrorDisplayLimit caps how many error lines a summary shows.
// The report itself keeps every error.
const DefaultErrorDisplayLimit = 50

// Report summarizes one import run over a whole file.
type Report struct {
	TotalRows    int                 `json:"total_rows"`
	Submitted    int                 `json:"submitted"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	Outcomes     []domain.RowOutcome `json:"outcomes"`
	Errors       []string            `json:"errors"`
}

// NewReport merges validation and submission outcomes into one list ordered
// by row number, so a row's position never depends on the stage that rejected it.
func NewReport(totalRows int, validation Validation, result Result) Report {
	outcomes := make([]domain.RowOutcome, 0, totalRows)
	outcomes = append(outcomes, validation.Invalid()...)
	outcomes = append(outcomes, result.Outcomes...)
	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].RowNumber < outcomes[j].RowNumber
	})

	errs := []string{}
	for _, o := range outcomes {
		if o.Failed() {
			errs = append(errs, o.ErrorLine())
		}
	}

	return Report{
		TotalRows:    totalRows,
		Submitted:    len(result.Outcomes),
		SuccessCount: result.SuccessCount,
		FailedCount:  len(errs),
		Outcomes:     outcomes,
		Errors:       errs,
	}
}

// Display returns at most limit error lines and how many were left out.
func (r Report) Display(limit int) ([]string, int) {
	return CapErrors(r.Errors, limit)
}

// CapErrors trims errs to limit entries; limit <= 0 means no cap.
func CapErrors(errs []string, limit int) ([]string, int) {
	if limit <= 0 || len(errs) <= limit {
		return errs, 0
	}
	return errs[:limit], len(errs) - limit
}

// WriteOutcomesCSV writes one line per row outcome with a header row.
func WriteOutcomesCSV(w io.Writer, outcomes []domain.RowOutcome) error {
	if outcomes == nil {
		outcomes = []domain.RowOutcome{}
	}
	return gocsv.Marshal(&outcomes, w)
}
