package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

type Wallet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Candidate is a validated row ready to be handed to the backend.
type Candidate struct {
	RowNumber   int             `json:"row_number"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        Kind            `json:"kind"`
	CategoryID  string          `json:"category_id"`
	WalletID    string          `json:"wallet_id"`
	Tags        []string        `json:"tags"`
}

type RowStatus string

const (
	RowStatusValid           RowStatus = "valid"
	RowStatusInvalid         RowStatus = "invalid"
	RowStatusSubmittedOK     RowStatus = "submitted-ok"
	RowStatusSubmittedFailed RowStatus = "submitted-failed"
)

type RowOutcome struct {
	RowNumber     int       `json:"row_number" csv:"row"`
	Status        RowStatus `json:"status" csv:"status"`
	Message       string    `json:"message,omitempty" csv:"message"`
	TransactionID string    `json:"transaction_id,omitempty" csv:"transaction_id"`
}

// Failed reports whether the outcome belongs in the error list.
func (o RowOutcome) Failed() bool {
	return o.Status == RowStatusInvalid || o.Status == RowStatusSubmittedFailed
}

// ErrorLine renders the outcome as shown in the error list: "Row <n>: <reason>".
func (o RowOutcome) ErrorLine() string {
	return fmt.Sprintf("Row %d: %s", o.RowNumber, o.Message)
}

type RunStatus string

const (
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// ImportRun tracks one execution of an import session.
type ImportRun struct {
	ID            string       `json:"id"`
	SessionID     string       `json:"session_id"`
	UserID        string       `json:"user_id"`
	Status        RunStatus    `json:"status"`
	ProcessedRows int          `json:"processed_rows"`
	TotalRows     int          `json:"total_rows"`
	SuccessCount  int          `json:"success_count"`
	FailedCount   int          `json:"failed_count"`
	Errors        []string     `json:"-"`
	Outcomes      []RowOutcome `json:"-"`
	FailureReason string       `json:"failure_reason,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
}

// Percent is the share of candidate rows already submitted.
func (r ImportRun) Percent() float64 {
	if r.TotalRows == 0 {
		if r.Status == RunStatusCompleted {
			return 100
		}
		return 0
	}
	return float64(r.ProcessedRows) / float64(r.TotalRows) * 100
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
