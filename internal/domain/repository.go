package domain

import "context"

// ReferenceSource is the backend view of a user's categories and wallets.
type ReferenceSource interface {
	FetchCategories(ctx context.Context, userID string) ([]Category, error)
	FetchWallets(ctx context.Context, userID string) ([]Wallet, error)
}

// TransactionCreator persists one candidate and returns the new record id.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, userID string, candidate Candidate) (string, error)
}

type NotificationSink interface {
	AddNotification(ctx context.Context, n Notification) error
	ListNotifications(ctx context.Context, userID string) ([]Notification, error)
}

// Backend groups everything the importer consumes from the hosted backend.
type Backend interface {
	ReferenceSource
	TransactionCreator
	NotificationSink
}

type Repository interface {
	// Run management
	CreateRun(ctx context.Context, run ImportRun) error
	GetRun(ctx context.Context, runID string) (*ImportRun, error)
	GetLatestRun(ctx context.Context, sessionID string) (*ImportRun, error)
	UpdateRunProgress(ctx context.Context, runID string, processed int) error
	CompleteRun(ctx context.Context, runID string, status RunStatus, result RunResult) error
	DeleteRuns(ctx context.Context, sessionID string) error

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}

// RunResult is what a finished run reports back to the run store.
type RunResult struct {
	SuccessCount  int
	FailedCount   int
	Errors        []string
	Outcomes      []RowOutcome
	FailureReason string
}
