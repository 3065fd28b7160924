package eventbus

import (
	"time"
)

type EventType string

const (
	EventTypeImportCompleted EventType = "import.completed"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Retries   int         `json:"retries"`
}

// ImportCompletedEvent is published once per finished import run.
type ImportCompletedEvent struct {
	RunID        string `json:"run_id"`
	SessionID    string `json:"session_id"`
	UserID       string `json:"user_id"`
	FileName     string `json:"file_name"`
	TotalRows    int    `json:"total_rows"`
	SuccessCount int    `json:"success_count"`
	FailedCount  int    `json:"failed_count"`
	Failed       bool   `json:"failed"`
	Reason       string `json:"reason,omitempty"`
}
