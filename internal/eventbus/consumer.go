package eventbus

import "context"

// Consumer handles one event type. Consume may be retried, so it must be
// idempotent per event ID.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	// GetWorkerCount is the number of goroutines the bus starts for it.
	GetWorkerCount() int
}
