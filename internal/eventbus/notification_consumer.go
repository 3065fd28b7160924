package eventbus

import (
	"context"
	"fmt"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/grachmannico95/wallet-import/pkg/retry"
)

const NotificationTypeImport = "import"

// NotificationConsumer turns finished import runs into user notifications.
type NotificationConsumer struct {
	repo        domain.Repository
	sink        domain.NotificationSink
	logger      *logger.Logger
	workerCount int
}

func NewNotificationConsumer(repo domain.Repository, sink domain.NotificationSink, log *logger.Logger, workerCount int) *NotificationConsumer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &NotificationConsumer{
		repo:        repo,
		sink:        sink,
		logger:      log,
		workerCount: workerCount,
	}
}

func (nc *NotificationConsumer) Consume(ctx context.Context, event Event) error {
	// Check idempotency
	processed, err := nc.repo.IsEventProcessed(ctx, event.ID)
	if err != nil {
		nc.logger.Error(ctx, "Failed to check event processed status",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	if processed {
		nc.logger.Debug(ctx, "Event already processed, skipping",
			"event_id", event.ID,
		)
		return nil
	}

	payload, ok := event.Payload.(ImportCompletedEvent)
	if !ok {
		nc.logger.Error(ctx, "Invalid payload type for import completed event",
			"event_id", event.ID,
		)
		return retry.Permanent(fmt.Errorf("invalid payload type %T", event.Payload))
	}

	ctx = logger.WithSessionID(ctx, payload.SessionID)
	ctx = logger.WithUserID(ctx, payload.UserID)

	err = nc.sink.AddNotification(ctx, notificationFor(payload))
	if err != nil {
		nc.logger.Error(ctx, "Failed to add notification",
			"event_id", event.ID,
			"run_id", payload.RunID,
			"error", err,
		)
		return err
	}

	err = nc.repo.MarkEventProcessed(ctx, event.ID)
	if err != nil {
		nc.logger.Error(ctx, "Failed to mark event as processed",
			"event_id", event.ID,
			"error", err,
		)
		return err
	}

	nc.logger.Debug(ctx, "Import notification stored",
		"event_id", event.ID,
		"run_id", payload.RunID,
	)

	return nil
}

func (nc *NotificationConsumer) GetWorkerCount() int {
	return nc.workerCount
}

func notificationFor(e ImportCompletedEvent) domain.Notification {
	n := domain.Notification{
		UserID: e.UserID,
		Type:   NotificationTypeImport,
	}

	switch {
	case e.Failed:
		n.Title = "Import failed"
		n.Message = fmt.Sprintf("The import of %s could not run: %s", e.FileName, e.Reason)
	case e.FailedCount == 0:
		n.Title = "Import completed"
		n.Message = fmt.Sprintf("%d of %d rows from %s were imported.", e.SuccessCount, e.TotalRows, e.FileName)
	default:
		n.Title = "Import completed with errors"
		n.Message = fmt.Sprintf("%d of %d rows from %s were imported, %d failed.", e.SuccessCount, e.TotalRows, e.FileName, e.FailedCount)
	}

	return n
}
