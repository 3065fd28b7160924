package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/grachmannico95/wallet-import/internal/domain"
	"github.com/grachmannico95/wallet-import/mocks"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedEvent(payload ImportCompletedEvent) Event {
	return Event{ID: "event-1", Type: EventTypeImportCompleted, Payload: payload}
}

func TestNotificationConsumer_Consume_Success(t *testing.T) {
	// Setup
	repo := mocks.NewMockRepository(t)
	sink := mocks.NewMockNotificationSink(t)
	consumer := NewNotificationConsumer(repo, sink, logger.NewNop(), 1)
	ctx := context.Background()

	// Mock expectations
	repo.EXPECT().IsEventProcessed(mock.Anything, "event-1").Return(false, nil).Once()
	sink.EXPECT().
		AddNotification(mock.Anything, domain.Notification{
			UserID:  "user-1",
			Title:   "Import completed with errors",
			Message: "9 of 10 rows from movimientos.csv were imported, 1 failed.",
			Type:    NotificationTypeImport,
		}).
		Return(nil).
		Once()
	repo.EXPECT().MarkEventProcessed(mock.Anything, "event-1").Return(nil).Once()

	// Execute
	err := consumer.Consume(ctx, completedEvent(ImportCompletedEvent{
		RunID:        "run-1",
		SessionID:    "session-1",
		UserID:       "user-1",
		FileName:     "movimientos.csv",
		TotalRows:    10,
		SuccessCount: 9,
		FailedCount:  1,
	}))

	// Assert
	require.NoError(t, err)
}

func TestNotificationConsumer_Consume_AlreadyProcessed(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	sink := mocks.NewMockNotificationSink(t)
	consumer := NewNotificationConsumer(repo, sink, logger.NewNop(), 1)

	repo.EXPECT().IsEventProcessed(mock.Anything, "event-1").Return(true, nil).Once()

	err := consumer.Consume(context.Background(), completedEvent(ImportCompletedEvent{UserID: "user-1"}))

	require.NoError(t, err)
}

func TestNotificationConsumer_Consume_InvalidPayload(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	sink := mocks.NewMockNotificationSink(t)
	consumer := NewNotificationConsumer(repo, sink, logger.NewNop(), 1)

	repo.EXPECT().IsEventProcessed(mock.Anything, "event-1").Return(false, nil).Once()

	err := consumer.Consume(context.Background(), Event{ID: "event-1", Type: EventTypeImportCompleted, Payload: "bogus"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payload type")
}

func TestNotificationConsumer_Consume_SinkError(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	sink := mocks.NewMockNotificationSink(t)
	consumer := NewNotificationConsumer(repo, sink, logger.NewNop(), 1)
	sinkErr := errors.New("insert failed")

	repo.EXPECT().IsEventProcessed(mock.Anything, "event-1").Return(false, nil).Once()
	sink.EXPECT().AddNotification(mock.Anything, mock.Anything).Return(sinkErr).Once()

	err := consumer.Consume(context.Background(), completedEvent(ImportCompletedEvent{UserID: "user-1"}))

	assert.ErrorIs(t, err, sinkErr)
}

func TestNotificationConsumer_Consume_IdempotencyCheckError(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	sink := mocks.NewMockNotificationSink(t)
	consumer := NewNotificationConsumer(repo, sink, logger.NewNop(), 1)
	repoErr := errors.New("store unavailable")

	repo.EXPECT().IsEventProcessed(mock.Anything, "event-1").Return(false, repoErr).Once()

	err := consumer.Consume(context.Background(), completedEvent(ImportCompletedEvent{}))

	assert.ErrorIs(t, err, repoErr)
}

func TestNotificationFor(t *testing.T) {
	ok := notificationFor(ImportCompletedEvent{UserID: "u", FileName: "a.csv", TotalRows: 3, SuccessCount: 3})
	assert.Equal(t, "Import completed", ok.Title)
	assert.Equal(t, "3 of 3 rows from a.csv were imported.", ok.Message)

	failed := notificationFor(ImportCompletedEvent{UserID: "u", FileName: "a.csv", Failed: true, Reason: "import already in progress"})
	assert.Equal(t, "Import failed", failed.Title)
	assert.Equal(t, "The import of a.csv could not run: import already in progress", failed.Message)
}

func TestNotificationConsumer_WorkerCount(t *testing.T) {
	assert.Equal(t, 1, NewNotificationConsumer(nil, nil, logger.NewNop(), 0).GetWorkerCount())
	assert.Equal(t, 4, NewNotificationConsumer(nil, nil, logger.NewNop(), 4).GetWorkerCount())
}
