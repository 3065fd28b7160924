package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConsumer struct {
	mu       sync.Mutex
	events   []Event
	failures int32
	calls    atomic.Int32
}

func (c *recordingConsumer) Consume(ctx context.Context, event Event) error {
	if c.calls.Add(1) <= c.failures {
		return errors.New("temporary failure")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *recordingConsumer) GetWorkerCount() int { return 2 }

func (c *recordingConsumer) received() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

func newTestBus() EventBus {
	return New(logger.NewNop(), &Config{ChannelBuffer: 10, MaxRetries: 3, RetryBaseDelay: time.Millisecond})
}

func TestEventBus_PublishDelivers(t *testing.T) {
	bus := newTestBus()
	consumer := &recordingConsumer{}
	require.NoError(t, bus.Subscribe(EventTypeImportCompleted, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer func() { _ = bus.Shutdown(context.Background()) }()

	err := bus.Publish(context.Background(), Event{ID: "event-1", Type: EventTypeImportCompleted, Payload: ImportCompletedEvent{RunID: "run-1"}})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(consumer.received()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "run-1", consumer.received()[0].Payload.(ImportCompletedEvent).RunID)
}

func TestEventBus_RetriesFailedConsume(t *testing.T) {
	bus := newTestBus()
	consumer := &recordingConsumer{failures: 2}
	require.NoError(t, bus.Subscribe(EventTypeImportCompleted, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer func() { _ = bus.Shutdown(context.Background()) }()

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "event-1", Type: EventTypeImportCompleted}))

	require.Eventually(t, func() bool { return len(consumer.received()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), consumer.calls.Load())
}

func TestEventBus_RetryDelayCapped(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 10, MaxRetries: 3, RetryBaseDelay: time.Hour, RetryMaxDelay: time.Millisecond})
	consumer := &recordingConsumer{failures: 2}
	require.NoError(t, bus.Subscribe(EventTypeImportCompleted, consumer))
	require.NoError(t, bus.Start(context.Background()))
	defer func() { _ = bus.Shutdown(context.Background()) }()

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "event-1", Type: EventTypeImportCompleted}))

	require.Eventually(t, func() bool { return len(consumer.received()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), consumer.calls.Load())
}

func TestEventBus_GivesUpAfterMaxRetries(t *testing.T) {
	bus := newTestBus()
	consumer := &recordingConsumer{failures: 10}
	require.NoError(t, bus.Subscribe(EventTypeImportCompleted, consumer))
	require.NoError(t, bus.Start(context.Background()))

	require.NoError(t, bus.Publish(context.Background(), Event{ID: "event-1", Type: EventTypeImportCompleted}))

	require.Eventually(t, func() bool { return consumer.calls.Load() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, bus.Shutdown(context.Background()))
	assert.Empty(t, consumer.received())
	assert.Equal(t, int32(3), consumer.calls.Load())
}

func TestEventBus_PublishWithoutSubscriber(t *testing.T) {
	bus := newTestBus()

	err := bus.Publish(context.Background(), Event{ID: "event-1", Type: "unknown"})

	assert.NoError(t, err)
}

func TestEventBus_PublishDropsWhenFull(t *testing.T) {
	bus := New(logger.NewNop(), &Config{ChannelBuffer: 1})
	consumer := &recordingConsumer{}
	require.NoError(t, bus.Subscribe(EventTypeImportCompleted, consumer))

	// Not started, so nothing drains the channel.
	require.NoError(t, bus.Publish(context.Background(), Event{ID: "event-1", Type: EventTypeImportCompleted}))
	require.NoError(t, bus.Publish(context.Background(), Event{ID: "event-2", Type: EventTypeImportCompleted}))
}

func TestEventBus_ShutdownTimeout(t *testing.T) {
	bus := newTestBus()
	require.NoError(t, bus.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, bus.Shutdown(ctx))
}

func TestEventBus_ShutdownDrainsQueuedEvents(t *testing.T) {
	bus := newTestBus()
	consumer := &recordingConsumer{}
	require.NoError(t, bus.Subscribe(EventTypeImportCompleted, consumer))

	// Queue before the workers exist so the events are still buffered at shutdown.
	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Publish(context.Background(), Event{ID: "event", Type: EventTypeImportCompleted}))
	}
	require.NoError(t, bus.Start(context.Background()))

	require.NoError(t, bus.Shutdown(context.Background()))

	assert.Len(t, consumer.received(), 5)
}

func TestEventBus_PublishAfterShutdown(t *testing.T) {
	bus := newTestBus()
	require.NoError(t, bus.Subscribe(EventTypeImportCompleted, &recordingConsumer{}))
	require.NoError(t, bus.Start(context.Background()))
	require.NoError(t, bus.Shutdown(context.Background()))

	err := bus.Publish(context.Background(), Event{ID: "late", Type: EventTypeImportCompleted})

	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, bus.Shutdown(context.Background()))
}
