package events_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-device-payments/internal/events"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishFansOut(t *testing.T) {
	bus := events.NewBus()
	a := bus.Subscribe("a", 4)
	b := bus.Subscribe("b", 4)

	bus.Publish(models.Event{Type: models.EventDeviceRegistered, DeviceID: "smartphone_1_abcd"})

	for _, ch := range []<-chan models.Event{a, b} {
		evt := <-ch
		assert.Equal(t, models.EventDeviceRegistered, evt.Type)
		assert.Equal(t, "smartphone_1_abcd", evt.DeviceID)
		assert.False(t, evt.OccurredAt.IsZero())
	}
}

func TestBus_PublishNeverBlocksOnFullSubscriber(t *testing.T) {
	bus := events.NewBus()
	_ = bus.Subscribe("slow", 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(models.Event{Type: models.EventPaymentProcessed})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Equal(t, uint64(9), bus.Dropped("slow"))
	assert.Zero(t, bus.Dropped("missing"))
}

func TestBus_SubscribeSameNameReturnsSameChannel(t *testing.T) {
	bus := events.NewBus()
	first := bus.Subscribe("metrics", 2)
	second := bus.Subscribe("metrics", 8)

	bus.Publish(models.Event{Type: models.EventDeviceDiscovered})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestBus_CloseEndsConsumers(t *testing.T) {
	bus := events.NewBus()
	ch := bus.Subscribe("consumer", 4)

	var mu sync.Mutex
	var seen []models.EventType
	finished := make(chan struct{})
	go func() {
		events.Consume(context.Background(), ch, func(_ context.Context, evt models.Event) {
			mu.Lock()
			seen = append(seen, evt.Type)
			mu.Unlock()
		})
		close(finished)
	}()

	bus.Publish(models.Event{Type: models.EventPaymentProcessed})
	bus.Publish(models.Event{Type: models.EventPaymentRejected})
	bus.Close()
	bus.Close()
	bus.Publish(models.Event{Type: models.EventPaymentProcessed})

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after Close")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.EventType{models.EventPaymentProcessed, models.EventPaymentRejected}, seen)

	late := bus.Subscribe("late", 1)
	_, ok := <-late
	require.False(t, ok)
}

func TestConsume_StopsOnContextCancel(t *testing.T) {
	bus := events.NewBus()
	ch := bus.Subscribe("ctx", 1)
	ctx, cancel := context.WithCancel(context.Background())

	finished := make(chan struct{})
	go func() {
		events.Consume(ctx, ch, func(context.Context, models.Event) {})
		close(finished)
	}()
	cancel()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("consumer ignored context cancellation")
	}
}
