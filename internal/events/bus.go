package events

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

const DefaultBuffer = 256

type subscription struct {
	ch      chan models.Event
	dropped atomic.Uint64
}

// Bus is a best-effort, in-process pub/sub channel for lifecycle events.
// Publish never blocks: an event is dropped for any subscriber whose buffer
// is full, and the drop is counted per subscriber.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]*subscription
	closed bool
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]*subscription)}
}

// Subscribe registers a named subscriber. Subscribing twice with the same
// name returns the existing channel. The channel is closed by Close.
func (b *Bus) Subscribe(name string, buffer int) <-chan models.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[name]; ok {
		return sub.ch
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	sub := &subscription{ch: make(chan models.Event, buffer)}
	if b.closed {
		close(sub.ch)
		return sub.ch
	}
	b.subs[name] = sub
	return sub.ch
}

func (b *Bus) Publish(evt models.Event) {
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for name, sub := range b.subs {
		select {
		case sub.ch <- evt:
		default:
			sub.dropped.Add(1)
			logrus.WithFields(logrus.Fields{
				"subscriber": name,
				"event":      evt.Type,
			}).Warn("Event dropped, subscriber buffer full")
		}
	}
}

// Dropped returns how many events the named subscriber has missed.
func (b *Bus) Dropped(name string) uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if sub, ok := b.subs[name]; ok {
		return sub.dropped.Load()
	}
	return 0
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, sub := range b.subs {
		close(sub.ch)
	}
}

// Consume feeds events from ch to handle until ctx is done or ch is closed.
func Consume(ctx context.Context, ch <-chan models.Event, handle func(context.Context, models.Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			handle(ctx, evt)
		}
	}
}
