package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-device-payments/internal/metrics"
)

// Bulkhead caps the number of concurrent gateway calls.
type Bulkhead struct {
	semaphore chan struct{}
	name      string
	wait      time.Duration
}

func NewBulkhead(size int, wait time.Duration, name string) *Bulkhead {
	if size <= 0 {
		size = 1
	}
	if wait <= 0 {
		wait = time.Second
	}
	return &Bulkhead{
		semaphore: make(chan struct{}, size),
		name:      name,
		wait:      wait,
	}
}

// Execute runs fn once a slot is free, giving up after the configured wait
// or when ctx is done.
func (b *Bulkhead) Execute(ctx context.Context, fn func() error) error {
	timer := time.NewTimer(b.wait)
	defer timer.Stop()

	select {
	case b.semaphore <- struct{}{}:
		metrics.BulkheadActiveRequests.WithLabelValues(b.name).Inc()
		defer func() {
			<-b.semaphore
			metrics.BulkheadActiveRequests.WithLabelValues(b.name).Dec()
		}()
		return fn()

	case <-timer.C:
		metrics.BulkheadRejectedRequests.WithLabelValues(b.name).Inc()
		return fmt.Errorf("bulkhead %s: timeout acquiring slot", b.name)

	case <-ctx.Done():
		metrics.BulkheadRejectedRequests.WithLabelValues(b.name).Inc()
		return ctx.Err()
	}
}
