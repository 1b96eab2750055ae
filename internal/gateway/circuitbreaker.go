package gateway

import (
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-device-payments/internal/metrics"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type BreakerSettings struct {
	MaxHalfOpen uint32
	Interval    time.Duration
	OpenFor     time.Duration
}

// CircuitBreaker wraps gobreaker and mirrors its state into Prometheus.
type CircuitBreaker struct {
	*gobreaker.CircuitBreaker
	name string
}

func NewCircuitBreaker(name string, settings BreakerSettings) *CircuitBreaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxHalfOpen,
		Interval:    settings.Interval,
		Timeout:     settings.OpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			// at least 3 calls and 60% of them failing
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(circuit string, from gobreaker.State, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(circuit).Set(stateValue(to))
			logrus.WithFields(logrus.Fields{
				"circuit": circuit,
				"from":    from.String(),
				"to":      to.String(),
			}).Info("Circuit breaker state changed")
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return &CircuitBreaker{CircuitBreaker: cb, name: name}
}

func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cb.CircuitBreaker.Execute(fn)
	if err != nil {
		metrics.CircuitBreakerFailures.WithLabelValues(cb.name).Inc()
		return result, breakerError(cb.name, err)
	}
	return result, nil
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}

func breakerError(circuit string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) {
		return fmt.Errorf("circuit breaker %s is open (gateway unavailable): %w", circuit, err)
	}
	if errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("circuit breaker %s: too many requests in half-open state: %w", circuit, err)
	}
	return err
}
