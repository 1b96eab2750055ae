package gateway

import (
	"context"
	"fmt"

	"github.com/jeffleon2/draftea-device-payments/config"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
)

const (
	ModeSandbox = "sandbox"
	ModeHTTP    = "http"
)

type Processor interface {
	ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error)
}

// New builds the gateway selected by cfg.Mode.
func New(cfg config.Gateway) (Processor, error) {
	switch cfg.Mode {
	case ModeSandbox, "":
		return NewSandboxGateway(cfg.SandboxLimit, cfg.SandboxLatency), nil
	case ModeHTTP:
		breaker := NewCircuitBreaker(circuitName, BreakerSettings{
			MaxHalfOpen: cfg.BreakerMaxHalfOpen,
			Interval:    cfg.BreakerInterval,
			OpenFor:     cfg.BreakerOpenFor,
		})
		bulkhead := NewBulkhead(cfg.BulkheadSize, cfg.BulkheadWait, circuitName)
		return NewHTTPGateway(cfg.BaseURL, cfg.Timeout, breaker, bulkhead), nil
	default:
		return nil, fmt.Errorf("unknown gateway mode %q", cfg.Mode)
	}
}
