package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
)

const (
	SandboxDeclinedToken = "tok_declined"
	SandboxErrorToken    = "tok_error"
)

// SandboxGateway approves everything except a few deterministic cases, so
// devices can be exercised without a real processor.
type SandboxGateway struct {
	limit   float64
	latency time.Duration
}

func NewSandboxGateway(limit float64, latency time.Duration) *SandboxGateway {
	return &SandboxGateway{limit: limit, latency: latency}
}

func (g *SandboxGateway) ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error) {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	token, _ := request.Metadata[models.MetaCardToken].(string)
	result := models.PaymentResult{
		Amount:    request.Amount,
		Currency:  request.Currency,
		Timestamp: time.Now().UTC(),
	}

	switch {
	case token == SandboxErrorToken:
		return models.PaymentResult{}, errors.New("sandbox processor unavailable")
	case token == SandboxDeclinedToken:
		result.Error = "card declined"
	case g.limit > 0 && request.Amount > g.limit:
		result.Error = fmt.Sprintf("amount exceeds sandbox limit of %.2f", g.limit)
	default:
		result.Success = true
		result.Metadata = map[string]any{models.MetaGatewayRef: "sbx_" + uuid.NewString()[:8]}
	}
	return result, nil
}
