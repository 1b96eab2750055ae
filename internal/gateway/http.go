package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

const circuitName = "payment-gateway"

type chargeResponse struct {
	Approved  bool   `json:"approved"`
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

type chargeError struct {
	Error string `json:"error"`
}

// HTTPGateway forwards canonical payment requests to a remote processor.
// Calls go through a bulkhead first and then a circuit breaker.
type HTTPGateway struct {
	client   *resty.Client
	breaker  *CircuitBreaker
	bulkhead *Bulkhead
}

func NewHTTPGateway(baseURL string, timeout time.Duration, breaker *CircuitBreaker, bulkhead *Bulkhead) *HTTPGateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &HTTPGateway{client: client, breaker: breaker, bulkhead: bulkhead}
}

func (g *HTTPGateway) ProcessPayment(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error) {
	var result models.PaymentResult

	err := g.bulkhead.Execute(ctx, func() error {
		out, err := g.breaker.Execute(func() (interface{}, error) {
			return g.charge(ctx, request)
		})
		if err != nil {
			return err
		}
		result = out.(models.PaymentResult)
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"merchant_id": request.MerchantID,
			"amount":      request.Amount,
			"error":       err.Error(),
		}).Warn("Gateway call failed")
		return models.PaymentResult{}, err
	}
	return result, nil
}

// charge maps the processor answer onto a result. Declines come back as a
// result so they do not count against the breaker.
func (g *HTTPGateway) charge(ctx context.Context, request models.PaymentRequest) (models.PaymentResult, error) {
	var body chargeResponse
	var failure chargeError

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&body).
		SetError(&failure).
		Post("/charges")
	if err != nil {
		return models.PaymentResult{}, err
	}

	result := models.PaymentResult{
		Amount:    request.Amount,
		Currency:  request.Currency,
		Timestamp: time.Now().UTC(),
	}

	switch {
	case resp.StatusCode() == http.StatusPaymentRequired:
		result.Error = failure.Error
		if result.Error == "" {
			result.Error = "payment declined"
		}
		return result, nil
	case resp.IsError():
		return models.PaymentResult{}, fmt.Errorf("gateway answered %s", resp.Status())
	}

	if !body.Approved {
		result.Error = body.Reason
		if result.Error == "" {
			result.Error = "payment declined"
		}
		return result, nil
	}

	result.Success = true
	if body.Reference != "" {
		result.Metadata = map[string]any{models.MetaGatewayRef: body.Reference}
	}
	return result, nil
}
