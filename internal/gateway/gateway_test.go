package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-device-payments/config"
	"github.com/jeffleon2/draftea-device-payments/internal/gateway"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(amount float64, token string) models.PaymentRequest {
	req := models.PaymentRequest{Amount: amount, Currency: "USD", MerchantID: "m1"}
	if token != "" {
		req.Metadata = map[string]any{models.MetaCardToken: token}
	}
	return req
}

func TestSandboxGateway(t *testing.T) {
	g := gateway.NewSandboxGateway(100, 0)

	t.Run("approves", func(t *testing.T) {
		result, err := g.ProcessPayment(context.Background(), request(25, ""))
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 25.0, result.Amount)
		assert.True(t, strings.HasPrefix(result.Metadata[models.MetaGatewayRef].(string), "sbx_"))
	})

	t.Run("declined token", func(t *testing.T) {
		result, err := g.ProcessPayment(context.Background(), request(25, gateway.SandboxDeclinedToken))
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "card declined", result.Error)
	})

	t.Run("over limit", func(t *testing.T) {
		result, err := g.ProcessPayment(context.Background(), request(250, ""))
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "amount exceeds sandbox limit")
	})

	t.Run("error token", func(t *testing.T) {
		_, err := g.ProcessPayment(context.Background(), request(25, gateway.SandboxErrorToken))
		assert.Error(t, err)
	})
}

func TestSandboxGateway_LatencyHonoursContext(t *testing.T) {
	g := gateway.NewSandboxGateway(0, time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := g.ProcessPayment(ctx, request(10, ""))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func newHTTPGateway(url string) *gateway.HTTPGateway {
	breaker := gateway.NewCircuitBreaker("test-"+url, gateway.BreakerSettings{MaxHalfOpen: 1, Interval: time.Minute, OpenFor: time.Minute})
	bulkhead := gateway.NewBulkhead(4, 100*time.Millisecond, "test")
	return gateway.NewHTTPGateway(url, time.Second, breaker, bulkhead)
}

func TestHTTPGateway_Approved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges", r.URL.Path)
		var req models.PaymentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "m1", req.MerchantID)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"approved":true,"reference":"ch_123"}`))
	}))
	defer server.Close()

	result, err := newHTTPGateway(server.URL).ProcessPayment(context.Background(), request(40, ""))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "ch_123", result.Metadata[models.MetaGatewayRef])
}

func TestHTTPGateway_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"insufficient funds"}`))
	}))
	defer server.Close()

	result, err := newHTTPGateway(server.URL).ProcessPayment(context.Background(), request(40, ""))

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "insufficient funds", result.Error)
}

func TestHTTPGateway_BreakerOpensOnServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	g := newHTTPGateway(server.URL)
	for i := 0; i < 3; i++ {
		_, err := g.ProcessPayment(context.Background(), request(40, ""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	}

	_, err := g.ProcessPayment(context.Background(), request(40, ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), calls.Load())
}

func TestBulkhead_RejectsWhenFull(t *testing.T) {
	b := gateway.NewBulkhead(1, 20*time.Millisecond, "test-full")
	release := make(chan struct{})
	started := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = b.Execute(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	err := b.Execute(context.Background(), func() error { return nil })
	assert.ErrorContains(t, err, "timeout acquiring slot")

	close(release)
	wg.Wait()
	assert.NoError(t, b.Execute(context.Background(), func() error { return nil }))
}

func TestNew(t *testing.T) {
	g, err := gateway.New(config.Gateway{Mode: gateway.ModeSandbox})
	require.NoError(t, err)
	assert.IsType(t, &gateway.SandboxGateway{}, g)

	g, err = gateway.New(config.Gateway{Mode: gateway.ModeHTTP, BaseURL: "http://localhost:1", Timeout: time.Second, BulkheadSize: 1, BulkheadWait: time.Second})
	require.NoError(t, err)
	assert.IsType(t, &gateway.HTTPGateway{}, g)

	_, err = gateway.New(config.Gateway{Mode: "carrier-pigeon"})
	assert.Error(t, err)
}
