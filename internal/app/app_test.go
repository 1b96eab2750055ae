package app_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-device-payments/config"
	"github.com/jeffleon2/draftea-device-payments/internal/app"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		APP:      config.APP{PORT: "0"},
		Gateway:  config.Gateway{Mode: "sandbox", SandboxLimit: 500},
		Dispatch: config.Dispatch{PaymentTimeout: time.Second, EventBuffer: 64},
		Registry: config.Registry{MinFingerprintLength: 8},
		Scanner: config.Scanner{
			Enabled:       true,
			Interval:      time.Hour,
			ProbeTimeout:  time.Second,
			StaticDevices: []string{"iot_device=vending-machine-0042"},
		},
	}
}

func request(t *testing.T, a *app.App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	a.Router.ServeHTTP(w, req)
	return w
}

// One test drives the whole service, since metrics register globally.
func TestApp_EndToEnd(t *testing.T) {
	a := &app.App{}
	require.NoError(t, a.Initialize(context.Background(), testConfig()))
	defer a.Close()

	// logger, recovery and metrics
	assert.Len(t, a.Router.Handlers, 3)

	health := request(t, a, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), `"devices":0`)

	scan := request(t, a, http.MethodPost, "/discovery/scan", "")
	require.Equal(t, http.StatusOK, scan.Code)
	assert.Contains(t, scan.Body.String(), "vending-machine-0042")

	registered := request(t, a, http.MethodPost, "/devices", `{
		"type": "iot_device",
		"fingerprint": "vending-machine-0042",
		"capabilities": {"internet_connection": true, "max_payment_amount": 50},
		"security": {"encryption_level": "aes128"}
	}`)
	require.Equal(t, http.StatusCreated, registered.Code)
	var view dto.DeviceView
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &view))

	rescan := request(t, a, http.MethodPost, "/discovery/scan", "")
	assert.NotContains(t, rescan.Body.String(), "vending-machine-0042")

	paid := request(t, a, http.MethodPost, "/devices/"+view.DeviceID+"/payments",
		`{"type":"sensor_trigger","product_id":"cola","price":2.5,"merchant_id":"vendco"}`)
	require.Equal(t, http.StatusOK, paid.Code, paid.Body.String())
	var result models.PaymentResult
	require.NoError(t, json.Unmarshal(paid.Body.Bytes(), &result))
	assert.True(t, result.Success)

	txn := request(t, a, http.MethodGet, "/transactions/"+result.TransactionID, "")
	require.Equal(t, http.StatusOK, txn.Code)
	assert.Contains(t, txn.Body.String(), `"status":"completed"`)

	over := request(t, a, http.MethodPost, "/devices/"+view.DeviceID+"/payments",
		`{"type":"manual_entry","amount":75,"merchant_id":"vendco"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, over.Code)

	stats := request(t, a, http.MethodGet, "/transactions/stats", "")
	assert.JSONEq(t, `{"processing":0,"completed":1,"failed":0}`, stats.Body.String())

	metrics := request(t, a, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "http_requests_total")
}
