package device_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeffleon2/draftea-device-payments/internal/device"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registration(webhook string) dto.RegisterDevice {
	return dto.RegisterDevice{
		Type:         "smart_tv",
		Fingerprint:  "tv-living-room-01",
		Capabilities: models.CapabilitySet{HasDisplay: true, InternetConnection: true},
		Security:     models.SecurityContext{EncryptionLevel: "aes256"},
		WebhookURL:   webhook,
	}
}

func TestRemoteDevice_Identity(t *testing.T) {
	d := device.NewRemoteDevice(dto.RegisterDevice{Type: "toaster", Fingerprint: "fp-12345678"}, nil)

	assert.Equal(t, models.DeviceUnknown, d.DeviceType())
	assert.Equal(t, "fp-12345678", d.Fingerprint())
	assert.Empty(t, d.DeviceID())
}

func TestRemoteDevice_PostsResponseToWebhook(t *testing.T) {
	received := make(chan map[string]any, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	d := device.NewRemoteDevice(registration(server.URL), nil)
	result := models.PaymentResult{Success: true, TransactionID: "txn_1", Amount: 20}
	response := models.TVResponse{FullScreen: true, DisplayDuration: 5000}

	require.NoError(t, d.HandlePaymentResponse(context.Background(), result, response))

	body := <-received
	assert.Equal(t, string(device.DeliveryResponse), body["kind"])
	assert.Equal(t, "tv", body["category"])
	assert.Equal(t, "tv-living-room-01", body["fingerprint"])

	last, ok := d.LastDelivery()
	require.True(t, ok)
	assert.Equal(t, "txn_1", last.Result.TransactionID)
}

func TestRemoteDevice_WebhookFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	d := device.NewRemoteDevice(registration(server.URL), nil)
	err := d.DisplayPaymentUI(context.Background(), models.PaymentRequest{Amount: 5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	last, ok := d.LastDelivery()
	require.True(t, ok)
	assert.Equal(t, device.DeliveryDisplay, last.Kind)
}

func TestRemoteDevice_WithoutWebhookKeepsLastDelivery(t *testing.T) {
	d := device.NewRemoteDevice(registration(""), nil)
	_, ok := d.LastDelivery()
	assert.False(t, ok)

	d.HandleError(context.Background(), models.NewDeviceNotFoundError("x"))

	last, ok := d.LastDelivery()
	require.True(t, ok)
	assert.Equal(t, device.DeliveryError, last.Kind)
	assert.Equal(t, models.KindDeviceNotFound, last.Error.Kind)
}
