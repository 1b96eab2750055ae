package device

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/models/dto"
	"github.com/sirupsen/logrus"
)

type DeliveryKind string

const (
	DeliveryResponse DeliveryKind = "payment_response"
	DeliveryError    DeliveryKind = "payment_error"
	DeliveryDisplay  DeliveryKind = "display_payment_ui"

	DefaultWebhookTimeout = 5 * time.Second
)

// Delivery is what a remote device receives on its webhook.
type Delivery struct {
	Kind        DeliveryKind           `json:"kind"`
	Fingerprint string                 `json:"fingerprint"`
	Category    models.Category        `json:"category,omitempty"`
	Result      *models.PaymentResult  `json:"result,omitempty"`
	Response    models.DeviceResponse  `json:"response,omitempty"`
	Error       *models.PaymentError   `json:"error,omitempty"`
	Request     *models.PaymentRequest `json:"request,omitempty"`
	SentAt      time.Time              `json:"sent_at"`
}

// RemoteDevice adapts a device registered over the API. Responses are pushed
// to its webhook when it has one; the latest delivery is always kept so it
// can be polled.
type RemoteDevice struct {
	deviceType   models.DeviceType
	fingerprint  string
	name         string
	capabilities models.CapabilitySet
	security     models.SecurityContext
	webhookURL   string
	client       *resty.Client

	mu   sync.RWMutex
	last *Delivery
}

func NewRemoteDevice(req dto.RegisterDevice, client *resty.Client) *RemoteDevice {
	if client == nil {
		client = resty.New().SetTimeout(DefaultWebhookTimeout).SetRetryCount(0)
	}
	return &RemoteDevice{
		deviceType:   models.ParseDeviceType(req.Type),
		fingerprint:  req.Fingerprint,
		name:         req.Name,
		capabilities: req.Capabilities,
		security:     req.Security,
		webhookURL:   req.WebhookURL,
		client:       client,
	}
}

// DeviceID is empty: the registry assigns the id.
func (d *RemoteDevice) DeviceID() string { return "" }
func (d *RemoteDevice) DeviceType() models.DeviceType { return d.deviceType }
func (d *RemoteDevice) Capabilities() models.CapabilitySet { return d.capabilities }
func (d *RemoteDevice) Fingerprint() string { return d.fingerprint }
func (d *RemoteDevice) SecurityContext() models.SecurityContext { return d.security }
func (d *RemoteDevice) Name() string { return d.name }

func (d *RemoteDevice) HandlePaymentResponse(ctx context.Context, result models.PaymentResult, response models.DeviceResponse) error {
	delivery := Delivery{
		Kind:     DeliveryResponse,
		Result:   &result,
		Response: response,
	}
	if response != nil {
		delivery.Category = response.Category()
	}
	return d.deliver(ctx, delivery)
}

func (d *RemoteDevice) HandleError(ctx context.Context, err *models.PaymentError) {
	if deliverErr := d.deliver(ctx, Delivery{Kind: DeliveryError, Error: err}); deliverErr != nil {
		logrus.WithFields(logrus.Fields{
			"fingerprint": d.fingerprint,
			"error":       deliverErr.Error(),
		}).Warn("Could not deliver payment error to device")
	}
}

func (d *RemoteDevice) DisplayPaymentUI(ctx context.Context, request models.PaymentRequest) error {
	return d.deliver(ctx, Delivery{Kind: DeliveryDisplay, Request: &request})
}

// LastDelivery returns the most recent message sent to the device.
func (d *RemoteDevice) LastDelivery() (Delivery, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.last == nil {
		return Delivery{}, false
	}
	return *d.last, true
}

func (d *RemoteDevice) deliver(ctx context.Context, delivery Delivery) error {
	delivery.Fingerprint = d.fingerprint
	delivery.SentAt = time.Now().UTC()

	d.mu.Lock()
	d.last = &delivery
	d.mu.Unlock()

	if d.webhookURL == "" {
		return nil
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(delivery).
		Post(d.webhookURL)
	if err != nil {
		return fmt.Errorf("webhook %s: %w", d.webhookURL, err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook %s answered %s", d.webhookURL, resp.Status())
	}

	logrus.WithFields(logrus.Fields{
		"fingerprint": d.fingerprint,
		"kind":        delivery.Kind,
	}).Debug("Delivered message to device webhook")
	return nil
}
