package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, deviceID string, raw models.RawEvent) models.PaymentResult
}

type DeviceLookup interface {
	Get(deviceID string) (models.Device, bool)
}

type PaymentHandler struct {
	Processor PaymentProcessor
	Devices   DeviceLookup
}

func NewPaymentHandler(p PaymentProcessor, devices DeviceLookup) *PaymentHandler {
	return &PaymentHandler{Processor: p, Devices: devices}
}

// POST /devices/:id/payments
//
// The body is the device's raw input event and is passed through untouched.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	deviceID := c.Param("id")
	if _, ok := h.Devices.Get(deviceID); !ok {
		respondError(c, models.NewDeviceNotFoundError(deviceID))
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := h.Processor.ProcessPayment(c.Request.Context(), deviceID, raw)
	c.JSON(paymentStatus(result), result)
}

// paymentStatus is 200 for approvals, 422 when the request never reached the
// gateway and 402 when the gateway did not approve it.
func paymentStatus(result models.PaymentResult) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.TransactionID == "":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusPaymentRequired
	}
}

// HandleEvents processes payment requests consumed from Kafka.
func (h *PaymentHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	if topic != models.DevicePaymentRequestedTopic {
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}

	var event models.DevicePaymentRequestedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		logrus.Errorf("Error parsing device payment event %s", err.Error())
		return fmt.Errorf("error parsing device payment event %w", err)
	}
	if _, ok := h.Devices.Get(event.DeviceID); !ok {
		return models.NewDeviceNotFoundError(event.DeviceID)
	}

	result := h.Processor.ProcessPayment(ctx, event.DeviceID, event.Event)
	logrus.WithFields(logrus.Fields{
		"device_id":      event.DeviceID,
		"trace_id":       event.TraceID,
		"transaction_id": result.TransactionID,
		"success":        result.Success,
	}).Info("Processed device payment event")
	return nil
}
