package metrics

import (
	"context"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

// Recorder turns lifecycle events from the bus into Prometheus metrics.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) HandleEvent(_ context.Context, evt models.Event) {
	switch evt.Type {
	case models.EventPaymentProcessed:
		if evt.Transaction == nil {
			return
		}
		txn := evt.Transaction
		DevicePaymentsTotal.WithLabelValues(string(txn.Status), string(txn.DeviceType)).Inc()
		if txn.Status == models.StatusCompleted {
			PaymentAmounts.WithLabelValues(txn.Request.Currency).Observe(txn.Request.Amount)
		}

	case models.EventPaymentRejected:
		DevicePaymentsTotal.WithLabelValues("rejected", string(evt.DeviceType)).Inc()

	case models.EventDeviceRegistered:
		DevicesRegisteredTotal.WithLabelValues(string(evt.DeviceType)).Inc()

	case models.EventDeviceDiscovered:
		DevicesDiscoveredTotal.WithLabelValues(string(evt.DeviceType)).Inc()

	default:
		logrus.Debugf("Metrics recorder ignoring event %s", evt.Type)
	}
}
