package models

import "time"

type EventType string

const (
	EventDeviceRegistered EventType = "device_registered"
	EventDeviceDiscovered EventType = "device_discovered"
	EventPaymentProcessed EventType = "payment_processed"
	EventPaymentRejected  EventType = "payment_rejected"

	DeviceRegisteredTopic = "devices.registered"
	DeviceDiscoveredTopic = "devices.discovered"
	PaymentProcessedTopic = "payments.processed"
	PaymentRejectedTopic  = "payments.rejected"

	DevicePaymentRequestedTopic = "devices.payments.requested"
	DevicePaymentsDLQTopic      = "devices.payments.dlq"
)

// Event is a lifecycle notification published on the bus. Only the fields
// relevant to Type are set.
type Event struct {
	Type        EventType         `json:"type"`
	DeviceID    string            `json:"device_id,omitempty"`
	DeviceType  DeviceType        `json:"device_type,omitempty"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Discovered  *DiscoveredDevice `json:"discovered,omitempty"`
	Transaction *Transaction      `json:"transaction,omitempty"`
	Result      *PaymentResult    `json:"result,omitempty"`
	Request     *PaymentRequest   `json:"request,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// Topic returns the Kafka topic the event is exported to.
func (e Event) Topic() string {
	switch e.Type {
	case EventDeviceRegistered:
		return DeviceRegisteredTopic
	case EventDeviceDiscovered:
		return DeviceDiscoveredTopic
	case EventPaymentProcessed:
		return PaymentProcessedTopic
	case EventPaymentRejected:
		return PaymentRejectedTopic
	default:
		return ""
	}
}

// DevicePaymentRequestedEvent is consumed from Kafka by devices that cannot
// call the HTTP API directly.
type DevicePaymentRequestedEvent struct {
	DeviceID string   `json:"device_id"`
	Event    RawEvent `json:"event"`
	TraceID  string   `json:"trace_id,omitempty"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
