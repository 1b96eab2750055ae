package publisher

import (
	"context"

	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/sirupsen/logrus"
)

type TopicPublisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// Forwarder exports bus events to Kafka, one topic per event type.
type Forwarder struct {
	Publisher TopicPublisher
}

func NewForwarder(p TopicPublisher) *Forwarder {
	return &Forwarder{Publisher: p}
}

func (f *Forwarder) HandleEvent(ctx context.Context, evt models.Event) {
	topic := evt.Topic()
	if topic == "" {
		logrus.Debugf("No topic for event %s, not forwarding", evt.Type)
		return
	}

	if err := f.Publisher.Publish(ctx, topic, eventKey(evt), evt); err != nil {
		logrus.WithFields(logrus.Fields{
			"topic": topic,
			"event": evt.Type,
			"error": err.Error(),
		}).Error("Failed to forward event to Kafka")
	}
}

func eventKey(evt models.Event) string {
	switch {
	case evt.DeviceID != "":
		return evt.DeviceID
	case evt.Transaction != nil:
		return evt.Transaction.DeviceID
	default:
		return evt.Fingerprint
	}
}
