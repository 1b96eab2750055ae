package subscriber

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-device-payments/config"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, topic string, value []byte) error

type DLQPublisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig

	wg sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  publisher.WithRetryDefaults(retryConfig),
	}
}

// Listen starts one goroutine per reader. They stop when ctx is done.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r *kafka.Reader) {
			defer c.wg.Done()
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, io.EOF) {
						return
					}
					logrus.Errorf("Kafka error: %v", err)
					continue
				}
				c.ProcessMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

// Close waits for the listeners to return, then closes the readers.
func (c *KafkaConsumer) Close() error {
	c.wg.Wait()
	var firstErr error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ProcessMessage retries handler with backoff and sends the message to the
// DLQ once attempts are exhausted.
func (c *KafkaConsumer) ProcessMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}

		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		logrus.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	logrus.Errorf("Message failed after %d attempts: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.DevicePaymentsDLQTopic, string(msg.Key), dlqMessage); err != nil {
		logrus.Errorf("Failed to send message to DLQ: %v", err)
		return
	}
	logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
}
