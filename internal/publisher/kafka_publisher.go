package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-device-payments/config"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type KafkaPublisher struct {
	Writers     map[string]*kafka.Writer
	RetryConfig config.RetryConfig
}

func NewKafkaPublisher(brokers string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]*kafka.Writer)
	retryConfig = WithRetryDefaults(retryConfig)

	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		writers[t] = &kafka.Writer{
			Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
			Topic:                  t,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
	}

	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: retryConfig,
	}
}

// Publish writes message as JSON. Messages with the same key land on the
// same partition, so a device's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) Close() error {
	var firstErr error
	for topic, writer := range p.Writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing writer for %s: %w", topic, err)
		}
	}
	return firstErr
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer *kafka.Writer, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("[Kafka Publisher] Message published to topic '%s' after %d attempts", topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := Backoff(p.RetryConfig, attempt)

		logrus.Warnf("[Kafka Publisher] Retry %d/%d for topic '%s' after %v: %v",
			attempt+1, p.RetryConfig.MaxAttempts, topic, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

func WithRetryDefaults(cfg config.RetryConfig) config.RetryConfig {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = 100 * time.Millisecond
	}
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = 10 * time.Second
	}
	return cfg
}

// Backoff is exponential in attempt, capped at MaxDelay, with +-15% jitter
// when enabled.
func Backoff(cfg config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * cfg.BaseDelay

	if delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}

	if cfg.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
