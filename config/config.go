package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		_ = godotenv.Load(".env")
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	Log
	DB
	Kafka
	Gateway
	Dispatch
	Registry
	Translator
	Scanner
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// DB is optional: with ARCHIVE_ENABLED=false the service runs without postgres.
type DB struct {
	ArchiveEnabled bool   `env:"ARCHIVE_ENABLED" envDefault:"false"`
	HOST           string `env:"DB_HOST"`
	USER           string `env:"DB_USER"`
	PASSWORD       string `env:"DB_PASSWORD"`
	NAME           string `env:"DB_NAME"`
	PORT           string `env:"DB_PORT"`
	SSLMODE        string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Enabled          bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_CONSUMER_GROUP_ID" envDefault:"device-payments"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"devices.registered,devices.discovered,payments.processed,payments.rejected,devices.payments.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"devices.payments.requested"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// Gateway selects the payment gateway collaborator. Mode is "sandbox" or "http".
type Gateway struct {
	Mode               string        `env:"GATEWAY_MODE" envDefault:"sandbox"`
	BaseURL            string        `env:"GATEWAY_BASE_URL" envDefault:"http://localhost:8082"`
	Timeout            time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`
	BulkheadSize       int           `env:"GATEWAY_BULKHEAD_SIZE" envDefault:"20"`
	BulkheadWait       time.Duration `env:"GATEWAY_BULKHEAD_WAIT" envDefault:"1s"`
	SandboxLimit       float64       `env:"GATEWAY_SANDBOX_LIMIT" envDefault:"10000"`
	SandboxLatency     time.Duration `env:"GATEWAY_SANDBOX_LATENCY" envDefault:"0s"`
	BreakerMaxHalfOpen uint32        `env:"GATEWAY_BREAKER_MAX_HALF_OPEN" envDefault:"3"`
	BreakerInterval    time.Duration `env:"GATEWAY_BREAKER_INTERVAL" envDefault:"15s"`
	BreakerOpenFor     time.Duration `env:"GATEWAY_BREAKER_OPEN_FOR" envDefault:"30s"`
}

type Dispatch struct {
	PaymentTimeout     time.Duration `env:"DISPATCH_PAYMENT_TIMEOUT" envDefault:"15s"`
	SerializePerDevice bool          `env:"DISPATCH_SERIALIZE_PER_DEVICE" envDefault:"false"`
	EventBuffer        int           `env:"DISPATCH_EVENT_BUFFER" envDefault:"256"`
}

type Registry struct {
	MinFingerprintLength int `env:"REGISTRY_MIN_FINGERPRINT_LENGTH" envDefault:"8"`
}

type Translator struct {
	DemoDefaults bool `env:"TRANSLATOR_DEMO_DEFAULTS" envDefault:"false"`
}

type Scanner struct {
	Enabled        bool          `env:"SCANNER_ENABLED" envDefault:"true"`
	Interval       time.Duration `env:"SCANNER_INTERVAL" envDefault:"30s"`
	ProbeTimeout   time.Duration `env:"SCANNER_PROBE_TIMEOUT" envDefault:"5s"`
	MaxConcurrency int           `env:"SCANNER_MAX_CONCURRENCY" envDefault:"8"`
	// HubURLs lists device directories polled by HTTP probes, as type=url pairs.
	HubURLs []string `env:"SCANNER_HUB_URLS" envSeparator:","`
	// StaticDevices seeds a fixed probe, as type=fingerprint pairs.
	StaticDevices []string `env:"SCANNER_STATIC_DEVICES" envSeparator:","`
}
