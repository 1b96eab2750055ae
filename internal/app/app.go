package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-device-payments/config"
	"github.com/jeffleon2/draftea-device-payments/internal/archive"
	"github.com/jeffleon2/draftea-device-payments/internal/device"
	"github.com/jeffleon2/draftea-device-payments/internal/discovery"
	"github.com/jeffleon2/draftea-device-payments/internal/dispatch"
	"github.com/jeffleon2/draftea-device-payments/internal/events"
	"github.com/jeffleon2/draftea-device-payments/internal/gateway"
	"github.com/jeffleon2/draftea-device-payments/internal/handlers"
	"github.com/jeffleon2/draftea-device-payments/internal/ledger"
	"github.com/jeffleon2/draftea-device-payments/internal/metrics"
	"github.com/jeffleon2/draftea-device-payments/internal/models"
	"github.com/jeffleon2/draftea-device-payments/internal/models/dto"
	"github.com/jeffleon2/draftea-device-payments/internal/publisher"
	"github.com/jeffleon2/draftea-device-payments/internal/registry"
	"github.com/jeffleon2/draftea-device-payments/internal/repository/posgrest"
	"github.com/jeffleon2/draftea-device-payments/internal/subscriber"
	"github.com/jeffleon2/draftea-device-payments/internal/translator"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	Router *gin.Engine

	Registry *registry.Registry
	Ledger   *ledger.Ledger
	Engine   *dispatch.Engine
	Scanner  *discovery.Scanner

	cancel    context.CancelFunc
	bus       *events.Bus
	consumers sync.WaitGroup
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg
	ctx, a.cancel = context.WithCancel(ctx)
	metrics.RegisterMetrics()

	a.bus = events.NewBus()
	a.consume(ctx, "metrics", metrics.NewRecorder().HandleEvent)

	a.Registry = registry.New(cfg.Registry.MinFingerprintLength, a.bus)
	a.Ledger = ledger.New()

	gw, err := gateway.New(cfg.Gateway)
	if err != nil {
		return fmt.Errorf("error building gateway: %w", err)
	}

	a.Engine = dispatch.NewEngine(
		a.Registry,
		a.Ledger,
		gw,
		a.bus,
		translator.NewInputTranslator(cfg.Translator.DemoDefaults),
		translator.DefaultOutputTranslator(),
		dispatch.Config{
			PaymentTimeout:     cfg.Dispatch.PaymentTimeout,
			SerializePerDevice: cfg.Dispatch.SerializePerDevice,
		},
	)

	if err := a.initScanner(ctx); err != nil {
		return err
	}

	txArchive, err := a.initArchive(ctx)
	if err != nil {
		return err
	}

	deviceHandler := handlers.NewDeviceHandler(a.Registry, func(req dto.RegisterDevice) models.Device {
		return device.NewRemoteDevice(req, nil)
	})
	paymentHandler := handlers.NewPaymentHandler(a.Engine, a.Registry)
	transactionHandler := handlers.NewTransactionHandler(a.Ledger, txArchive)
	discoveryHandler := handlers.NewDiscoveryHandler(a.Scanner)

	a.Router = gin.Default()
	a.Router.Use(metrics.PrometheusMiddleware())
	a.RegisterRoutes(deviceHandler, paymentHandler, transactionHandler, discoveryHandler)

	if cfg.Kafka.Enabled {
		a.initKafka(ctx, paymentHandler)
	}

	logrus.WithFields(logrus.Fields{
		"gateway":   cfg.Gateway.Mode,
		"scanner":   cfg.Scanner.Enabled,
		"kafka":     cfg.Kafka.Enabled,
		"archive":   cfg.DB.ArchiveEnabled,
		"serialize": cfg.Dispatch.SerializePerDevice,
	}).Info("Device payments service initialized")
	return nil
}

func (a *App) initScanner(ctx context.Context) error {
	probes, err := discovery.HubProbes(a.config.Scanner.HubURLs, nil)
	if err != nil {
		return fmt.Errorf("error building hub probes: %w", err)
	}
	static, err := discovery.StaticProbeFromEntries("static", a.config.Scanner.StaticDevices)
	if err != nil {
		return fmt.Errorf("error building static probe: %w", err)
	}
	if static != nil {
		probes = append(probes, static)
	}

	a.Scanner = discovery.NewScanner(a.Registry, a.bus, discovery.Config{
		Interval:       a.config.Scanner.Interval,
		ProbeTimeout:   a.config.Scanner.ProbeTimeout,
		MaxConcurrency: a.config.Scanner.MaxConcurrency,
	}, probes...)

	if !a.config.Scanner.Enabled {
		return nil
	}
	if len(probes) == 0 {
		logrus.Warn("Discovery scanner enabled without probes, not scheduling scans")
		return nil
	}
	return a.Scanner.Start(ctx)
}

// initArchive returns a nil archive when archiving is disabled.
func (a *App) initArchive(ctx context.Context) (handlers.TransactionArchive, error) {
	if !a.config.DB.ArchiveEnabled {
		return nil, nil
	}

	db, err := a.config.DB.GormConnect(&models.TransactionRecord{})
	if err != nil {
		return nil, err
	}

	txArchive := archive.New(posgrest.New[models.TransactionRecord](db))
	a.consume(ctx, "archive", txArchive.HandleEvent)
	return txArchive, nil
}

func (a *App) initKafka(ctx context.Context, paymentHandler *handlers.PaymentHandler) {
	retry := a.config.GetRetryConfig()
	publishTopics := strings.Split(a.config.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(a.config.Kafka.Brokers, publishTopics, retry)
	a.consume(ctx, "kafka", publisher.NewForwarder(a.publisher).HandleEvent)

	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	a.consumer = subscriber.NewMultiTopicConsumer(brokers, topics, a.config.Kafka.ConsumerGroup, a.publisher, retry)

	a.consumer.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		logrus.Debugf("Received message → topic=%s value=%s", topic, string(value))
		return paymentHandler.HandleEvents(ctx, topic, value)
	})
}

// consume attaches a bus subscriber. Subscribers outlive ctx so events
// published during shutdown are still drained when the bus closes.
func (a *App) consume(ctx context.Context, name string, handle func(context.Context, models.Event)) {
	ch := a.bus.Subscribe(name, a.config.Dispatch.EventBuffer)
	a.consumers.Add(1)
	go func() {
		defer a.consumers.Done()
		events.Consume(context.WithoutCancel(ctx), ch, handle)
	}()
}

// Run serves HTTP until ctx is done, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP shutdown: %v", err)
	}
	a.Close()
	return runErr
}

// Close stops background work. Scanner and Kafka consumers stop first so
// nothing new reaches the bus, then the bus is drained.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.Scanner != nil {
		a.Scanner.Stop()
	}
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			logrus.Errorf("Closing Kafka consumer: %v", err)
		}
	}
	if a.bus != nil {
		a.bus.Close()
		a.consumers.Wait()
	}
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logrus.Errorf("Closing Kafka publisher: %v", err)
		}
	}
	logrus.Info("Device payments service stopped")
}
