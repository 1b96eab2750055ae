package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DevicePaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_payments_total",
			Help: "Total number of device payments by outcome",
		},
		[]string{"status", "device_type"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "device_payment_amounts",
			Help:    "Distribution of settled device payment amounts",
			Buckets: prometheus.LinearBuckets(0, 50, 20),
		},
		[]string{"currency"},
	)

	DevicesRegisteredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devices_registered_total",
			Help: "Total number of devices admitted by the registry",
		},
		[]string{"device_type"},
	)

	DevicesDiscoveredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devices_discovered_total",
			Help: "Total number of unregistered devices announced by discovery",
		},
		[]string{"device_type"},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gateway_circuit_breaker_state",
			Help: "Gateway circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit"},
	)

	CircuitBreakerFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_circuit_breaker_failures_total",
			Help: "Total number of failed calls through the gateway circuit breaker",
		},
		[]string{"circuit"},
	)

	BulkheadActiveRequests = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gateway_bulkhead_active_requests",
			Help: "Number of gateway calls holding a bulkhead slot",
		},
		[]string{"bulkhead"},
	)

	BulkheadRejectedRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_bulkhead_rejected_requests_total",
			Help: "Total number of gateway calls rejected by the bulkhead",
		},
		[]string{"bulkhead"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		DevicePaymentsTotal,
		PaymentAmounts,
		DevicesRegisteredTotal,
		DevicesDiscoveredTotal,
		CircuitBreakerState,
		CircuitBreakerFailures,
		BulkheadActiveRequests,
		BulkheadRejectedRequests,
		RequestsTotal,
		RequestDuration,
	)
}

// PrometheusMiddleware records count and latency of every HTTP request.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
