// Package metrics provides Prometheus metrics collection for the invoice service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// InvoiceOperationsTotal tracks invoice service operations by result.
	InvoiceOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "invoice_operations_total",
			Help: "Total number of invoice service operations",
		},
		[]string{"operation", "result"},
	)

	// InvoiceOperationDuration tracks invoice service operation duration.
	InvoiceOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "invoice_operation_duration_seconds",
			Help:    "Invoice service operation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"operation"},
	)

	// CacheOperationsTotal tracks cache operations per region.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"region", "operation", "result"},
	)

	// StoreOperationsTotal tracks durable store operations per backend.
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of durable store operations",
		},
		[]string{"backend", "operation", "result"},
	)

	// CircuitBreakerState exposes the circuit breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordInvoiceOperation records metrics for an invoice service operation.
func RecordInvoiceOperation(operation string, duration time.Duration, result string) {
	InvoiceOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	InvoiceOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(region, operation, result string) {
	CacheOperationsTotal.WithLabelValues(region, operation, result).Inc()
}

// RecordStoreOperation records metrics for a store operation.
func RecordStoreOperation(backend, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreOperationsTotal.WithLabelValues(backend, operation, result).Inc()
}

// SetCircuitBreakerState publishes the numeric state of a circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
