package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// OrdersTotal tracks orders by lifecycle outcome
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of orders by status",
		},
		[]string{"status"},
	)

	// DeliveriesTotal tracks settled deliveries
	DeliveriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deliveries_total",
			Help: "Total number of settled deliveries",
		},
	)

	// SettlementAmount tracks credited order totals
	SettlementAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "settlement_amount",
			Help:    "Order totals credited to restaurants on settlement",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500},
		},
	)

	// AssignmentConflicts tracks lost driver claim races
	AssignmentConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assignment_conflicts_total",
			Help: "Total number of driver claims rejected because the order was taken",
		},
	)
)

// PrometheusMiddleware records request counts and latencies per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(c.Request.Method, c.FullPath(), status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, c.FullPath()).Observe(duration)
	}
}
