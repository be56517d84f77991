// Package monitoring exposes prometheus metrics for the learnloop API:
// standard HTTP request counters plus planner operation counters.
package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// OperationCounter counts planner operations by name: create_plan,
	// start_session, take_test, end_session.
	OperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnloop_operations_total",
			Help: "Total number of planner operations",
		},
		[]string{"operation"},
	)

	// TestScores tracks the distribution of simulated test scores.
	TestScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "learnloop_test_score",
			Help:    "Distribution of weekly test scores",
			Buckets: []float64{50, 60, 70, 80, 90, 100},
		},
	)
)

var registerOnce sync.Once

// Init registers all learnloop collectors with the default registry.
// Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(OperationCounter)
		prometheus.MustRegister(TestScores)
	})
}

// MetricsMiddleware records request count and latency per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// PrometheusHandler adapts promhttp for gin routing.
func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
