package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics records request counts and latencies on its own registry so that
// several routers (tests, fallback mode) can coexist in one process.
type HTTPMetrics struct {
	ServiceName string

	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	statusCategory *prometheus.CounterVec
	loginAttempts  *prometheus.CounterVec
}

func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{
		ServiceName: serviceName,
		registry:    prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 3xx, 4xx, 5xx)",
			},
			[]string{"service", "category"},
		),
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "admin_login_attempts_total",
				Help: "Admin login attempts by outcome",
			},
			[]string{"service", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.statusCategory,
		m.loginAttempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func category(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Middleware records metrics for every request after it is handled.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusStr := strconv.Itoa(status)

		m.requests.WithLabelValues(m.ServiceName, c.Request.Method, path, statusStr).Inc()
		m.statusCategory.WithLabelValues(m.ServiceName, category(status)).Inc()
		m.duration.WithLabelValues(m.ServiceName, c.Request.Method, path, statusStr).
			Observe(time.Since(start).Seconds())
	}
}

// ObserveLogin counts a login attempt; outcome is "success", "failure" or "error".
func (m *HTTPMetrics) ObserveLogin(outcome string) {
	m.loginAttempts.WithLabelValues(m.ServiceName, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
