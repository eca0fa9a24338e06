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

// Metrics owns the service collectors and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	transitionsTotal    *prometheus.CounterVec
	lineSyncChanges     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lab_result_transitions_total",
				Help: "Result state machine actions by outcome",
			},
			[]string{"action", "outcome"},
		),
		lineSyncChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lab_line_sync_changes_total",
				Help: "Lines added or removed by result line synchronization",
			},
			[]string{"collection", "op"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.transitionsTotal,
		m.lineSyncChanges,
	)
	return m
}

// TransitionObserved counts one state machine action. outcome is "applied",
// "rejected" or "conflict".
func (m *Metrics) TransitionObserved(action, outcome string) {
	m.transitionsTotal.WithLabelValues(action, outcome).Inc()
}

// LinesSynced counts lines added or removed in one collection.
func (m *Metrics) LinesSynced(collection, op string, n int) {
	if n <= 0 {
		return
	}
	m.lineSyncChanges.WithLabelValues(collection, op).Add(float64(n))
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
