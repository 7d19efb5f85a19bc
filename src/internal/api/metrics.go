package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace is the prefix of every exported metric.
const Namespace = "octetpost"

const (
	// LabelMethod is the HTTP method of a request.
	LabelMethod = "method"

	// LabelRoute is the matched route pattern, never the raw path.
	LabelRoute = "route"

	// LabelCode is the response status code.
	LabelCode = "code"

	labelValueUnmatched = "unmatched"
)

// Metrics holds the request metrics of one server. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	manifestOrders prometheus.Histogram
}

// NewMetrics creates the collectors on a fresh registry, so several servers
// in one process (as in tests) never collide.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
	}

	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests by method, route and status code",
	}, []string{LabelMethod, LabelRoute, LabelCode})

	m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by method and route",
		Buckets:   prometheus.DefBuckets,
	}, []string{LabelMethod, LabelRoute})

	m.manifestOrders = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "manifest",
		Name:      "orders",
		Help:      "Number of orders in successfully decoded manifests",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: Namespace}),
		m.requests,
		m.duration,
		m.manifestOrders,
	)

	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and duration labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := wrapResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		route := labelValueUnmatched
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveManifestOrders records the order count of a decoded manifest.
func (m *Metrics) ObserveManifestOrders(orders int) {
	if m == nil {
		return
	}
	m.manifestOrders.Observe(float64(orders))
}
