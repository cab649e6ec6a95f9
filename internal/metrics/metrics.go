// Package metrics exposes Prometheus instrumentation for the HTTP API,
// viewer sessions and carousel autoplay.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rpggio/reel/internal/domain/session"
)

var _ session.Observer = (*Metrics)(nil)

// Metrics holds the service's Prometheus collectors.
//
// All metrics are prefixed with "reel_":
//   - reel_http_requests_total{method,route,status}
//   - reel_http_request_duration_seconds{method,route}
//   - reel_sessions_active
//   - reel_sessions_opened_total
//   - reel_sessions_closed_total{reason}
//   - reel_carousel_advances_total
type Metrics struct {
	gatherer prometheus.Gatherer

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	SessionsActive prometheus.Gauge
	SessionsOpened prometheus.Counter
	SessionsClosed *prometheus.CounterVec

	CarouselAdvances prometheus.Counter
}

// New registers the collectors on a fresh registry, so repeated calls
// (one per test server) never collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the collectors on reg and serves gatherer.
func NewWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: gatherer,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reel_http_requests_total",
				Help: "Total HTTP requests by method, route pattern and status code",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reel_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route"},
		),

		SessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "reel_sessions_active",
			Help: "Viewer sessions currently open",
		}),
		SessionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "reel_sessions_opened_total",
			Help: "Total viewer sessions opened",
		}),
		SessionsClosed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reel_sessions_closed_total",
				Help: "Total viewer sessions closed by reason",
			},
			[]string{"reason"}, // "client", "idle" or "shutdown"
		),

		CarouselAdvances: factory.NewCounter(prometheus.CounterOpts{
			Name: "reel_carousel_advances_total",
			Help: "Total autoplay advances across all carousels",
		}),
	}
}

// SessionOpened implements session.Observer.
func (m *Metrics) SessionOpened() {
	m.SessionsOpened.Inc()
	m.SessionsActive.Inc()
}

// SessionClosed implements session.Observer.
func (m *Metrics) SessionClosed(reason session.CloseReason) {
	m.SessionsClosed.WithLabelValues(string(reason)).Inc()
	m.SessionsActive.Dec()
}

// CarouselAdvanced implements session.Observer.
func (m *Metrics) CarouselAdvanced() {
	m.CarouselAdvances.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency. Routes are labeled by
// their chi pattern so path parameters don't explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
