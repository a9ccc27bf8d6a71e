// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "toneshift"

// Transform outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Metrics holds all collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	transforms        *prometheus.CounterVec
	transformDuration *prometheus.HistogramVec
	appends           *prometheus.CounterVec
	appendsInFlight   prometheus.Gauge
	feedReads         prometheus.Counter
	feedRecords       prometheus.Histogram
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New creates a Metrics with Go runtime and process collectors registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		transforms: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transforms_total",
			Help:      "Transformation requests by tone and outcome.",
		}, []string{"tone", "outcome"}),
		transformDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transform_duration_seconds",
			Help:      "Time spent producing a transformation, including the model call.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"tone"}),
		appends: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appends_total",
			Help:      "Background record appends by outcome.",
		}, []string{"outcome"}),
		appendsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "appends_in_flight",
			Help:      "Background record appends not yet finished.",
		}),
		feedReads: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_reads_total",
			Help:      "Community feed reads.",
		}),
		feedRecords: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_records",
			Help:      "Records returned per community feed read.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveTransform records one transformation attempt.
func (m *Metrics) ObserveTransform(tone, outcome string, d time.Duration) {
	m.transforms.WithLabelValues(tone, outcome).Inc()
	if outcome == OutcomeOK {
		m.transformDuration.WithLabelValues(tone).Observe(d.Seconds())
	}
}

// AppendStarted marks a background append as in flight.
func (m *Metrics) AppendStarted() { m.appendsInFlight.Inc() }

// AppendFinished records the outcome of a background append.
func (m *Metrics) AppendFinished(err error) {
	m.appendsInFlight.Dec()
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.appends.WithLabelValues(outcome).Inc()
}

// ObserveFeedRead records one feed read returning n records.
func (m *Metrics) ObserveFeedRead(n int) {
	m.feedReads.Inc()
	m.feedRecords.Observe(float64(n))
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
