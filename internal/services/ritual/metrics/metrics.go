// Package metrics exposes ritual service counters in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ritual"

// Metrics holds the collectors recorded by the ritual service and its
// interceptors. A nil *Metrics records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	performed       prometheus.Counter
	milestones      prometheus.Counter
	traitSyncs      prometheus.Counter
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers ritual collectors, plus Go runtime and process collectors,
// on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		performed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "performed_total",
			Help:      "Total number of rituals performed.",
		}),
		milestones: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "milestones_total",
			Help:      "Total number of ritual milestones reached.",
		}),
		traitSyncs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trait_syncs_total",
			Help:      "Total number of trait synchronization requests acknowledged.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Total number of unary gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "Unary gRPC request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	registry.MustRegister(
		m.performed,
		m.milestones,
		m.traitSyncs,
		m.requests,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// TrackCount exposes the live ritual count read from count at scrape time.
// It may be called once per Metrics.
func (m *Metrics) TrackCount(count func() uint64) error {
	if m == nil || count == nil {
		return nil
	}
	return m.registry.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "count",
		Help:      "Current ritual count held by the service.",
	}, func() float64 {
		return float64(count())
	}))
}

// ObserveRitual records one performed ritual.
func (m *Metrics) ObserveRitual() {
	if m == nil {
		return
	}
	m.performed.Inc()
}

// ObserveMilestone records one milestone.
func (m *Metrics) ObserveMilestone() {
	if m == nil {
		return
	}
	m.milestones.Inc()
}

// ObserveTraitSync records one acknowledged trait synchronization.
func (m *Metrics) ObserveTraitSync() {
	if m == nil {
		return
	}
	m.traitSyncs.Inc()
}

// ObserveRequest records the outcome of one unary gRPC call.
func (m *Metrics) ObserveRequest(method, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, code).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Registry returns the registry holding the ritual collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
