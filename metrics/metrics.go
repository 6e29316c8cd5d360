// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quickly_score"

// Metrics holds the Prometheus collectors for the service. All methods are
// safe on a nil *Metrics, which records nothing.
type Metrics struct {
	registry *prometheus.Registry

	submissions        *prometheus.CounterVec
	submissionDuration prometheus.Histogram
	importRows         *prometheus.CounterVec
	sessionEvents      *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New creates the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_submissions_total",
			Help:      "Score sheet submissions by outcome.",
		}, []string{"outcome"}),
		submissionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score_submission_duration_seconds",
			Help:      "Time to validate and store a score sheet.",
			Buckets:   prometheus.DefBuckets,
		}),
		importRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      "Imported sheet rows by kind and result.",
		}, []string{"kind", "result"}),
		sessionEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_events_total",
			Help:      "Live session changes by action.",
		}, []string{"action"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.submissions,
		m.submissionDuration,
		m.importRows,
		m.sessionEvents,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSubmission records one submission attempt.
func (m *Metrics) ObserveSubmission(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
	m.submissionDuration.Observe(d.Seconds())
}

// AddImportRows records inserted and skipped rows for one import.
func (m *Metrics) AddImportRows(kind string, inserted, skipped int) {
	if m == nil {
		return
	}
	m.importRows.WithLabelValues(kind, "inserted").Add(float64(inserted))
	m.importRows.WithLabelValues(kind, "skipped").Add(float64(skipped))
}

// SessionEvent counts an activate, start or stop.
func (m *Metrics) SessionEvent(action string) {
	if m == nil {
		return
	}
	m.sessionEvents.WithLabelValues(action).Inc()
}

// ObserveHTTP records one completed request. route is the mux pattern, not
// the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
