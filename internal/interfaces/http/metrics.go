package http

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRegistry holds the Prometheus metrics for the scoring API.
type MetricsRegistry struct {
	ScoresTotal      *prometheus.CounterVec
	ScoreDuration    prometheus.Histogram
	ExternalFailures *prometheus.CounterVec
	RequestsTotal    *prometheus.CounterVec
}

// NewMetricsRegistry creates and registers all metrics on a fresh
// registry, returned alongside for the /metrics handler.
func NewMetricsRegistry() (*MetricsRegistry, *prometheus.Registry) {
	reg := prometheus.NewRegistry()

	m := &MetricsRegistry{
		ScoresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokensight_scores_total",
				Help: "Completed risk assessments by level and plan",
			},
			[]string{"level", "plan"},
		),
		ScoreDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tokensight_score_duration_seconds",
				Help:    "End-to-end scoring duration including external calls",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
		),
		ExternalFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokensight_external_failures_total",
				Help: "External service calls that degraded to a fallback path",
			},
			[]string{"service"},
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokensight_http_requests_total",
				Help: "HTTP requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
	}

	reg.MustRegister(m.ScoresTotal, m.ScoreDuration, m.ExternalFailures, m.RequestsTotal)
	return m, reg
}
