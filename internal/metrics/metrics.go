// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the counters updated by handlers and middleware.
type Metrics struct {
	// FetchTotal counts caption fetches by outcome (ok, empty, config_missing, ...).
	FetchTotal *prometheus.CounterVec
	// RequestsTotal counts rate limiter decisions. The status is "allowed" or "blocked".
	RequestsTotal *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "captionboard_fetch_total",
			Help: "Total number of caption fetches by outcome",
		}, []string{"outcome"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "captionboard_requests_total",
			Help: "Total number of requests processed by the rate limiter",
		}, []string{"status"}),
	}
}

// ObserveFetch records one fetch outcome.
func (m *Metrics) ObserveFetch(outcome string) {
	m.FetchTotal.WithLabelValues(outcome).Inc()
}
