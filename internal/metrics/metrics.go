// Package metrics exposes Prometheus collectors for the tab service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/tabcalc/internal/models"
)

// Calculation outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeRepeat   = "repeat"
	OutcomeRejected = "rejected"
)

// Metrics holds the service's collectors on a private registry.
type Metrics struct {
	Registry       *prometheus.Registry
	RPCRequests    *prometheus.CounterVec
	RPCDuration    *prometheus.HistogramVec
	Calculations   *prometheus.CounterVec
	ActiveSessions prometheus.Gauge
}

// New registers all collectors, plus Go runtime and process collectors, on a
// fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tabcalc",
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tabcalc",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tabcalc",
			Name:      "calculations_total",
			Help:      "Calculate presses, by split mode and outcome (applied, repeat, rejected).",
		}, []string{"mode", "outcome"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tabcalc",
			Name:      "active_sessions",
			Help:      "Tab sessions currently held in memory.",
		}),
	}
	m.Registry.MustRegister(
		m.RPCRequests,
		m.RPCDuration,
		m.Calculations,
		m.ActiveSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCalculation counts one Calculate press.
func (m *Metrics) ObserveCalculation(mode models.SplitMode, outcome string) {
	m.Calculations.WithLabelValues(string(mode), outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
