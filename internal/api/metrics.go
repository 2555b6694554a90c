package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's counters on a private registry, so tests can
// build as many handlers as they like.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	operations  *prometheus.CounterVec
	reloads     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitengine",
			Name:      "conversions_total",
			Help:      "Unit conversions served, by outcome.",
		}, []string{"outcome"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitengine",
			Name:      "operations_total",
			Help:      "Quantity operations served, by operation and outcome.",
		}, []string{"op", "outcome"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "unitengine",
			Name:      "data_loads_total",
			Help:      "Data file loads, by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(m.conversions, m.operations, m.reloads)
	return m
}

// ObserveLoad records a data load attempt.
func (m *Metrics) ObserveLoad(err error) {
	m.reloads.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
