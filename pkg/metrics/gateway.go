package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Mutation outcomes recorded on qawafel_mutations_total.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidAction = "invalid_action"
	OutcomeFailed        = "failed"
)

// GatewayMetrics records mutation gateway traffic.
type GatewayMetrics struct {
	mutations *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewGatewayMetrics registers the gateway metrics on the provided registerer.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	if reg == nil {
		return &GatewayMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Mutation gateway dispatches by action and outcome.",
	}, []string{"action", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mutation_duration_seconds",
		Help:      "Duration of mutation gateway writes in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})
	reg.MustRegister(mutations, duration)
	return &GatewayMetrics{mutations: mutations, duration: duration}
}

// Observe records one dispatch.
func (g *GatewayMetrics) Observe(action, outcome string, took time.Duration) {
	if g == nil || g.mutations == nil {
		return
	}
	action = normalizeLabel(action)
	g.mutations.WithLabelValues(action, normalizeLabel(outcome)).Inc()
	g.duration.WithLabelValues(action).Observe(took.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
