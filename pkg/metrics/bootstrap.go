package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "qawafel"

// BootstrapMetrics records init loader activity.
type BootstrapMetrics struct {
	snapshot *prometheus.HistogramVec
	seeds    *prometheus.CounterVec
}

// NewBootstrapMetrics registers the loader metrics on the provided registerer.
func NewBootstrapMetrics(reg prometheus.Registerer) *BootstrapMetrics {
	if reg == nil {
		return &BootstrapMetrics{}
	}
	snapshot := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_load_duration_seconds",
		Help:      "Duration of full snapshot loads in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})
	seeds := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Default-data seed attempts by result.",
	}, []string{"result"})
	reg.MustRegister(snapshot, seeds)
	return &BootstrapMetrics{snapshot: snapshot, seeds: seeds}
}

// ObserveSnapshot records how long a snapshot read took.
func (b *BootstrapMetrics) ObserveSnapshot(took time.Duration, err error) {
	if b == nil || b.snapshot == nil {
		return
	}
	b.snapshot.WithLabelValues(result(err)).Observe(took.Seconds())
}

// IncSeed counts one seed attempt.
func (b *BootstrapMetrics) IncSeed(err error) {
	if b == nil || b.seeds == nil {
		return
	}
	b.seeds.WithLabelValues(result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
