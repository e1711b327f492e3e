package task

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments a PoolManager with Prometheus gauges/histograms
// registered through promauto.
type Metrics struct {
	TasksActive  prometheus.Gauge
	TaskDuration prometheus.Histogram
}

// NewMetrics registers a fresh set of task-manager gauges/histograms
// against reg. Pass prometheus.DefaultRegisterer for process-wide metrics,
// or a dedicated *prometheus.Registry in tests to avoid collisions across
// table-driven subtests that each construct a PoolManager.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TasksActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cadio_import_tasks_active",
			Help: "Number of in-flight ReadFile tasks in the import pipeline worker pool.",
		}),
		TaskDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cadio_import_task_duration_seconds",
			Help:    "Duration of a single ReadFile task in the import pipeline worker pool.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
