// Package metrics collects per-run statistics in a Prometheus registry so they
// can be exported through the node exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage labels for SignalPoints.
const (
	StageExtracted = "extracted"
	StageFinal     = "final"
)

// Direction labels for ActionsTotal.
const (
	DirectionRead    = "read"
	DirectionWritten = "written"
)

// Recorder holds the metrics of a single run.
type Recorder struct {
	registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	SignalPoints      *prometheus.GaugeVec
	ActionsTotal      *prometheus.CounterVec
	RunTimestamp      prometheus.Gauge
}

// New creates a recorder backed by its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsdiff_operations_total",
				Help: "Total number of operations applied to the signal",
			},
			[]string{"operation"},
		),

		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fsdiff_operation_duration_seconds",
				Help:    "Duration of signal operations in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"operation"},
		),

		SignalPoints: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fsdiff_signal_points",
				Help: "Number of points in the derived signal",
			},
			[]string{"stage"},
		),

		ActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsdiff_actions_total",
				Help: "Total number of actions read and written",
			},
			[]string{"direction"},
		),

		RunTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fsdiff_last_run_timestamp_seconds",
				Help: "Unix time the last run finished",
			},
		),
	}
}

// ObserveOperation records one applied operation.
func (r *Recorder) ObserveOperation(name string, _, _ int, elapsed time.Duration) {
	r.OperationsTotal.WithLabelValues(name).Inc()
	r.OperationDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile stamps the run time and writes all metrics to path in the
// text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	r.RunTimestamp.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, r.registry)
}
