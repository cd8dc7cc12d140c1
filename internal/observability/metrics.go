// Package observability holds the Prometheus counters of a camelsnake run.
package observability

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// Metrics is a private registry, so a run never exposes counters of an
// earlier run in the same process.
type Metrics struct {
	registry *prometheus.Registry

	Decisions     *prometheus.CounterVec
	Warnings      *prometheus.CounterVec
	Modules       prometheus.Counter
	SweptFiles    prometheus.Counter
	RunDuration   *prometheus.HistogramVec
	LastRunStatus *prometheus.GaugeVec
}

// NewMetrics registers the run metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "camelsnake_decisions_total",
			Help: "Ledger entries recorded, by origin and outcome.",
		}, []string{"origin", "outcome"}),
		Warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "camelsnake_warnings_total",
			Help: "Warnings emitted, by kind.",
		}, []string{"kind"}),
		Modules: factory.NewCounter(prometheus.CounterOpts{
			Name: "camelsnake_modules_total",
			Help: "Modules in the processed module set.",
		}),
		SweptFiles: factory.NewCounter(prometheus.CounterOpts{
			Name: "camelsnake_swept_files_total",
			Help: "Files rewritten by the quarantine sweep.",
		}),
		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "camelsnake_run_seconds",
			Help:    "Wall time of a run.",
			Buckets: prometheus.DefBuckets,
		}, []string{"mode"}),
		LastRunStatus: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "camelsnake_last_run_status",
			Help: "1 for the status of the last run, 0 otherwise.",
		}, []string{"status"}),
	}
}

// Registry exposes the registry for tests and custom exporters.
func (x *Metrics) Registry() *prometheus.Registry {
	return x.registry
}

// ObserveRun folds a finished run into the counters.
func (x *Metrics) ObserveRun(result m.RunResult) {
	for _, entry := range result.Entries {
		outcome := "rejected"
		if entry.Accepted {
			outcome = "accepted"
		}

		x.Decisions.WithLabelValues(string(entry.Origin), outcome).Inc()
	}

	for _, w := range result.Warnings {
		x.Warnings.WithLabelValues(string(w.Kind)).Inc()
	}

	for _, w := range result.PostPass {
		x.Warnings.WithLabelValues(string(w.Kind)).Inc()
	}

	x.Modules.Add(float64(result.Modules))
	x.SweptFiles.Add(float64(len(result.Swept)))

	if !result.FinishedAt.IsZero() {
		x.RunDuration.WithLabelValues(string(result.Mode)).Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())
	}

	for _, status := range []m.RunStatus{m.StatusComplete, m.StatusPartial} {
		value := 0.0
		if status == result.Status {
			value = 1
		}

		x.LastRunStatus.WithLabelValues(string(status)).Set(value)
	}
}

// WriteTextfile writes the registry in the node-exporter textfile format.
func (x *Metrics) WriteTextfile(path string) error {
	start := time.Now()

	if err := prometheus.WriteToTextfile(path, x.registry); err != nil {
		slog.Error("Failed to write metrics textfile", "path", path, "error", err)
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	slog.Debug("Metrics written", "path", path, "elapsed", time.Since(start))

	return nil
}
