package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

func sampleResult() m.RunResult {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	return m.RunResult{
		Mode:       m.ModeDefaultPolicy,
		Status:     m.StatusPartial,
		StartedAt:  start,
		FinishedAt: start.Add(2 * time.Second),
		Modules:    3,
		Entries: []m.LedgerEntry{
			{Old: "myVar", New: "my_var", Accepted: true, Origin: m.OriginPolicy},
			{Old: "camelArg", New: "camel_arg", Accepted: false, Origin: m.OriginPolicy},
			{Old: "dynName", New: "dyn_name", Accepted: false, Origin: m.OriginResolver},
		},
		Warnings: []m.Warning{{Kind: m.WarnPreExistingCollision}, {Kind: m.WarnResolveSkipped}},
		PostPass: []m.Warning{{Kind: m.WarnStalePreimage}},
		Swept:    []m.Path{"a.py", "b.py"},
	}
}

func value(t *testing.T, metric prometheus.Metric) float64 {
	t.Helper()

	var pb dto.Metric
	require.NoError(t, metric.Write(&pb))

	if pb.Counter != nil {
		return pb.GetCounter().GetValue()
	}

	return pb.GetGauge().GetValue()
}

func TestMetrics_ObserveRun(t *testing.T) {
	metrics := NewMetrics()
	metrics.ObserveRun(sampleResult())

	assert.InDelta(t, 1, value(t, metrics.Decisions.WithLabelValues("policy", "accepted")), 0)
	assert.InDelta(t, 1, value(t, metrics.Decisions.WithLabelValues("policy", "rejected")), 0)
	assert.InDelta(t, 1, value(t, metrics.Decisions.WithLabelValues("resolver", "rejected")), 0)
	assert.InDelta(t, 1, value(t, metrics.Warnings.WithLabelValues("STALE_PREIMAGE")), 0)
	assert.InDelta(t, 3, value(t, metrics.Modules), 0)
	assert.InDelta(t, 2, value(t, metrics.SweptFiles), 0)
	assert.InDelta(t, 1, value(t, metrics.LastRunStatus.WithLabelValues("partial")), 0)
	assert.InDelta(t, 0, value(t, metrics.LastRunStatus.WithLabelValues("complete")), 0)
}

func TestMetrics_PrivateRegistry(t *testing.T) {
	first := NewMetrics()
	second := NewMetrics()

	first.ObserveRun(sampleResult())

	assert.InDelta(t, 0, value(t, second.Modules), 0)
}

func TestMetrics_WriteTextfile(t *testing.T) {
	metrics := NewMetrics()
	metrics.ObserveRun(sampleResult())

	path := filepath.Join(t.TempDir(), "camelsnake.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "camelsnake_decisions_total")
	assert.Contains(t, string(content), `kind="PRE_EXISTING_COLLISION"`)
}
