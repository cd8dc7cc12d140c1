package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

func TestYAMLReportStore_SaveReport(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "run.yaml"))

	result := m.RunResult{
		RunID:      "6f1c",
		Root:       "/src/app",
		Mode:       m.ModeDefaultPolicy,
		Status:     m.StatusPartial,
		StartedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		FinishedAt: time.Date(2026, 1, 2, 3, 5, 5, 0, time.UTC),
		Modules:    2,
		Entries: []m.LedgerEntry{
			{Module: "a.py", Old: "camelArg", New: "camel_arg", Kind: m.KindParameter, Accepted: false, Origin: m.OriginPolicy},
		},
		Warnings: []m.Warning{
			{Kind: m.WarnPreExistingCollision, Module: "a.py", Old: "camelArg", New: "camel_arg"},
		},
	}

	require.NoError(t, store.SaveReport(path, result))

	raw, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "status: partial")
	assert.Contains(t, string(raw), "kind: PRE_EXISTING_COLLISION")
	assert.Contains(t, string(raw), "origin: policy")

	loaded, err := store.LoadReport(path)
	require.NoError(t, err)
	assert.Equal(t, result.RunID, loaded.RunID)
	assert.Equal(t, result.Entries, loaded.Entries)
	assert.Equal(t, result.Warnings, loaded.Warnings)
	assert.True(t, result.StartedAt.Equal(loaded.StartedAt))
}

func TestYAMLReportStore_LoadReport_Missing(t *testing.T) {
	_, err := NewReportStore().LoadReport(m.Path(filepath.Join(t.TempDir(), "none.yaml")))
	require.Error(t, err)
}
