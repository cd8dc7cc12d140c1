package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "camelsnake", configBaseName)
	assert.Equal(t, "camelsnake.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "run.marker", markerConfigKey)
	assert.Equal(t, "run.docs", docsConfigKey)
	assert.Equal(t, "run.report", reportConfigKey)
	assert.Equal(t, "run.sweep_on_abort", sweepOnAbortConfigKey)
	assert.Equal(t, "metrics.textfile", metricsFileConfigKey)
	assert.True(t, defaultSweepOnAbort)
	assert.Equal(t, "CAMELSNAKE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestDefaultLogFilename(t *testing.T) {
	assert.Equal(t, "camelsnake.log", filepath.Base(defaultLogFilename))
	assert.Equal(t, "camelsnake", filepath.Base(filepath.Dir(defaultLogFilename)))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "logs", "camelsnake.log")

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)

	slog.Debug("Logger configured", "path", logPath)

	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
	assert.FileExists(t, logPath)
}
