package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// ReportStore exports the end-of-run report. Reports are never read back by
// camelsnake; LoadReport exists for tooling and tests.
type ReportStore interface {
	SaveReport(path m.Path, result m.RunResult) error
	LoadReport(path m.Path) (m.RunResult, error)
}

// YAMLReportStore writes reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore creates the YAML report store.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes result to path, creating parent directories.
func (s *YAMLReportStore) SaveReport(path m.Path, result m.RunResult) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		slog.Error("Failed to encode report", "path", path, "error", err)
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("Failed to create report directory", "path", dir, "error", err)
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("Report written", "path", path, "entries", len(result.Entries))

	return nil
}

// LoadReport decodes a report written by SaveReport.
func (s *YAMLReportStore) LoadReport(path m.Path) (m.RunResult, error) {
	var result m.RunResult

	data, err := os.ReadFile(string(path))
	if err != nil {
		return result, fmt.Errorf("failed to read report: %w", err)
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("failed to decode report: %w", err)
	}

	return result, nil
}
