package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// PyprojectFile is the file ProjectConfigLoader looks for in the project root.
const PyprojectFile = "pyproject.toml"

// ProjectConfigLoader reads the per-project [tool.camelsnake] table.
type ProjectConfigLoader interface {
	LoadProjectConfig(root m.Path) (m.ProjectConfig, error)
}

type pyproject struct {
	Tool struct {
		Camelsnake m.ProjectConfig `toml:"camelsnake"`
	} `toml:"tool"`
}

// LocalProjectConfigLoader decodes pyproject.toml with BurntSushi/toml.
type LocalProjectConfigLoader struct {
	fs SourceFSAdapter
}

// NewLocalProjectConfigLoader creates a loader reading through fs.
func NewLocalProjectConfigLoader(fs SourceFSAdapter) *LocalProjectConfigLoader {
	return &LocalProjectConfigLoader{fs: fs}
}

// LoadProjectConfig returns the zero config when root has no pyproject.toml
// or the file has no [tool.camelsnake] table.
func (l *LocalProjectConfigLoader) LoadProjectConfig(root m.Path) (m.ProjectConfig, error) {
	path := l.fs.JoinPath(string(root), PyprojectFile)

	data, err := l.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m.ProjectConfig{}, nil
	}

	if err != nil {
		slog.Error("Failed to read project config", "path", path, "error", err)
		return m.ProjectConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc pyproject
	if _, err := toml.Decode(string(data), &doc); err != nil {
		slog.Error("Failed to decode project config", "path", path, "error", err)
		return m.ProjectConfig{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	slog.Debug("Loaded project config", "path", path, "exclude", doc.Tool.Camelsnake.Exclude)

	return doc.Tool.Camelsnake, nil
}
