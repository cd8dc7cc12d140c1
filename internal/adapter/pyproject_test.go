package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

func TestLocalProjectConfigLoader_LoadProjectConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    m.ProjectConfig
		wantErr bool
	}{
		{
			name: "camelsnake table",
			content: `[project]
name = "demo"

[tool.camelsnake]
exclude = ["tests/**", "*_pb2.py"]
docs = true
marker = "_Reviewed_"
`,
			want: m.ProjectConfig{Exclude: []string{"tests/**", "*_pb2.py"}, Docs: true, Marker: "_Reviewed_"},
		},
		{
			name:    "no camelsnake table",
			content: "[tool.black]\nline-length = 100\n",
			want:    m.ProjectConfig{},
		},
		{
			name:    "invalid toml",
			content: "[tool.camelsnake\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTestFile(t, filepath.Join(root, PyprojectFile), tt.content)

			loader := NewLocalProjectConfigLoader(NewLocalSourceFSAdapter())
			got, err := loader.LoadProjectConfig(m.Path(root))

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		loader := NewLocalProjectConfigLoader(NewLocalSourceFSAdapter())

		got, err := loader.LoadProjectConfig(m.Path(t.TempDir()))
		require.NoError(t, err)
		assert.Equal(t, m.ProjectConfig{}, got)
	})
}
