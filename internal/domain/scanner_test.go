package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"camelsnake.dev/pkg/camelsnake/internal/adapter"
	adaptermocks "camelsnake.dev/pkg/camelsnake/internal/adapter/mocks"
	cerrors "camelsnake.dev/pkg/camelsnake/internal/errors"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

const scannerSource = `import osPath

MAX_SIZE = 3
seenOnce` + DefaultMarker + `4 = 1


class my_thing:
    pass


def doThing(camelArg, item_count):
    localVal = camelArg
    return localVal + item_count
`

func newScannerModule(t *testing.T) m.Module {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mod.py")
	require.NoError(t, os.WriteFile(path, []byte(scannerSource), 0o600))

	return m.Module{Path: m.Path(path), ShortPath: "mod.py", Name: "mod"}
}

func newTestScanner() Scanner {
	fs := adapter.NewLocalSourceFSAdapter()
	return NewScanner(fs, adapter.NewPythonResolver(fs), NewQuarantine(fs, ""))
}

func TestScanner_Scan(t *testing.T) {
	module := newScannerModule(t)

	seq, err := newTestScanner().Scan(context.Background(), module, nil)
	require.NoError(t, err)

	var got []string
	for occ := range seq {
		got = append(got, occ.Name+"->"+occ.Proposal.New)
		assert.Equal(t, module, occ.Module)
	}

	assert.Equal(t, []string{
		"my_thing->MyThing",
		"doThing->do_thing",
		"camelArg->camel_arg",
		"localVal->local_val",
	}, got)
}

func TestScanner_ScanSkipsKeys(t *testing.T) {
	module := newScannerModule(t)
	scanner := newTestScanner()

	seq, err := scanner.Scan(context.Background(), module, nil)
	require.NoError(t, err)

	skip := SkipList{}

	for occ := range seq {
		if occ.Name == "camelArg" {
			skip[occ.Key()] = true
		}
	}

	require.Len(t, skip, 1)

	seq, err = scanner.Scan(context.Background(), module, skip)
	require.NoError(t, err)

	for occ := range seq {
		assert.NotEqual(t, "camelArg", occ.Name)
	}
}

func TestScanner_ScanStopsEarly(t *testing.T) {
	seq, err := newTestScanner().Scan(context.Background(), newScannerModule(t), nil)
	require.NoError(t, err)

	count := 0

	for range seq {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestScanner_ScanMissingModule(t *testing.T) {
	module := m.Module{Path: m.Path(filepath.Join(t.TempDir(), "gone.py")), ShortPath: "gone.py"}

	_, err := newTestScanner().Scan(context.Background(), module, nil)
	require.Error(t, err)
}

func TestScanner_ScanDefersToResolve(t *testing.T) {
	module := newScannerModule(t)
	token := m.Token{
		Name:   "camelArg",
		Offset: 7,
		Line:   1,
		Symbol: m.Symbol{Name: "camelArg", Kind: m.KindParameter, Binding: 7, Renamable: true},
	}

	tests := []struct {
		name    string
		sym     m.Symbol
		ok      bool
		err     error
		want    int
		wantErr bool
	}{
		{name: "renamable", sym: token.Symbol, ok: true, want: 1},
		{name: "not renamable", sym: m.Symbol{Name: "camelArg", Kind: m.KindParameter}, ok: true},
		{name: "unknown offset"},
		{name: "resolver error", err: cerrors.New(cerrors.CodeInternal, "grammar unavailable"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := adaptermocks.NewMockResolver(t)
			resolver.EXPECT().Analyze(mock.Anything, module.Path, mock.Anything).
				Return(m.Analysis{Path: module.Path, Tokens: []m.Token{token}}, nil).Once()
			resolver.EXPECT().Resolve(mock.Anything, module.Path, mock.Anything, 7).
				Return(tt.sym, tt.ok, tt.err).Once()

			fs := adapter.NewLocalSourceFSAdapter()
			seq, err := NewScanner(fs, resolver, NewQuarantine(fs, "")).Scan(context.Background(), module, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			count := 0
			for range seq {
				count++
			}

			assert.Equal(t, tt.want, count)
		})
	}
}
