package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "camelsnake.dev/pkg/camelsnake/internal/errors"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// newPythonProject writes files under a temp root and returns the project
// with one module per file, in the given order.
func newPythonProject(t *testing.T, files ...[2]string) m.Project {
	t.Helper()

	root := t.TempDir()
	project := m.Project{Root: m.Path(root)}

	for _, file := range files {
		path := filepath.Join(root, file[0])
		writeTestFile(t, path, file[1])

		module := m.Module{
			Path:      m.Path(path),
			ShortPath: m.Path(file[0]),
			Name:      strings.TrimSuffix(strings.ReplaceAll(file[0], "/", "."), ".py"),
		}
		project.Modules = append(project.Modules, module)
		project.Files = append(project.Files, module)
	}

	return project
}

func occurrenceAt(t *testing.T, module m.Module, src, needle, name string) m.Occurrence {
	t.Helper()

	idx := strings.Index(src, needle)
	require.GreaterOrEqual(t, idx, 0, "needle %q not found", needle)

	return m.Occurrence{Module: module, Name: name, Offset: idx + strings.Index(needle, name)}
}

func readString(t *testing.T, path m.Path) string {
	t.Helper()

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)

	return string(content)
}

func TestPythonResolver_Analyze(t *testing.T) {
	src := "limit = 1\n\n\ndef f(camelArg):\n    return camelArg + limit\n"
	resolver := NewPythonResolver(NewLocalSourceFSAdapter())

	analysis, err := resolver.Analyze(context.Background(), "mod.py", []byte(src))
	require.NoError(t, err)

	names := analysis.Names()
	assert.True(t, names.Contains("limit"))
	assert.True(t, names.Contains("f"))
	assert.True(t, names.Contains("camelArg"))

	symbolAt := func(offset int) (m.Symbol, bool) {
		t.Helper()

		sym, ok, err := resolver.Resolve(context.Background(), "mod.py", []byte(src), offset)
		require.NoError(t, err)

		return sym, ok
	}

	fn, ok := symbolAt(strings.Index(src, "f("))
	require.True(t, ok)
	assert.Equal(t, m.KindFunction, fn.Kind)
	assert.True(t, fn.Renamable)

	param, ok := symbolAt(strings.Index(src, "camelArg"))
	require.True(t, ok)
	assert.Equal(t, m.KindParameter, param.Kind)
	assert.Equal(t, "f", param.Scope)

	use, ok := symbolAt(strings.LastIndex(src, "camelArg"))
	require.True(t, ok)
	assert.Equal(t, param.Binding, use.Binding, "use resolves to the parameter")

	global, ok := symbolAt(strings.LastIndex(src, "limit"))
	require.True(t, ok)
	assert.Equal(t, m.KindVariable, global.Kind)
	assert.Equal(t, "", global.Scope)
}

func TestPythonResolver_Resolve(t *testing.T) {
	src := "import os\n\nvalue = os.sep\n"
	resolver := NewPythonResolver(NewLocalSourceFSAdapter())

	t.Run("import binding is not renamable", func(t *testing.T) {
		sym, ok, err := resolver.Resolve(context.Background(), "mod.py", []byte(src), strings.Index(src, "os"))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, m.KindImport, sym.Kind)
		assert.False(t, sym.Renamable)
	})

	t.Run("offset between tokens", func(t *testing.T) {
		_, ok, err := resolver.Resolve(context.Background(), "mod.py", []byte(src), strings.Index(src, " = "))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, _, err := resolver.Resolve(context.Background(), "bad.py", []byte("def (:\n"), 0)
		require.Error(t, err)
		assert.True(t, cerrors.IsCode(err, cerrors.CodeSyntax))
	})
}

func TestPythonResolver_PlanRename_Parameter(t *testing.T) {
	src := "def f(camelArg):\n    camelArg = 555\n    return camelArg\n\n\nf(camelArg=1)\n"
	project := newPythonProject(t, [2]string{"mod.py", src})
	module := project.Modules[0]

	resolver := NewPythonResolver(NewLocalSourceFSAdapter())
	occ := occurrenceAt(t, module, src, "f(camelArg)", "camelArg")

	cs, err := resolver.PlanRename(context.Background(), project, occ, "camel_arg", m.RenameOptions{})
	require.NoError(t, err)
	require.Len(t, cs.Files, 1)

	assert.Equal(t, strings.ReplaceAll(src, "camelArg", "camel_arg"), string(cs.Files[0].Updated))
	assert.Len(t, cs.Files[0].Edits, 4)
	assert.Equal(t, []m.Path{module.Path}, cs.Affected())
	assert.Contains(t, cs.Diff, "--- a/mod.py")
	assert.Contains(t, cs.Diff, "+def f(camel_arg):")

	assert.Equal(t, src, readString(t, module.Path), "planning does not write")
}

func TestPythonResolver_PlanRename_Scopes(t *testing.T) {
	src := "def a(itemCount):\n    return itemCount\n\n\ndef b(itemCount):\n    return itemCount\n"
	project := newPythonProject(t, [2]string{"mod.py", src})

	resolver := NewPythonResolver(NewLocalSourceFSAdapter())
	occ := occurrenceAt(t, project.Modules[0], src, "a(itemCount)", "itemCount")

	cs, err := resolver.PlanRename(context.Background(), project, occ, "item_count", m.RenameOptions{})
	require.NoError(t, err)

	want := "def a(item_count):\n    return item_count\n\n\ndef b(itemCount):\n    return itemCount\n"
	assert.Equal(t, want, string(cs.Files[0].Updated))
}

func TestPythonResolver_PlanRename_Docs(t *testing.T) {
	src := "def f(camelArg):\n    \"\"\"Doubles camelArg.\"\"\"\n    # camelArg stays positive\n    return camelArg * 2\n"

	tests := []struct {
		name string
		docs bool
		want string
	}{
		{
			name: "code only",
			docs: false,
			want: "def f(camel_arg):\n    \"\"\"Doubles camelArg.\"\"\"\n    # camelArg stays positive\n    return camel_arg * 2\n",
		},
		{
			name: "with docs",
			docs: true,
			want: "def f(camel_arg):\n    \"\"\"Doubles camel_arg.\"\"\"\n    # camel_arg stays positive\n    return camel_arg * 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := newPythonProject(t, [2]string{"mod.py", src})
			resolver := NewPythonResolver(NewLocalSourceFSAdapter())
			occ := occurrenceAt(t, project.Modules[0], src, "f(camelArg)", "camelArg")

			cs, err := resolver.PlanRename(context.Background(), project, occ, "camel_arg", m.RenameOptions{Docs: tt.docs})
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(cs.Files[0].Updated))
			assert.Equal(t, tt.docs, cs.Options.Docs)
		})
	}
}

func TestPythonResolver_PlanRename_CrossModule(t *testing.T) {
	lib := "def doThing():\n    return 1\n"
	direct := "from lib import doThing\n\nprint(doThing())\n"
	aliased := "import lib as helpers\n\nhelpers.doThing()\n"
	renamed := "from lib import doThing as run\n\nrun()\n"
	unrelated := "doThing = 3\n"

	project := newPythonProject(t,
		[2]string{"lib.py", lib},
		[2]string{"direct.py", direct},
		[2]string{"aliased.py", aliased},
		[2]string{"renamed.py", renamed},
		[2]string{"unrelated.py", unrelated},
	)

	resolver := NewPythonResolver(NewLocalSourceFSAdapter())
	occ := occurrenceAt(t, project.Modules[0], lib, "def doThing", "doThing")

	cs, err := resolver.PlanRename(context.Background(), project, occ, "do_thing", m.RenameOptions{})
	require.NoError(t, err)

	updated := map[m.Path]string{}
	for _, file := range cs.Files {
		updated[file.Path] = string(file.Updated)
	}

	assert.Len(t, updated, 4)
	assert.Equal(t, "def do_thing():\n    return 1\n", updated[project.Modules[0].Path])
	assert.Equal(t, "from lib import do_thing\n\nprint(do_thing())\n", updated[project.Modules[1].Path])
	assert.Equal(t, "import lib as helpers\n\nhelpers.do_thing()\n", updated[project.Modules[2].Path])
	assert.Equal(t, "from lib import do_thing as run\n\nrun()\n", updated[project.Modules[3].Path])
	assert.NotContains(t, updated, project.Modules[4].Path)
}

func TestPythonResolver_PlanRename_KeywordAcrossModules(t *testing.T) {
	lib := "def scale(rawValue, factor=2):\n    return rawValue * factor\n"
	caller := "from lib import scale\n\nscale(rawValue=3)\n"

	project := newPythonProject(t, [2]string{"lib.py", lib}, [2]string{"caller.py", caller})
	resolver := NewPythonResolver(NewLocalSourceFSAdapter())
	occ := occurrenceAt(t, project.Modules[0], lib, "scale(rawValue", "rawValue")

	cs, err := resolver.PlanRename(context.Background(), project, occ, "raw_value", m.RenameOptions{})
	require.NoError(t, err)
	require.Len(t, cs.Files, 2)

	assert.Equal(t, "def scale(raw_value, factor=2):\n    return raw_value * factor\n", string(cs.Files[0].Updated))
	assert.Equal(t, "from lib import scale\n\nscale(raw_value=3)\n", string(cs.Files[1].Updated))
}

func TestPythonResolver_PlanRename_ClassMember(t *testing.T) {
	src := "class Point:\n    def __init__(self, xVal):\n        self.xVal = xVal\n\n    def show(self):\n        return self.xVal\n"
	project := newPythonProject(t, [2]string{"shapes.py", src})

	resolver := NewPythonResolver(NewLocalSourceFSAdapter())
	occ := occurrenceAt(t, project.Modules[0], src, "self.xVal =", "xVal")

	cs, err := resolver.PlanRename(context.Background(), project, occ, "x_val", m.RenameOptions{})
	require.NoError(t, err)

	want := "class Point:\n    def __init__(self, xVal):\n        self.x_val = xVal\n\n    def show(self):\n        return self.x_val\n"
	assert.Equal(t, want, string(cs.Files[0].Updated))
}

func TestPythonResolver_PlanRename_Errors(t *testing.T) {
	lib := "def doThing():\n    return 1\n"
	user := "from lib import doThing\n"
	project := newPythonProject(t, [2]string{"lib.py", lib}, [2]string{"user.py", user})

	tests := []struct {
		name    string
		occ     m.Occurrence
		newName string
		code    cerrors.ErrorCode
	}{
		{
			name:    "invalid identifier",
			occ:     occurrenceAt(t, project.Modules[0], lib, "def doThing", "doThing"),
			newName: "do-thing",
			code:    cerrors.CodeValidation,
		},
		{
			name:    "keyword as new name",
			occ:     occurrenceAt(t, project.Modules[0], lib, "def doThing", "doThing"),
			newName: "class",
			code:    cerrors.CodeValidation,
		},
		{
			name:    "stale offset",
			occ:     m.Occurrence{Module: project.Modules[0], Name: "doThing", Offset: 1},
			newName: "do_thing",
			code:    cerrors.CodeStale,
		},
		{
			name:    "import binding",
			occ:     occurrenceAt(t, project.Modules[1], user, "import doThing", "doThing"),
			newName: "do_thing",
			code:    cerrors.CodeUnrenamable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewPythonResolver(NewLocalSourceFSAdapter())

			_, err := resolver.PlanRename(context.Background(), project, tt.occ, tt.newName, m.RenameOptions{})
			require.Error(t, err)
			assert.True(t, cerrors.IsCode(err, tt.code), "got %v", err)
			assert.True(t, cerrors.IsResolve(err))
		})
	}
}

func TestPythonResolver_Apply(t *testing.T) {
	src := "def f(camelArg):\n    return camelArg\n"

	t.Run("writes planned content", func(t *testing.T) {
		project := newPythonProject(t, [2]string{"mod.py", src})
		resolver := NewPythonResolver(NewLocalSourceFSAdapter())
		occ := occurrenceAt(t, project.Modules[0], src, "f(camelArg)", "camelArg")

		cs, err := resolver.PlanRename(context.Background(), project, occ, "camel_arg", m.RenameOptions{})
		require.NoError(t, err)
		require.NoError(t, resolver.Apply(context.Background(), cs))

		assert.Equal(t, "def f(camel_arg):\n    return camel_arg\n", readString(t, project.Modules[0].Path))

		// The cache must not serve the old analysis after the write.
		analysis, err := resolver.Analyze(context.Background(), project.Modules[0].Path, []byte(readString(t, project.Modules[0].Path)))
		require.NoError(t, err)
		assert.False(t, analysis.Names().Contains("camelArg"))
	})

	t.Run("refuses changed files", func(t *testing.T) {
		project := newPythonProject(t, [2]string{"mod.py", src})
		resolver := NewPythonResolver(NewLocalSourceFSAdapter())
		occ := occurrenceAt(t, project.Modules[0], src, "f(camelArg)", "camelArg")

		cs, err := resolver.PlanRename(context.Background(), project, occ, "camel_arg", m.RenameOptions{})
		require.NoError(t, err)

		edited := src + "\nf(1)\n"
		writeTestFile(t, string(project.Modules[0].Path), edited)

		err = resolver.Apply(context.Background(), cs)
		require.Error(t, err)
		assert.True(t, cerrors.IsCode(err, cerrors.CodeConflict))
		assert.Equal(t, edited, readString(t, project.Modules[0].Path))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		resolver := NewPythonResolver(NewLocalSourceFSAdapter())
		err := resolver.Apply(ctx, &m.ChangeSet{})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestResolveImport(t *testing.T) {
	project := m.Project{Package: ""}

	tests := []struct {
		name     string
		importer m.Module
		ref      string
		want     string
	}{
		{"absolute", m.Module{Path: "pkg/a.py", Name: "pkg.a"}, "pkg.b", "pkg.b"},
		{"sibling", m.Module{Path: "pkg/a.py", Name: "pkg.a"}, ".b", "pkg.b"},
		{"parent", m.Module{Path: "pkg/sub/a.py", Name: "pkg.sub.a"}, "..b", "pkg.b"},
		{"from package marker", m.Module{Path: "pkg/__init__.py", Name: "pkg"}, ".b", "pkg.b"},
		{"bare dot", m.Module{Path: "pkg/a.py", Name: "pkg.a"}, ".", "pkg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveImport(project, tt.importer, tt.ref))
		})
	}
}
