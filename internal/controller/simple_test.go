package controller

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

func newTestCommand(input io.Reader) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetIn(input)
	cmd.SetOut(&buf)

	return cmd, &buf
}

func testQuery(warnings ...m.Warning) m.Query {
	return m.Query{
		Occurrence: m.Occurrence{
			Module:   m.Module{Path: "/src/mod.py", ShortPath: "mod.py"},
			Name:     "camelArg",
			Line:     1,
			Kind:     m.KindParameter,
			Scope:    "f",
			Proposal: m.Proposal{Old: "camelArg", New: "camel_arg", Direction: m.CamelToSnake},
		},
		Affected: []m.Path{"/src/mod.py"},
		Warnings: warnings,
		Diff:     "--- a/mod.py\n+++ b/mod.py\n@@ -1 +1 @@\n-def f(camelArg):\n+def f(camel_arg):\n",
	}
}

func TestSimpleUI_Query(t *testing.T) {
	collision := m.Warning{Kind: m.WarnPreExistingCollision, Module: "/src/mod.py", Old: "camelArg", New: "camel_arg"}

	tests := []struct {
		name     string
		input    string
		warnings []m.Warning
		want     m.Decision
	}{
		{name: "yes", input: "y\n", want: m.Decision{Kind: m.DecisionAccept}},
		{name: "no", input: "n\n", want: m.Decision{Kind: m.DecisionReject}},
		{name: "empty accepts a clean rename", input: "\n", want: m.Decision{Kind: m.DecisionAccept}},
		{name: "empty rejects a colliding rename", input: "\n", warnings: []m.Warning{collision}, want: m.Decision{Kind: m.DecisionReject}},
		{name: "docs", input: "d\n", want: m.Decision{Kind: m.DecisionToggleDocs}},
		{name: "quit", input: "q\n", want: m.Decision{Kind: m.DecisionStop}},
		{name: "end of input stops", input: "", want: m.Decision{Kind: m.DecisionStop}},
		{name: "unknown reply asks again", input: "maybe\nYES\n", want: m.Decision{Kind: m.DecisionAccept}},
		{name: "custom name", input: "c\n1bad\ntotal\n", want: m.Decision{Kind: m.DecisionAcceptCustom, Name: "total"}},
		{name: "empty custom name goes back", input: "c\n\nn\n", want: m.Decision{Kind: m.DecisionReject}},
		{name: "end of input while naming stops", input: "c\n", want: m.Decision{Kind: m.DecisionStop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := newTestCommand(strings.NewReader(tt.input))
			ui := NewSimpleUI(cmd)

			got, err := ui.Query(context.Background(), testQuery(tt.warnings...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			assert.Contains(t, out.String(), "camelArg")
			assert.Contains(t, out.String(), "+def f(camel_arg):")
		})
	}
}

func TestSimpleUI_QueryShowsWarnings(t *testing.T) {
	cmd, out := newTestCommand(strings.NewReader("n\n"))
	ui := NewSimpleUI(cmd)
	ui.DisplayRunInfo(context.Background(), RunInfo{Root: "/src"})

	_, err := ui.Query(context.Background(), testQuery(m.Warning{
		Kind:   m.WarnPreExistingCollision,
		Module: "/src/mod.py",
		Old:    "camelArg",
		New:    "camel_arg",
	}))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "PRE_EXISTING_COLLISION camel_arg already exists in mod.py")
	assert.Contains(t, out.String(), "[y/N/c/d/q]")
}

func TestSimpleUI_QueryCancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer func() {
		_ = writer.Close()
	}()

	cmd, _ := newTestCommand(reader)
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := ui.Query(ctx, testQuery())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimpleUI_QueryKeepsReadingAcrossQueries(t *testing.T) {
	cmd, _ := newTestCommand(strings.NewReader("n\ny\n"))
	ui := NewSimpleUI(cmd)

	first, err := ui.Query(context.Background(), testQuery())
	require.NoError(t, err)

	second, err := ui.Query(context.Background(), testQuery())
	require.NoError(t, err)

	assert.Equal(t, m.DecisionReject, first.Kind)
	assert.Equal(t, m.DecisionAccept, second.Kind)
}

func TestSimpleUI_DisplayCandidates(t *testing.T) {
	cmd, out := newTestCommand(strings.NewReader(""))
	ui := NewSimpleUI(cmd)
	module := m.Module{Path: "/src/mod.py", ShortPath: "mod.py"}

	ui.DisplayCandidates(context.Background(), module, []m.Occurrence{
		{Module: module, Name: "doThing", Line: 3, Kind: m.KindFunction, Proposal: m.Proposal{New: "do_thing"}},
	})
	ui.DisplayCandidates(context.Background(), m.Module{ShortPath: "empty.py"}, nil)

	got := out.String()
	assert.Contains(t, got, "mod.py: 1 candidate(s)")
	assert.Contains(t, got, "doThing")
	assert.Contains(t, got, "do_thing")
	assert.Contains(t, got, "empty.py: nothing to rename")
}

func TestSimpleUI_DisplayResult(t *testing.T) {
	cmd, out := newTestCommand(strings.NewReader(""))
	ui := NewSimpleUI(cmd)

	ui.DisplayResult(context.Background(), m.RunResult{
		RunID:  "run-1",
		Root:   "/src",
		Status: m.StatusPartial,
		Entries: []m.LedgerEntry{
			{Module: "/src/mod.py", Old: "itemCount", New: "item_count", Accepted: true, Origin: m.OriginUser},
			{Module: "/src/mod.py", Old: "camelArg", New: "camel_arg", Origin: m.OriginPolicy},
		},
		Warnings: []m.Warning{{Kind: m.WarnSweepSkipped, Detail: "run camelsnake sweep before editing further"}},
		PostPass: []m.Warning{{
			Kind:    m.WarnStalePreimage,
			Old:     "doThing",
			New:     "do_thing",
			Modules: []m.Path{"/src/app.py"},
		}},
	})

	got := out.String()
	assert.Contains(t, got, "item_count")
	assert.Contains(t, got, "renamed")
	assert.Contains(t, got, "kept")
	assert.Contains(t, got, "SWEEP_SKIPPED run camelsnake sweep before editing further")
	assert.Contains(t, got, "doThing renamed to do_thing but still present in app.py")
	assert.Contains(t, got, "Run run-1: partial, 1 renamed, 1 kept, 1 warning(s), 1 post-pass finding(s)")
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	cmd, out := newTestCommand(strings.NewReader(""))
	ui := NewSimpleUI(cmd)

	ui.DisplayRunInfo(context.Background(), RunInfo{
		RunID:     "run-1",
		Root:      "/src/shop",
		Package:   "shop",
		Mode:      m.ModeDefaultPolicy,
		Modules:   []m.Module{{ShortPath: "a.py"}},
		FileCount: 2,
	})
	ui.DisplaySweep(context.Background(), []m.Path{"/src/shop/a.py"})

	got := out.String()
	assert.Contains(t, got, "Root: /src/shop (package shop)")
	assert.Contains(t, got, "Mode: yes-no-default, 1 module(s), 2 file(s)")
	assert.Contains(t, got, "Review markers removed from 1 file(s)\n  a.py\n")
}

func TestSimpleUI_SkipsOutputOnCancelledContext(t *testing.T) {
	cmd, out := newTestCommand(strings.NewReader(""))
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayModule(ctx, m.Module{ShortPath: "a.py"}, 1, 1)
	ui.DisplayWarnings(ctx, []m.Warning{{Kind: m.WarnSweepSkipped}})

	assert.Empty(t, out.String())
	assert.Error(t, ui.Start(ctx))
}
