// Package controller provides the terminal front ends of camelsnake: the
// decision prompt and the progress and report output.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeList
	ModeSweep
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to the interactive rename mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithListMode sets the UI to candidate listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithSweepMode sets the UI to sweep-only mode.
func WithSweepMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSweep
	}
}

func startConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// RunInfo is shown once before the first module is processed.
type RunInfo struct {
	RunID     string
	Root      m.Path
	Package   string
	Mode      m.Mode
	Modules   []m.Module
	FileCount int
	Docs      bool
}

// UI is the operator-facing side of a run. Query is the interactive
// decision source; every other method only displays.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayModule(ctx context.Context, module m.Module, index, total int)
	DisplayWarnings(ctx context.Context, warnings []m.Warning)
	Query(ctx context.Context, query m.Query) (m.Decision, error)
	DisplayDecision(ctx context.Context, query m.Query, entry m.LedgerEntry)
	DisplayCandidates(ctx context.Context, module m.Module, occurrences []m.Occurrence)
	DisplaySweep(ctx context.Context, swept []m.Path)
	DisplayResult(ctx context.Context, result m.RunResult)
}

// NewUI picks the bubbletea UI for interactive terminals and the line UI
// otherwise.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether both stdin and stdout are terminals.
func IsTTY(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return false
	}

	out, ok := cmd.OutOrStdout().(*os.File)

	return ok && term.IsTerminal(int(out.Fd()))
}
