package controller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// SimpleUI implements UI with plain lines on the command's streams. Query
// reads one line per reply.
type SimpleUI struct {
	cmd  *cobra.Command
	root m.Path

	once  sync.Once
	lines chan string
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunInfo prints what the run is about to process.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.root = info.Root

	s.printf("camelsnake run %s\n", info.RunID)

	pkg := ""
	if info.Package != "" {
		pkg = fmt.Sprintf(" (package %s)", info.Package)
	}

	s.printf("Root: %s%s\n", info.Root, pkg)

	mode := info.Mode
	if mode == "" {
		mode = m.ModeInteractive
	}

	s.printf("Mode: %s, %d module(s), %d file(s)", mode, len(info.Modules), info.FileCount)

	if info.Docs {
		s.printf(", strings and comments included")
	}

	s.printf("\n")

	if len(info.Modules) == 0 {
		s.printf("No Python modules found\n")
	}
}

// DisplayModule announces the module whose session starts.
func (s *SimpleUI) DisplayModule(ctx context.Context, module m.Module, index, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s %s\n", infoStyle.Render(fmt.Sprintf("[%d/%d]", index, total)), module.ShortPath)
}

// DisplayWarnings prints one line per warning.
func (s *SimpleUI) DisplayWarnings(ctx context.Context, warnings []m.Warning) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, w := range warnings {
		s.printf("%s\n", describeWarning(s.root, w))
	}
}

// Query shows the proposal and reads the reply. An empty reply picks the
// suggested answer; end of input stops the run.
func (s *SimpleUI) Query(ctx context.Context, query m.Query) (m.Decision, error) {
	s.printf("\n%s", describeQuery(s.root, query))

	for {
		s.printf("Rename %s -> %s? %s ", query.Occurrence.Name, query.Occurrence.Proposal.New, promptChoices(query))

		line, ok, err := s.readLine(ctx)
		if err != nil {
			return m.Decision{}, err
		}

		if !ok {
			s.printf("\n")
			return m.Decision{Kind: m.DecisionStop}, nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return m.Decision{Kind: query.Suggested()}, nil
		case "y", "yes":
			return m.Decision{Kind: m.DecisionAccept}, nil
		case "n", "no":
			return m.Decision{Kind: m.DecisionReject}, nil
		case "d", "docs":
			return m.Decision{Kind: m.DecisionToggleDocs}, nil
		case "q", "quit", "stop":
			return m.Decision{Kind: m.DecisionStop}, nil
		case "c", "custom":
			name, ok, err := s.askName(ctx)
			if err != nil {
				return m.Decision{}, err
			}

			if !ok {
				return m.Decision{Kind: m.DecisionStop}, nil
			}

			if name != "" {
				return m.Decision{Kind: m.DecisionAcceptCustom, Name: name}, nil
			}
		default:
			s.printf("y: rename, n: keep, c: other name, d: toggle strings and comments, q: stop\n")
		}
	}
}

func (s *SimpleUI) askName(ctx context.Context) (string, bool, error) {
	for {
		s.printf("New name (empty to go back): ")

		line, ok, err := s.readLine(ctx)
		if err != nil || !ok {
			return "", ok, err
		}

		name := strings.TrimSpace(line)
		if name == "" || m.IsIdentifier(name) {
			return name, true, nil
		}

		s.printf("%s is not a valid identifier\n", name)
	}
}

// readLine waits for the next input line or for ctx. The reader goroutine
// is started on first use and lives as long as the input.
func (s *SimpleUI) readLine(ctx context.Context) (string, bool, error) {
	s.once.Do(func() {
		s.lines = make(chan string)
		go scanLines(s.cmd.InOrStdin(), s.lines)
	})

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-s.lines:
		return line, ok, nil
	}
}

func scanLines(in io.Reader, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

// DisplayDecision prints the outcome of one query.
func (s *SimpleUI) DisplayDecision(ctx context.Context, _ m.Query, entry m.LedgerEntry) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", describeEntry(entry))
}

// DisplayCandidates prints the candidates of one module as a table.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, module m.Module, occurrences []m.Occurrence) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(occurrences) == 0 {
		s.printf("%s: %s\n", module.ShortPath, faintStyle.Render("nothing to rename"))
		return
	}

	s.printf("\n%s: %d candidate(s)\n%s", titleStyle.Render(string(module.ShortPath)), len(occurrences), renderCandidateTable(occurrences))
}

// DisplaySweep prints the files the sweep rewrote.
func (s *SimpleUI) DisplaySweep(ctx context.Context, swept []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\nReview markers removed from %d file(s)\n", len(swept))

	for _, path := range swept {
		s.printf("  %s\n", display(s.root, path))
	}
}

// DisplayResult prints the final report.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.RunResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderResult(result))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
