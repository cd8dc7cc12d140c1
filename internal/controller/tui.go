package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// TUI implements UI with Bubble Tea: one small program per query, and a
// pager for long candidate lists.
type TUI struct {
	input  io.Reader
	output io.Writer

	mode  StartMode
	root  m.Path
	lines []string
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mode = startConfig(options).mode
	p.lines = nil

	return nil
}

// Close flushes the candidate list collected in list mode.
func (p *TUI) Close(_ context.Context) {
	if p.mode != ModeList {
		return
	}

	model := newPagerModel(p.lines)

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, _ = fmt.Fprint(p.output, model.View())
		return
	}

	program := tea.NewProgram(model, tea.WithInput(p.input), tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		_, _ = fmt.Fprint(p.output, newPagerModel(p.lines).View())
	}
}

// DisplayRunInfo prints the run header.
func (p *TUI) DisplayRunInfo(ctx context.Context, info RunInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.root = info.Root

	var b strings.Builder

	b.WriteString(titleStyle.Render("camelsnake") + " " + faintStyle.Render(info.RunID) + "\n")
	fmt.Fprintf(&b, "  %s", info.Root)

	if info.Package != "" {
		fmt.Fprintf(&b, " (package %s)", info.Package)
	}

	fmt.Fprintf(&b, "\n  %d module(s), %d file(s)\n", len(info.Modules), info.FileCount)

	if len(info.Modules) == 0 {
		b.WriteString("  📭 No Python modules found\n")
	}

	p.print(b.String())
}

// DisplayModule announces the module whose session starts.
func (p *TUI) DisplayModule(ctx context.Context, module m.Module, index, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.print(fmt.Sprintf("\n%s %s\n", infoStyle.Render(fmt.Sprintf("[%d/%d]", index, total)), titleStyle.Render(string(module.ShortPath))))
}

// DisplayWarnings prints one line per warning.
func (p *TUI) DisplayWarnings(ctx context.Context, warnings []m.Warning) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, w := range warnings {
		p.print("⚠ " + describeWarning(p.root, w) + "\n")
	}
}

// Query runs the prompt program until a reply is chosen. Interrupting the
// program stops the run.
func (p *TUI) Query(ctx context.Context, query m.Query) (m.Decision, error) {
	program := tea.NewProgram(newQueryModel(p.root, query),
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return m.Decision{}, ctx.Err()
		}

		if !errors.Is(err, tea.ErrInterrupted) {
			return m.Decision{}, fmt.Errorf("failed to run prompt: %w", err)
		}
	}

	model, ok := final.(queryModel)
	if !ok || !model.done {
		return m.Decision{Kind: m.DecisionStop}, nil
	}

	return model.decision, nil
}

// DisplayDecision prints the outcome of one query.
func (p *TUI) DisplayDecision(ctx context.Context, _ m.Query, entry m.LedgerEntry) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.print(describeEntry(entry) + "\n")
}

// DisplayCandidates collects the module's candidates; Close shows them.
func (p *TUI) DisplayCandidates(ctx context.Context, module m.Module, occurrences []m.Occurrence) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(occurrences) == 0 {
		p.lines = append(p.lines, fmt.Sprintf("  %s %s", module.ShortPath, faintStyle.Render("nothing to rename")))
		return
	}

	p.lines = append(p.lines, fmt.Sprintf("  📄 %s: %d candidate(s)", titleStyle.Render(string(module.ShortPath)), len(occurrences)))

	for _, occ := range occurrences {
		p.lines = append(p.lines, fmt.Sprintf("    %4d %-9s %s -> %s",
			occ.Line, occ.Kind, currentStyle.Render(occ.Name), newStyle.Render(occ.Proposal.New)))
	}
}

// DisplaySweep prints the files the sweep rewrote.
func (p *TUI) DisplaySweep(ctx context.Context, swept []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.print(fmt.Sprintf("\n🧹 Review markers removed from %d file(s)\n", len(swept)))
}

// DisplayResult prints the final report.
func (p *TUI) DisplayResult(ctx context.Context, result m.RunResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.print("\n" + renderResult(result))
}

func (p *TUI) print(text string) {
	_, _ = fmt.Fprint(p.output, text)
}

// queryModel is the Bubble Tea model of one decision prompt.
type queryModel struct {
	root     m.Path
	query    m.Query
	input    textinput.Model
	custom   bool
	invalid  string
	decision m.Decision
	done     bool
}

func newQueryModel(root m.Path, query m.Query) queryModel {
	input := textinput.New()
	input.Prompt = "new name: "
	input.Placeholder = query.Occurrence.Proposal.New
	input.CharLimit = 128

	return queryModel{root: root, query: query, input: input}
}

func (qm queryModel) Init() tea.Cmd {
	return nil
}

func (qm queryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return qm, nil
	}

	if qm.custom {
		return qm.handleCustomKey(key)
	}

	return qm.handleKeyPress(key)
}

//nolint:exhaustive // Only a few keys mean anything here.
func (qm queryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return qm.reply(m.DecisionStop)
	case tea.KeyEnter:
		return qm.reply(qm.query.Suggested())
	default:
		// Handle letter keys in the string switch below
	}

	switch msg.String() {
	case "y":
		return qm.reply(m.DecisionAccept)
	case "n":
		return qm.reply(m.DecisionReject)
	case "d":
		return qm.reply(m.DecisionToggleDocs)
	case "q":
		return qm.reply(m.DecisionStop)
	case "c":
		qm.custom = true
		qm.invalid = ""

		return qm, qm.input.Focus()
	}

	return qm, nil
}

//nolint:exhaustive // Everything else goes to the text input.
func (qm queryModel) handleCustomKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return qm.reply(m.DecisionStop)
	case tea.KeyEsc:
		qm.custom = false
		qm.input.Reset()
		qm.input.Blur()

		return qm, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(qm.input.Value())
		if name == "" {
			qm.custom = false
			qm.input.Blur()

			return qm, nil
		}

		if !m.IsIdentifier(name) {
			qm.invalid = name
			qm.input.Reset()

			return qm, nil
		}

		qm.decision = m.Decision{Kind: m.DecisionAcceptCustom, Name: name}
		qm.done = true

		return qm, tea.Quit
	}

	var cmd tea.Cmd
	qm.input, cmd = qm.input.Update(msg)

	return qm, cmd
}

func (qm queryModel) reply(kind m.DecisionKind) (tea.Model, tea.Cmd) {
	qm.decision = m.Decision{Kind: kind}
	qm.done = true

	return qm, tea.Quit
}

func (qm queryModel) View() string {
	if qm.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(describeQuery(qm.root, qm.query))

	if qm.custom {
		if qm.invalid != "" {
			b.WriteString(warnStyle.Render(qm.invalid+" is not a valid identifier") + "\n")
		}

		b.WriteString(qm.input.View() + "\n")
		b.WriteString(faintStyle.Render("enter: confirm | esc: back") + "\n")

		return b.String()
	}

	fmt.Fprintf(&b, "Rename? %s\n", promptChoices(qm.query))
	b.WriteString(faintStyle.Render("y: rename | n: keep | c: other name | d: strings and comments | q: stop") + "\n")

	return b.String()
}

// pagerModel pages through lines that do not fit the terminal.
type pagerModel struct {
	lines    []string
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newPagerModel(lines []string) pagerModel {
	return pagerModel{lines: lines}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "down", "j":
		pm.offset = min(pm.offset+1, pm.maxOffset())

	case "up", "k":
		pm.offset = max(pm.offset-1, 0)

	case "g", "home":
		pm.offset = 0

	case "G", "end":
		pm.offset = pm.maxOffset()

	case "d", "pgdown":
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())

	case "u", "pgup":
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit between header and footer.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10 // Default
	}

	// Header (2) and footer (3).
	return max(pm.height-5, 1)
}

func (pm pagerModel) maxOffset() int {
	return max(len(pm.lines)-pm.itemsPerPage(), 0)
}

// needsPagination returns true if the list is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	return len(pm.lines) > 0 && pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("  🐍 Rename candidates") + "\n\n")

	if len(pm.lines) == 0 {
		b.WriteString("  📭 No Python modules found\n")
		return b.String()
	}

	visible := pm.lines

	if pm.needsPagination() {
		start := min(pm.offset, len(pm.lines)-1)
		end := min(start+pm.itemsPerPage(), len(pm.lines))
		visible = pm.lines[start:end]
	}

	for _, line := range visible {
		b.WriteString(line + "\n")
	}

	if pm.needsPagination() {
		end := min(pm.offset+pm.itemsPerPage(), len(pm.lines))
		fmt.Fprintf(&b, "\n  Lines %d-%d of %d\n", pm.offset+1, end, len(pm.lines))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
