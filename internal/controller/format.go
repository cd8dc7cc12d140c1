package controller

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

var (
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	newStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// display shortens path relative to root when it lives below it.
func display(root, path m.Path) string {
	if root == "" {
		return string(path)
	}

	rel, err := filepath.Rel(string(root), string(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return string(path)
	}

	return filepath.ToSlash(rel)
}

func displayAll(root m.Path, paths []m.Path) string {
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, display(root, path))
	}

	return strings.Join(parts, ", ")
}

// describeWarning renders one warning as a single line.
func describeWarning(root m.Path, w m.Warning) string {
	var text string

	switch w.Kind {
	case m.WarnPreExistingCollision:
		text = fmt.Sprintf("%s already exists in %s", w.New, display(root, w.Module))
	case m.WarnMergeCollision:
		text = fmt.Sprintf("%s and %s would both become %s", w.Previous, w.Old, w.New)
	case m.WarnResolveSkipped:
		text = fmt.Sprintf("%s in %s skipped: %s", w.Old, display(root, w.Module), w.Detail)
	case m.WarnStalePreimage:
		text = fmt.Sprintf("%s renamed to %s but still present in %s", w.Old, w.New, displayAll(root, w.Modules))
	case m.WarnStaleImage:
		text = fmt.Sprintf("%s kept, yet %s appeared in %s", w.Old, w.New, displayAll(root, w.Modules))
	case m.WarnLeftoverQuarantine:
		text = fmt.Sprintf("%s: %s", display(root, w.Module), w.Detail)
	default:
		text = w.Detail
	}

	return warnStyle.Render(string(w.Kind)) + " " + text
}

// renderDiff colours a unified diff line by line.
func renderDiff(diff string) string {
	if diff == "" {
		return ""
	}

	var b strings.Builder

	for _, line := range strings.SplitAfter(diff, "\n") {
		trimmed := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(trimmed, "+++"), strings.HasPrefix(trimmed, "---"):
			b.WriteString(titleStyle.Render(trimmed))
		case strings.HasPrefix(trimmed, "@@"):
			b.WriteString(faintStyle.Render(trimmed))
		case strings.HasPrefix(trimmed, "+"):
			b.WriteString(newStyle.Render(trimmed))
		case strings.HasPrefix(trimmed, "-"):
			b.WriteString(removedStyle.Render(trimmed))
		default:
			b.WriteString(trimmed)
		}

		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// describeQuery renders the occurrence, its warnings and the diff preview.
func describeQuery(root m.Path, q m.Query) string {
	var b strings.Builder

	occ := q.Occurrence
	scope := ""

	if occ.Scope != "" {
		scope = " in " + occ.Scope
	}

	fmt.Fprintf(&b, "%s:%d %s%s: %s -> %s\n",
		occ.Module.ShortPath, occ.Line, occ.Kind, scope,
		currentStyle.Render(occ.Name), newStyle.Render(occ.Proposal.New))

	if len(q.Affected) > 1 {
		fmt.Fprintf(&b, "  also changes %s\n", displayAll(root, q.Affected))
	}

	if q.Docs {
		b.WriteString(faintStyle.Render("  strings and comments included") + "\n")
	}

	for _, w := range q.Warnings {
		fmt.Fprintf(&b, "  %s\n", describeWarning(root, w))
	}

	b.WriteString(renderDiff(q.Diff))

	return b.String()
}

// promptChoices spells the reply letters with the suggested reply in upper
// case.
func promptChoices(q m.Query) string {
	if q.Suggested() == m.DecisionAccept {
		return "[Y/n/c/d/q]"
	}

	return "[y/N/c/d/q]"
}

func describeEntry(entry m.LedgerEntry) string {
	switch {
	case entry.Origin == m.OriginResolver:
		return faintStyle.Render(fmt.Sprintf("  - %s skipped", entry.Old))
	case entry.Accepted:
		return fmt.Sprintf("  + %s -> %s (%s)", currentStyle.Render(entry.Old), newStyle.Render(entry.New), entry.Origin)
	default:
		return fmt.Sprintf("  = %s kept (%s)", currentStyle.Render(entry.Old), entry.Origin)
	}
}

func decisionLabel(entry m.LedgerEntry) string {
	switch {
	case entry.Origin == m.OriginResolver:
		return "skipped"
	case entry.Accepted:
		return "renamed"
	default:
		return "kept"
	}
}

func renderCandidateTable(occurrences []m.Occurrence) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Line", "Kind", "Name", "Proposal"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, occ := range occurrences {
		table.Append([]string{strconv.Itoa(occ.Line), string(occ.Kind), occ.Name, occ.Proposal.New})
	}

	table.Render()

	return buf.String()
}

// renderResult renders the end-of-run report: the decision table, warnings
// and post-pass findings.
func renderResult(result m.RunResult) string {
	var b strings.Builder

	if len(result.Entries) > 0 {
		var buf bytes.Buffer

		table := tablewriter.NewWriter(&buf)
		table.SetHeader([]string{"Module", "Name", "Proposal", "Decision", "Origin"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetAutoWrapText(false)

		for _, entry := range result.Entries {
			table.Append([]string{
				display(result.Root, entry.Module),
				entry.Old,
				entry.New,
				decisionLabel(entry),
				string(entry.Origin),
			})
		}

		table.SetFooter([]string{
			fmt.Sprintf("Total %d", len(result.Entries)),
			"",
			"",
			fmt.Sprintf("%d renamed", result.Accepted()),
			"",
		})
		table.Render()

		b.WriteString(buf.String())
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n" + titleStyle.Render("Warnings") + "\n")

		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "  %s\n", describeWarning(result.Root, w))
		}
	}

	if len(result.PostPass) > 0 {
		b.WriteString("\n" + titleStyle.Render("Post-pass") + "\n")

		for _, w := range result.PostPass {
			fmt.Fprintf(&b, "  %s\n", describeWarning(result.Root, w))
		}
	}

	status := infoStyle.Render(string(result.Status))
	if result.Status == m.StatusPartial {
		status = warnStyle.Render(string(result.Status))
	}

	fmt.Fprintf(&b, "\nRun %s: %s, %d renamed, %d kept, %d warning(s), %d post-pass finding(s)\n",
		result.RunID, status, result.Accepted(), result.Rejected(), len(result.Warnings), len(result.PostPass))

	return b.String()
}
