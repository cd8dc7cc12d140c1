package model

import "time"

// RunStatus is the overall outcome of a run.
type RunStatus string

// Available RunStatus values.
const (
	StatusComplete RunStatus = "complete"
	StatusPartial  RunStatus = "partial"
)

// RunResult is the end-of-run report. It lives for one run only and is
// optionally exported, never read back.
type RunResult struct {
	RunID      string        `yaml:"run_id"`
	Root       Path          `yaml:"root"`
	Mode       Mode          `yaml:"mode"`
	Status     RunStatus     `yaml:"status"`
	StartedAt  time.Time     `yaml:"started_at"`
	FinishedAt time.Time     `yaml:"finished_at"`
	Modules    int           `yaml:"modules"`
	Entries    []LedgerEntry `yaml:"entries"`
	// Warnings raised while sessions ran.
	Warnings []Warning `yaml:"warnings"`
	// PostPass holds the warnings of the final verification.
	PostPass []Warning `yaml:"post_pass"`
	Swept    []Path    `yaml:"swept,omitempty"`
}

// Accepted counts accepted entries.
func (r RunResult) Accepted() int {
	count := 0

	for _, entry := range r.Entries {
		if entry.Accepted {
			count++
		}
	}

	return count
}

// Rejected counts rejected entries.
func (r RunResult) Rejected() int {
	return len(r.Entries) - r.Accepted()
}
