package domain

import (
	"sort"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// Ledger is the collision detector of a run. It holds the pre snapshot, the
// mappings applied so far and every recorded entry.
type Ledger struct {
	pre     m.Snapshot
	applied map[m.Path]map[string]string
	// images maps a new name to the distinct old names accepted onto it.
	images  map[string]map[string]struct{}
	entries []m.LedgerEntry
}

// NewLedger creates a ledger over the pre snapshot.
func NewLedger(pre m.Snapshot) *Ledger {
	return &Ledger{
		pre:     pre,
		applied: map[m.Path]map[string]string{},
		images:  map[string]map[string]struct{}{},
	}
}

// Pre returns the snapshot the ledger checks against.
func (l *Ledger) Pre() m.Snapshot {
	return l.pre
}

// Check returns the warnings accepting old -> new would raise in the given
// modules without recording anything.
func (l *Ledger) Check(module m.Path, affected []m.Path, old, new string) []m.Warning {
	var warnings []m.Warning

	for _, path := range withModule(module, affected) {
		if l.pre.Universe(path).Contains(new) {
			warnings = append(warnings, m.Warning{
				Kind:   m.WarnPreExistingCollision,
				Module: path,
				Old:    old,
				New:    new,
			})
		}
	}

	if previous, ok := l.previousImage(old, new); ok {
		warnings = append(warnings, m.Warning{
			Kind:     m.WarnMergeCollision,
			Module:   module,
			Old:      old,
			New:      new,
			Previous: previous,
		})
	}

	return warnings
}

// Record stores entry. Accepted entries run the collision checks and update
// the image counts; rejected entries are stored as they are.
func (l *Ledger) Record(entry m.LedgerEntry) []m.Warning {
	l.entries = append(l.entries, entry)

	if !entry.Accepted {
		return nil
	}

	warnings := l.Check(entry.Module, entry.Affected, entry.Old, entry.New)

	olds, ok := l.images[entry.New]
	if !ok {
		olds = map[string]struct{}{}
		l.images[entry.New] = olds
	}

	olds[entry.Old] = struct{}{}

	applied, ok := l.applied[entry.Module]
	if !ok {
		applied = map[string]string{}
		l.applied[entry.Module] = applied
	}

	applied[entry.Old] = entry.New

	return warnings
}

// ImageCount returns how many distinct old names were accepted onto new.
func (l *Ledger) ImageCount(new string) int {
	return len(l.images[new])
}

// Applied returns the accepted mappings of one module.
func (l *Ledger) Applied(module m.Path) map[string]string {
	out := make(map[string]string, len(l.applied[module]))
	for old, new := range l.applied[module] {
		out[old] = new
	}

	return out
}

// Entries returns the recorded entries in order.
func (l *Ledger) Entries() []m.LedgerEntry {
	return append([]m.LedgerEntry(nil), l.entries...)
}

func (l *Ledger) previousImage(old, new string) (string, bool) {
	var others []string

	for prev := range l.images[new] {
		if prev != old {
			others = append(others, prev)
		}
	}

	if len(others) == 0 {
		return "", false
	}

	sort.Strings(others)

	return others[0], true
}

func withModule(module m.Path, affected []m.Path) []m.Path {
	paths := []m.Path{module}

	for _, path := range affected {
		if path != module {
			paths = append(paths, path)
		}
	}

	return paths
}
