package domain

import (
	"fmt"
	"strings"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// Verify cross-checks the ledger against the universes left after the
// sweep. The checks are scope-insensitive and may report false positives.
func Verify(entries []m.LedgerEntry, pre, post m.Snapshot) []m.Warning {
	var warnings []m.Warning

	seen := map[string]bool{}

	for _, entry := range entries {
		if entry.Accepted {
			modules := post.Containing(entry.Old)
			if len(modules) == 0 || seen[dedupKey(m.WarnStalePreimage, entry)] {
				continue
			}

			seen[dedupKey(m.WarnStalePreimage, entry)] = true

			warnings = append(warnings, m.Warning{
				Kind:    m.WarnStalePreimage,
				Module:  entry.Module,
				Old:     entry.Old,
				New:     entry.New,
				Modules: modules,
				Detail:  "accepted name still present",
			})

			continue
		}

		// A rejected target only counts where it was not there before the
		// run; otherwise it is the collision that caused the rejection.
		var leaked []m.Path

		for _, path := range post.Containing(entry.New) {
			if !pre.Universe(path).Contains(entry.New) {
				leaked = append(leaked, path)
			}
		}

		if len(leaked) == 0 || seen[dedupKey(m.WarnStaleImage, entry)] {
			continue
		}

		seen[dedupKey(m.WarnStaleImage, entry)] = true

		warnings = append(warnings, m.Warning{
			Kind:    m.WarnStaleImage,
			Module:  entry.Module,
			Old:     entry.Old,
			New:     entry.New,
			Modules: leaked,
			Detail:  fmt.Sprintf("rejected name introduced by another change (%s)", entry.Origin),
		})
	}

	return warnings
}

func dedupKey(kind m.WarningKind, entry m.LedgerEntry) string {
	return strings.Join([]string{string(kind), entry.Old, entry.New}, "\x00")
}
