package model

import "sort"

// Universe is an immutable set of identifier spellings of one module.
type Universe struct {
	names map[string]struct{}
}

// NewUniverse builds a universe from the given names.
func NewUniverse(names ...string) Universe {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}

	return Universe{names: set}
}

// Contains reports whether name is part of the universe.
func (u Universe) Contains(name string) bool {
	_, ok := u.names[name]
	return ok
}

// Len returns the number of distinct names.
func (u Universe) Len() int {
	return len(u.names)
}

// Sorted returns the names in lexical order.
func (u Universe) Sorted() []string {
	names := make([]string, 0, len(u.names))
	for name := range u.names {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Phase names the boundary a snapshot was taken at.
type Phase string

// Available Phase values.
const (
	PhasePre  Phase = "pre"
	PhasePost Phase = "post"
)

// Snapshot holds the universes of a set of modules at one phase boundary.
type Snapshot struct {
	Phase     Phase
	universes map[Path]Universe
}

// NewSnapshot freezes the given universes. The map is copied.
func NewSnapshot(phase Phase, universes map[Path]Universe) Snapshot {
	copied := make(map[Path]Universe, len(universes))
	for path, universe := range universes {
		copied[path] = universe
	}

	return Snapshot{Phase: phase, universes: copied}
}

// Universe returns the universe of one module; unknown modules are empty.
func (s Snapshot) Universe(path Path) Universe {
	return s.universes[path]
}

// Modules returns the snapshot's module paths in lexical order.
func (s Snapshot) Modules() []Path {
	paths := make([]Path, 0, len(s.universes))
	for path := range s.universes {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// Containing returns the modules whose universe contains name.
func (s Snapshot) Containing(name string) []Path {
	var paths []Path

	for _, path := range s.Modules() {
		if s.universes[path].Contains(name) {
			paths = append(paths, path)
		}
	}

	return paths
}
