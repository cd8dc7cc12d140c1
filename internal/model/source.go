// Package model holds the plain data types shared by the camelsnake layers.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Module is a single Python source file of the project.
type Module struct {
	Path      Path
	ShortPath Path
	// Name is the dotted module name relative to the project root, e.g.
	// "pkg.sub.mod". Package markers map to their directory ("pkg").
	Name string
}

// IsPackage reports whether the module is a package marker file.
func (m Module) IsPackage() bool {
	return filepath.Base(string(m.Path)) == "__init__.py"
}

// Project is the ordered collection of modules a run works on.
type Project struct {
	Root Path
	// Package is the dotted prefix of the root when the root directory is
	// itself a package, empty otherwise.
	Package string
	// Modules are the modules sessions run over, in order.
	Modules []Module
	// Files is the full module set the resolver may read or modify. It always
	// includes Modules.
	Files []Module
}

// Lookup finds a module of the project by path.
func (p Project) Lookup(path Path) (Module, bool) {
	for _, module := range p.Files {
		if module.Path == path {
			return module, true
		}
	}

	return Module{}, false
}

// Paths returns the paths of every file in the module set.
func (p Project) Paths() []Path {
	paths := make([]Path, 0, len(p.Files))
	for _, module := range p.Files {
		paths = append(paths, module.Path)
	}

	return paths
}

// ProjectConfig is the per-project configuration read from pyproject.toml.
type ProjectConfig struct {
	Exclude []string `toml:"exclude"`
	Docs    bool     `toml:"docs"`
	Marker  string   `toml:"marker"`
}
