package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"camelsnake.dev/pkg/camelsnake/internal/adapter"
	cerrors "camelsnake.dev/pkg/camelsnake/internal/errors"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

const (
	pythonExt     = ".py"
	packageMarker = "__init__.py"
)

// DiscoverArgs selects the modules of a project.
type DiscoverArgs struct {
	Root m.Path
	// Modules are explicit module paths or shell globs. When empty every
	// discovered module is processed.
	Modules []string
	// Exclude holds glob patterns matched against the root-relative slash
	// path and the base name of files and directories.
	Exclude []string
}

// Discovery enumerates the modules of a Python project.
type Discovery interface {
	Discover(ctx context.Context, args DiscoverArgs) (m.Project, error)
}

type discovery struct {
	adapter.SourceFSAdapter
}

// NewDiscovery creates a Discovery reading through fs.
func NewDiscovery(fs adapter.SourceFSAdapter) Discovery {
	return &discovery{SourceFSAdapter: fs}
}

// Discover walks the root: top-level modules always, and when the root is a
// package every sub-package reachable through directories holding an
// __init__.py. Explicit modules outside that tree are added to the module
// set.
func (d *discovery) Discover(ctx context.Context, args DiscoverArgs) (m.Project, error) {
	root, err := filepath.Abs(string(args.Root))
	if err != nil {
		return m.Project{}, fmt.Errorf("failed to resolve root %s: %w", args.Root, err)
	}

	info, err := d.FileInfo(m.Path(root))
	if err != nil || !info.IsDir() {
		return m.Project{}, cerrors.New(cerrors.CodeNotFound, "project root is not a directory").
			WithContext(cerrors.CtxPath, root)
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return m.Project{}, err
	}

	project := m.Project{Root: m.Path(root)}

	isPackage := d.hasMarker(root)
	if isPackage {
		project.Package = filepath.Base(root)
	}

	seen := map[m.Path]bool{}

	err = d.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path == root {
				return nil
			}

			if !isPackage || strings.HasPrefix(info.Name(), ".") || !d.hasMarker(path) || excludes.match(rel) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != pythonExt || excludes.match(rel) {
			return nil
		}

		module := d.module(root, m.Path(path))
		project.Files = append(project.Files, module)
		seen[module.Path] = true

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk project", "root", root, "error", err)
		return m.Project{}, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	explicit, err := d.expandModules(root, args.Modules)
	if err != nil {
		return m.Project{}, err
	}

	if len(explicit) == 0 {
		project.Modules = append([]m.Module(nil), project.Files...)
	}

	for _, path := range explicit {
		module := d.module(root, path)
		project.Modules = append(project.Modules, module)

		if !seen[path] {
			project.Files = append(project.Files, module)
			seen[path] = true
		}
	}

	slog.Info("Discovered project", "root", root, "package", project.Package,
		"modules", len(project.Modules), "files", len(project.Files))

	return project, nil
}

func (d *discovery) hasMarker(dir string) bool {
	info, err := d.FileInfo(m.Path(filepath.Join(dir, packageMarker)))
	return err == nil && !info.IsDir()
}

// expandModules resolves explicit module arguments in order. Relative
// arguments that match nothing from the working directory are retried
// relative to the root.
func (d *discovery) expandModules(root string, args []string) ([]m.Path, error) {
	var paths []m.Path

	seen := map[m.Path]bool{}

	for _, arg := range args {
		matches, err := d.Glob(arg)
		if err != nil {
			return nil, cerrors.Wrap(err, cerrors.CodeValidation, "invalid module pattern").WithContext(cerrors.CtxPath, arg)
		}

		if len(matches) == 0 && !filepath.IsAbs(arg) {
			if matches, err = d.Glob(filepath.Join(root, arg)); err != nil {
				return nil, cerrors.Wrap(err, cerrors.CodeValidation, "invalid module pattern").WithContext(cerrors.CtxPath, arg)
			}
		}

		if len(matches) == 0 {
			return nil, cerrors.New(cerrors.CodeNotFound, "module not found").WithContext(cerrors.CtxPath, arg)
		}

		for _, match := range matches {
			if filepath.Ext(string(match)) != pythonExt {
				return nil, cerrors.New(cerrors.CodeValidation, "not a Python module").WithContext(cerrors.CtxPath, string(match))
			}

			abs, err := filepath.Abs(string(match))
			if err != nil {
				return nil, fmt.Errorf("failed to resolve module %s: %w", match, err)
			}

			if !seen[m.Path(abs)] {
				seen[m.Path(abs)] = true
				paths = append(paths, m.Path(abs))
			}
		}
	}

	return paths, nil
}

func (d *discovery) module(root string, path m.Path) m.Module {
	rel, err := d.RelPath(m.Path(root), path)
	if err != nil || strings.HasPrefix(string(rel), "..") {
		base := filepath.Base(string(path))
		return m.Module{Path: path, ShortPath: m.Path(base), Name: strings.TrimSuffix(base, pythonExt)}
	}

	return m.Module{Path: path, ShortPath: rel, Name: ModuleName(string(rel))}
}

// ModuleName turns a root-relative file path into a dotted module name.
// Package markers are named after their directory; the root marker is "".
func ModuleName(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), pythonExt)
	rel = strings.TrimSuffix(rel, "__init__")
	rel = strings.TrimSuffix(rel, "/")

	return strings.ReplaceAll(rel, "/", ".")
}

type excludeSet []glob.Glob

func compileExcludes(patterns []string) (excludeSet, error) {
	set := make(excludeSet, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, cerrors.Wrap(err, cerrors.CodeValidation, fmt.Sprintf("invalid exclude pattern %q", pattern))
		}

		set = append(set, g)
	}

	return set, nil
}

func (s excludeSet) match(rel string) bool {
	base := rel[strings.LastIndex(rel, "/")+1:]

	for _, g := range s {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}

	return false
}
