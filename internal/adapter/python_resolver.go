package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	cerrors "camelsnake.dev/pkg/camelsnake/internal/errors"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

func pythonLanguage() *sitter.Language {
	return sitter.NewLanguage(tree_sitter_python.Language())
}

// PythonResolver resolves and renames Python symbols with a tree-sitter
// scope model. Analyses are cached by content hash.
type PythonResolver struct {
	fs   SourceFSAdapter
	pool *ParserPool

	mu    sync.Mutex
	cache map[m.Path]*pyModule
}

// NewPythonResolver creates a resolver reading and writing through fs.
func NewPythonResolver(fs SourceFSAdapter) *PythonResolver {
	return &PythonResolver{
		fs:    fs,
		pool:  NewParserPool(pythonLanguage()),
		cache: map[m.Path]*pyModule{},
	}
}

// Analyze returns every identifier token of src with its symbol.
func (r *PythonResolver) Analyze(ctx context.Context, path m.Path, src []byte) (m.Analysis, error) {
	mod, err := r.module(ctx, path, src)
	if err != nil {
		return m.Analysis{}, err
	}

	return mod.analysis(), nil
}

// Resolve returns the symbol whose token starts at offset.
func (r *PythonResolver) Resolve(ctx context.Context, path m.Path, src []byte, offset int) (m.Symbol, bool, error) {
	mod, err := r.module(ctx, path, src)
	if err != nil {
		return m.Symbol{}, false, err
	}

	t := mod.tokenAt(offset)
	if t == nil {
		return m.Symbol{}, false, nil
	}

	return t.symbol(), true, nil
}

func (r *PythonResolver) module(ctx context.Context, path m.Path, src []byte) (*pyModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash := HashContent(src)

	r.mu.Lock()
	cached, ok := r.cache[path]
	r.mu.Unlock()

	if ok && cached.hash == hash {
		return cached, nil
	}

	sp, err := r.pool.Get()
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CodeInternal, "python grammar unavailable").WithContext(cerrors.CtxPath, string(path))
	}
	defer r.pool.Put(sp)

	tree := sp.Parse(src, nil)
	if tree == nil {
		return nil, cerrors.New(cerrors.CodeSyntax, "parser returned no tree").WithContext(cerrors.CtxPath, string(path))
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, cerrors.New(cerrors.CodeSyntax, "source has syntax errors").WithContext(cerrors.CtxPath, string(path))
	}

	mod := buildModule(path, hash, src, root)

	r.mu.Lock()
	r.cache[path] = mod
	r.mu.Unlock()

	return mod, nil
}

func (r *PythonResolver) load(ctx context.Context, path m.Path) (*pyModule, error) {
	src, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CodeNotFound, "failed to read module").WithContext(cerrors.CtxPath, string(path))
	}

	return r.module(ctx, path, src)
}

// PlanRename computes the edits renaming the symbol at occ to newName.
//
//nolint:cyclop // Each rename reach (locals, keywords, members, importers, docs) is one branch.
func (r *PythonResolver) PlanRename(
	ctx context.Context,
	project m.Project,
	occ m.Occurrence,
	newName string,
	opts m.RenameOptions,
) (*m.ChangeSet, error) {
	if !m.IsIdentifier(newName) {
		return nil, cerrors.New(cerrors.CodeValidation, fmt.Sprintf("%q is not a valid identifier", newName))
	}

	mod, err := r.load(ctx, occ.Module.Path)
	if err != nil {
		return nil, err
	}

	t := mod.tokenAt(occ.Offset)
	if t == nil || t.name != occ.Name {
		return nil, cerrors.New(cerrors.CodeStale, "no such identifier at offset").
			WithContext(cerrors.CtxPath, string(occ.Module.Path)).
			WithContext(cerrors.CtxOffset, occ.Offset).
			WithContext(cerrors.CtxSymbol, occ.Name)
	}

	binding := t.binding
	if binding == nil || !binding.renamable {
		return nil, cerrors.New(cerrors.CodeUnrenamable, "symbol cannot be renamed").
			WithContext(cerrors.CtxPath, string(occ.Module.Path)).
			WithContext(cerrors.CtxSymbol, occ.Name)
	}

	plan := newRenamePlan(binding.name, newName)
	plan.addBinding(mod, binding)

	if binding.kind == m.KindParameter {
		plan.addKeywords(mod, binding)

		if err := r.planCallers(ctx, project, occ.Module, binding, plan); err != nil {
			return nil, err
		}
	}

	member := binding.scope.kind == scopeClass
	if member {
		plan.addAttributes(mod, binding.name)
	}

	if opts.Docs {
		plan.addDocs(mod, binding.scope)
	}

	if member || binding.scope.kind == scopeModule {
		defining, _ := project.Lookup(occ.Module.Path)
		if defining.Path == "" {
			defining = occ.Module
		}

		for _, other := range project.Files {
			if other.Path == occ.Module.Path {
				continue
			}

			if err := r.planImporter(ctx, project, defining, other, binding, member, opts, plan); err != nil {
				return nil, err
			}
		}
	}

	return r.changeSet(project, plan, opts)
}

func (r *PythonResolver) planImporter(
	ctx context.Context,
	project m.Project,
	defining, other m.Module,
	binding *pyBinding,
	member bool,
	opts m.RenameOptions,
	plan *renamePlan,
) error {
	mod, err := r.load(ctx, other.Path)
	if err != nil {
		if cerrors.IsCode(err, cerrors.CodeSyntax) {
			slog.Warn("Skipping unparsable importer", "path", other.Path, "error", err)
			return nil
		}

		return err
	}

	targets := moduleNames(project, defining)
	touched := false

	for _, imp := range mod.imports {
		full := resolveImport(project, other, imp.module)

		switch {
		case imp.from && targets[full] && !member && imp.name == binding.name:
			plan.add(mod, imp.nameOffset)

			if imp.alias == "" && imp.binding != nil {
				plan.addBinding(mod, imp.binding)
			}

			touched = true
		case imp.from && targets[joinModule(full, imp.name)]:
			touched = true

			if !member && imp.binding != nil {
				plan.addQualified(mod, imp.binding.name, binding.name)
			}
		case !imp.from && targets[full]:
			touched = true

			if !member {
				qualifier := imp.alias
				if qualifier == "" {
					qualifier = imp.module
				}

				plan.addQualified(mod, qualifier, binding.name)
			}
		case imp.from && targets[full]:
			touched = true
		}
	}

	if !touched {
		return nil
	}

	if member {
		plan.addAttributes(mod, binding.name)
	}

	if opts.Docs {
		plan.addDocs(mod, mod.root)
	}

	return nil
}

// planCallers extends a parameter rename to keyword arguments in modules
// importing the function that owns it.
func (r *PythonResolver) planCallers(
	ctx context.Context,
	project m.Project,
	defining m.Module,
	param *pyBinding,
	plan *renamePlan,
) error {
	fn := param.scope.owner
	if fn == nil {
		return nil
	}

	// exported is the module-level name callers import; method is set when
	// callers may reach the function through an attribute.
	exported, method := fn, ""
	if fn.scope.kind == scopeClass {
		method = fn.name
		exported = nil

		if fn.name == "__init__" {
			exported = fn.scope.owner
		}
	}

	if exported != nil && exported.scope.kind != scopeModule {
		exported = nil
	}

	if exported == nil && method == "" {
		return nil
	}

	if d, ok := project.Lookup(defining.Path); ok {
		defining = d
	}

	targets := moduleNames(project, defining)

	for _, other := range project.Files {
		if other.Path == defining.Path {
			continue
		}

		mod, err := r.load(ctx, other.Path)
		if err != nil {
			if cerrors.IsCode(err, cerrors.CodeSyntax) {
				continue
			}

			return err
		}

		imported := map[*pyBinding]bool{}
		touched := false

		for _, imp := range mod.imports {
			if !targets[resolveImport(project, other, imp.module)] {
				continue
			}

			touched = true

			if exported != nil && imp.from && imp.name == exported.name && imp.binding != nil {
				imported[imp.binding] = true
			}
		}

		if touched {
			plan.addImportedKeywords(mod, imported, method)
		}
	}

	return nil
}

func (r *PythonResolver) changeSet(project m.Project, plan *renamePlan, opts m.RenameOptions) (*m.ChangeSet, error) {
	cs := &m.ChangeSet{Old: plan.old, New: plan.new, Options: opts}

	var diff strings.Builder

	for _, path := range plan.order {
		mod := plan.modules[path]

		offsets := make([]int, 0, len(plan.edits[path]))
		for offset := range plan.edits[path] {
			offsets = append(offsets, offset)
		}

		sort.Ints(offsets)

		var (
			out   bytes.Buffer
			edits []m.Edit
			last  int
		)

		for _, offset := range offsets {
			length := plan.edits[path][offset]
			if offset < last {
				return nil, cerrors.New(cerrors.CodeConflict, "overlapping rename edits").WithContext(cerrors.CtxPath, string(path))
			}

			out.Write(mod.src[last:offset])
			out.WriteString(plan.new)
			edits = append(edits, m.Edit{Offset: offset, Length: length, Text: plan.new})
			last = offset + length
		}

		out.Write(mod.src[last:])

		cs.Files = append(cs.Files, m.FileChange{
			Path:     path,
			Original: mod.src,
			Updated:  out.Bytes(),
			Edits:    edits,
		})

		diff.WriteString(unifiedDiff(project, path, mod.src, out.Bytes()))
	}

	cs.Diff = diff.String()

	return cs, nil
}

func unifiedDiff(project m.Project, path m.Path, before, after []byte) string {
	name := string(path)
	if module, ok := project.Lookup(path); ok && module.ShortPath != "" {
		name = string(module.ShortPath)
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  2,
	})
	if err != nil {
		slog.Warn("Failed to render diff", "path", path, "error", err)
		return ""
	}

	return text
}

// Apply writes cs after checking every file still holds the planned
// original content.
func (r *PythonResolver) Apply(ctx context.Context, cs *m.ChangeSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, file := range cs.Files {
		current, err := r.fs.HashFile(file.Path)
		if err != nil {
			slog.Error("Failed to hash file before rename", "path", file.Path, "error", err)
			return fmt.Errorf("failed to hash %s: %w", file.Path, err)
		}

		if current != HashContent(file.Original) {
			return cerrors.New(cerrors.CodeConflict, "file changed since the rename was planned").
				WithContext(cerrors.CtxPath, string(file.Path))
		}
	}

	for _, file := range cs.Files {
		perm := os.FileMode(0o644)
		if info, err := r.fs.FileInfo(file.Path); err == nil {
			perm = info.Mode().Perm()
		}

		if err := r.fs.WriteFile(file.Path, file.Updated, perm); err != nil {
			slog.Error("Failed to write renamed file", "path", file.Path, "error", err)
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}

		r.mu.Lock()
		delete(r.cache, file.Path)
		r.mu.Unlock()
	}

	slog.Debug("Applied rename", "old", cs.Old, "new", cs.New, "files", len(cs.Files))

	return nil
}

// renamePlan collects edit offsets per file. Every edit replaces exactly one
// spelling of old.
type renamePlan struct {
	old     string
	new     string
	order   []m.Path
	modules map[m.Path]*pyModule
	edits   map[m.Path]map[int]int
}

func newRenamePlan(old, new string) *renamePlan {
	return &renamePlan{
		old:     old,
		new:     new,
		modules: map[m.Path]*pyModule{},
		edits:   map[m.Path]map[int]int{},
	}
}

func (p *renamePlan) add(mod *pyModule, offset int) {
	if _, ok := p.edits[mod.path]; !ok {
		p.order = append(p.order, mod.path)
		p.modules[mod.path] = mod
		p.edits[mod.path] = map[int]int{}
	}

	p.edits[mod.path][offset] = len(p.old)
}

func (p *renamePlan) addBinding(mod *pyModule, binding *pyBinding) {
	for _, t := range mod.tokens {
		if t.binding == binding && t.name == p.old {
			p.add(mod, t.start)
		}
	}
}

// addKeywords renames name= arguments in calls to the function owning the
// parameter, including constructor calls for __init__.
func (p *renamePlan) addKeywords(mod *pyModule, param *pyBinding) {
	fn := param.scope.owner
	if fn == nil {
		return
	}

	byOffset := tokenIndex(mod)

	var ctor *pyBinding
	if fn.name == "__init__" && fn.scope.kind == scopeClass {
		ctor = fn.scope.owner
	}

	for _, t := range mod.tokens {
		if t.role != roleKeyword || t.name != p.old {
			continue
		}

		if callee, ok := byOffset[t.calleeOffset]; ok && callee.binding != nil {
			if callee.binding == fn || (ctor != nil && callee.binding == ctor) {
				p.add(mod, t.start)
			}

			continue
		}

		if fn.scope.kind == scopeClass && t.calleeAttr == fn.name {
			p.add(mod, t.start)
		}
	}
}

// addImportedKeywords renames name= arguments in an importing module whose
// callee is the imported function, the imported class for __init__, or any
// attribute call of a method with the function's name.
func (p *renamePlan) addImportedKeywords(mod *pyModule, imported map[*pyBinding]bool, method string) {
	byOffset := tokenIndex(mod)

	for _, t := range mod.tokens {
		if t.role != roleKeyword || t.name != p.old {
			continue
		}

		if callee, ok := byOffset[t.calleeOffset]; ok {
			if callee.binding != nil && imported[callee.binding] {
				p.add(mod, t.start)
			}

			continue
		}

		if method != "" && t.calleeAttr == method {
			p.add(mod, t.start)
		}
	}
}

func (p *renamePlan) addAttributes(mod *pyModule, name string) {
	for _, t := range mod.tokens {
		if t.role == roleAttribute && t.name == name {
			p.add(mod, t.start)
		}
	}
}

// addQualified renames qualifier.name attribute accesses.
func (p *renamePlan) addQualified(mod *pyModule, qualifier, name string) {
	for _, t := range mod.tokens {
		if t.role == roleAttribute && t.name == name && t.object == qualifier {
			p.add(mod, t.start)
		}
	}
}

var wordCache sync.Map

func wordPattern(name string) *regexp.Regexp {
	if re, ok := wordCache.Load(name); ok {
		return re.(*regexp.Regexp)
	}

	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	wordCache.Store(name, re)

	return re
}

// addDocs renames whole-word matches in strings and comments inside scope.
func (p *renamePlan) addDocs(mod *pyModule, scope *pyScope) {
	re := wordPattern(p.old)

	for _, doc := range mod.docs {
		if scope.kind != scopeModule && !(scope.contains(doc.start) && doc.end <= scope.end) {
			continue
		}

		for _, loc := range re.FindAllIndex(mod.src[doc.start:doc.end], -1) {
			p.add(mod, doc.start+loc[0])
		}
	}
}

func tokenIndex(mod *pyModule) map[int]*pyToken {
	index := make(map[int]*pyToken, len(mod.tokens))
	for _, t := range mod.tokens {
		index[t.start] = t
	}

	return index
}

// moduleNames returns the dotted names a module can be imported by.
func moduleNames(project m.Project, module m.Module) map[string]bool {
	names := map[string]bool{}
	if module.Name != "" {
		names[module.Name] = true
	}

	if project.Package != "" {
		names[joinModule(project.Package, module.Name)] = true
	}

	return names
}

// resolveImport turns a possibly relative import path written in importer
// into an absolute dotted module name.
func resolveImport(project m.Project, importer m.Module, ref string) string {
	dots := len(ref) - len(strings.TrimLeft(ref, "."))
	if dots == 0 {
		return ref
	}

	full := importer.Name
	if project.Package != "" {
		full = joinModule(project.Package, importer.Name)
	}

	parts := strings.Split(full, ".")
	if full == "" {
		parts = nil
	}

	if !importer.IsPackage() && len(parts) > 0 {
		parts = parts[:len(parts)-1]
	}

	for i := 1; i < dots && len(parts) > 0; i++ {
		parts = parts[:len(parts)-1]
	}

	return joinModule(strings.Join(parts, "."), ref[dots:])
}

func joinModule(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "." + name
	}
}
