package adapter

import (
	"sort"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

type scopeKind int

const (
	scopeModule scopeKind = iota
	scopeFunction
	scopeClass
	scopeLambda
	scopeComprehension
)

type tokenRole int

const (
	roleName tokenRole = iota
	roleAttribute
	roleKeyword
	roleImportPath
	roleImportName
)

// pyScope is one lexical namespace. start/end delimit the text whose names
// resolve in this scope first.
type pyScope struct {
	kind      scopeKind
	name      string
	parent    *pyScope
	start     int
	end       int
	names     map[string]*pyBinding
	attrs     map[string]*pyBinding
	globals   map[string]bool
	nonlocals map[string]bool
	owner     *pyBinding
	selfName  string
}

func newScope(kind scopeKind, name string, parent *pyScope, start, end int) *pyScope {
	return &pyScope{
		kind:      kind,
		name:      name,
		parent:    parent,
		start:     start,
		end:       end,
		names:     map[string]*pyBinding{},
		attrs:     map[string]*pyBinding{},
		globals:   map[string]bool{},
		nonlocals: map[string]bool{},
	}
}

// path returns the dotted chain of enclosing definitions.
func (s *pyScope) path() string {
	var parts []string

	for sc := s; sc != nil && sc.kind != scopeModule; sc = sc.parent {
		parts = append(parts, sc.name)
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, ".")
}

func (s *pyScope) root() *pyScope {
	sc := s
	for sc.parent != nil {
		sc = sc.parent
	}

	return sc
}

// class returns the class a method scope belongs to.
func (s *pyScope) class() *pyScope {
	if s.kind == scopeFunction && s.parent != nil && s.parent.kind == scopeClass {
		return s.parent
	}

	return nil
}

func (s *pyScope) contains(offset int) bool {
	return offset >= s.start && offset < s.end
}

type pyBinding struct {
	name      string
	kind      m.SymbolKind
	offset    int
	scope     *pyScope
	renamable bool
	imp       *pyImport
	opens     *pyScope
}

type pyImport struct {
	// module is the module path as written, relative imports keep their dots.
	module     string
	name       string
	nameOffset int
	alias      string
	from       bool
	binding    *pyBinding
}

type pyToken struct {
	name    string
	start   int
	line    int
	role    tokenRole
	scope   *pyScope
	binding *pyBinding
	// attribute tokens
	object       string
	objectOffset int
	// keyword argument tokens
	calleeOffset int
	calleeAttr   string
}

func (t *pyToken) symbol() m.Symbol {
	if b := t.binding; b != nil {
		return m.Symbol{
			Name:      t.name,
			Kind:      b.kind,
			Binding:   b.offset,
			Scope:     b.scope.path(),
			Renamable: b.renamable,
		}
	}

	kind := m.KindUnresolved

	switch t.role {
	case roleAttribute:
		kind = m.KindAttribute
	case roleKeyword:
		kind = m.KindKeyword
	case roleImportPath, roleImportName:
		kind = m.KindImport
	}

	return m.Symbol{Name: t.name, Kind: kind, Binding: t.start, Scope: t.scope.path()}
}

type span struct {
	start int
	end   int
}

// pyModule is the analysis of one Python file. It holds no tree-sitter
// nodes, so it outlives the parse tree.
type pyModule struct {
	path    m.Path
	hash    string
	src     []byte
	root    *pyScope
	tokens  []*pyToken
	imports []*pyImport
	docs    []span
}

func (pm *pyModule) tokenAt(offset int) *pyToken {
	i := sort.Search(len(pm.tokens), func(i int) bool {
		return pm.tokens[i].start >= offset
	})
	if i < len(pm.tokens) && pm.tokens[i].start == offset {
		return pm.tokens[i]
	}

	return nil
}

func (pm *pyModule) analysis() m.Analysis {
	tokens := make([]m.Token, 0, len(pm.tokens))
	for _, t := range pm.tokens {
		tokens = append(tokens, m.Token{Name: t.name, Offset: t.start, Line: t.line, Symbol: t.symbol()})
	}

	return m.Analysis{Path: pm.path, Hash: pm.hash, Tokens: tokens}
}

// pyBuilder walks a parse tree once to declare bindings and collect tokens,
// then resolves every reference against the finished scopes.
type pyBuilder struct {
	src []byte
	mod *pyModule
}

func buildModule(path m.Path, hash string, src []byte, root *sitter.Node) *pyModule {
	b := &pyBuilder{
		src: src,
		mod: &pyModule{path: path, hash: hash, src: src},
	}
	b.mod.root = newScope(scopeModule, "", nil, 0, len(src)+1)

	b.walk(root, b.mod.root)

	sort.Slice(b.mod.tokens, func(i, j int) bool {
		return b.mod.tokens[i].start < b.mod.tokens[j].start
	})

	b.resolve()

	return b.mod
}

func (b *pyBuilder) text(n *sitter.Node) string {
	return string(b.src[n.StartByte():n.EndByte()])
}

func (b *pyBuilder) addToken(n *sitter.Node, role tokenRole, s *pyScope) *pyToken {
	t := &pyToken{
		name:  b.text(n),
		start: int(n.StartByte()),
		line:  int(n.StartPosition().Row) + 1,
		role:  role,
		scope: s,
	}
	b.mod.tokens = append(b.mod.tokens, t)

	return t
}

func (b *pyBuilder) walkChildren(n *sitter.Node, s *pyScope) {
	for i := uint(0); i < n.ChildCount(); i++ {
		b.walk(n.Child(i), s)
	}
}

//nolint:cyclop,funlen // One case per Python construct that opens a scope or binds a name.
func (b *pyBuilder) walk(n *sitter.Node, s *pyScope) {
	if n == nil {
		return
	}

	switch n.Kind() {
	case "identifier":
		b.addToken(n, roleName, s)
	case "comment":
		b.mod.docs = append(b.mod.docs, span{int(n.StartByte()), int(n.EndByte())})
	case "string":
		b.walkString(n, s)
	case "function_definition":
		b.walkFunction(n, s)
	case "class_definition":
		b.walkClass(n, s)
	case "lambda":
		ls := newScope(scopeLambda, "<lambda>", s, int(n.StartByte()), int(n.EndByte()))
		b.walkParameters(n.ChildByFieldName("parameters"), ls, s)
		b.walk(n.ChildByFieldName("body"), ls)
	case "list_comprehension", "set_comprehension", "dictionary_comprehension", "generator_expression":
		b.walkComprehension(n, s)
	case "assignment":
		b.declareTargets(n.ChildByFieldName("left"), s, m.KindVariable)
		b.walk(n.ChildByFieldName("type"), s)
		b.walk(n.ChildByFieldName("right"), s)
	case "augmented_assignment":
		b.declareTargets(n.ChildByFieldName("left"), s, m.KindVariable)
		b.walk(n.ChildByFieldName("right"), s)
	case "for_statement":
		b.declareTargets(n.ChildByFieldName("left"), s, m.KindVariable)
		b.walk(n.ChildByFieldName("right"), s)
		b.walk(n.ChildByFieldName("body"), s)
		b.walk(n.ChildByFieldName("alternative"), s)
	case "named_expression":
		target := s
		for target.kind == scopeComprehension && target.parent != nil {
			target = target.parent
		}

		b.declare(n.ChildByFieldName("name"), target, m.KindVariable)
		b.walk(n.ChildByFieldName("value"), s)
	case "as_pattern":
		b.walkAsPattern(n, s)
	case "except_clause":
		b.walkExcept(n, s)
	case "global_statement", "nonlocal_statement":
		b.walkDeclaration(n, s)
	case "import_statement":
		b.walkImport(n, s)
	case "import_from_statement":
		b.walkFromImport(n, s)
	case "keyword_argument":
		b.walkKeywordArgument(n, s)
	case "attribute":
		b.walk(n.ChildByFieldName("object"), s)
		b.addAttribute(n, s)
	default:
		b.walkChildren(n, s)
	}
}

func (b *pyBuilder) walkString(n *sitter.Node, s *pyScope) {
	hasContent := false

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() == "string_content" {
			hasContent = true

			b.mod.docs = append(b.mod.docs, span{int(child.StartByte()), int(child.EndByte())})
		}
	}

	if !hasContent && n.ChildCount() == 0 {
		b.mod.docs = append(b.mod.docs, span{int(n.StartByte()), int(n.EndByte())})
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child.Kind() == "interpolation" {
			b.walkChildren(child, s)
		}
	}
}

func (b *pyBuilder) walkFunction(n *sitter.Node, s *pyScope) {
	nameNode := n.ChildByFieldName("name")
	params := n.ChildByFieldName("parameters")

	binding := b.declare(nameNode, s, m.KindFunction)

	start := int(n.StartByte())
	if params != nil {
		start = int(params.StartByte())
	}

	name := ""
	if nameNode != nil {
		name = b.text(nameNode)
	}

	fs := newScope(scopeFunction, name, s, start, int(n.EndByte()))
	fs.owner = binding

	if binding != nil {
		binding.opens = fs
	}

	b.walkParameters(params, fs, s)
	b.walk(n.ChildByFieldName("return_type"), s)
	b.walk(n.ChildByFieldName("body"), fs)
}

func (b *pyBuilder) walkClass(n *sitter.Node, s *pyScope) {
	nameNode := n.ChildByFieldName("name")
	binding := b.declare(nameNode, s, m.KindClass)

	b.walk(n.ChildByFieldName("superclasses"), s)

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}

	name := ""
	if nameNode != nil {
		name = b.text(nameNode)
	}

	cs := newScope(scopeClass, name, s, int(body.StartByte()), int(body.EndByte()))
	cs.owner = binding

	if binding != nil {
		binding.opens = cs
	}

	b.walk(body, cs)
}

// walkParameters declares parameters in fs; annotations and defaults are
// evaluated in the enclosing scope.
func (b *pyBuilder) walkParameters(params *sitter.Node, fs, outer *pyScope) {
	if params == nil {
		return
	}

	for i := uint(0); i < params.ChildCount(); i++ {
		child := params.Child(i)

		switch child.Kind() {
		case "identifier":
			b.declareParameter(child, fs)
		case "list_splat_pattern", "dictionary_splat_pattern":
			b.declareParameter(firstIdentifier(child), fs)
		case "typed_parameter":
			for j := uint(0); j < child.ChildCount(); j++ {
				sub := child.Child(j)

				switch sub.Kind() {
				case "identifier":
					b.declareParameter(sub, fs)
				case "list_splat_pattern", "dictionary_splat_pattern":
					b.declareParameter(firstIdentifier(sub), fs)
				}
			}

			b.walk(child.ChildByFieldName("type"), outer)
		case "default_parameter", "typed_default_parameter":
			b.declareParameter(child.ChildByFieldName("name"), fs)
			b.walk(child.ChildByFieldName("type"), outer)
			b.walk(child.ChildByFieldName("value"), outer)
		}
	}
}

func (b *pyBuilder) declareParameter(n *sitter.Node, fs *pyScope) {
	if n == nil || n.Kind() != "identifier" {
		return
	}

	b.declare(n, fs, m.KindParameter)

	if fs.selfName == "" && fs.class() != nil {
		fs.selfName = b.text(n)
	}
}

func (b *pyBuilder) walkComprehension(n *sitter.Node, s *pyScope) {
	cs := newScope(scopeComprehension, "<comprehension>", s, int(n.StartByte()), int(n.EndByte()))
	first := true

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() != "for_in_clause" {
			continue
		}

		b.declareTargets(child.ChildByFieldName("left"), cs, m.KindVariable)

		if first {
			b.walk(child.ChildByFieldName("right"), s)
			first = false
		} else {
			b.walk(child.ChildByFieldName("right"), cs)
		}
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child.Kind() != "for_in_clause" {
			b.walk(child, cs)
		}
	}
}

func (b *pyBuilder) walkAsPattern(n *sitter.Node, s *pyScope) {
	alias := n.ChildByFieldName("alias")

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if alias != nil && child.StartByte() == alias.StartByte() && child.EndByte() == alias.EndByte() {
			continue
		}

		b.walk(child, s)
	}

	if alias != nil {
		b.declareTargets(alias, s, m.KindVariable)
	}
}

// walkExcept handles the grammar variant where "except E as e" is not an
// as_pattern.
func (b *pyBuilder) walkExcept(n *sitter.Node, s *pyScope) {
	afterAs := false

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)

		switch {
		case child.Kind() == "as":
			afterAs = true
		case afterAs && child.Kind() == "identifier":
			b.declare(child, s, m.KindVariable)

			afterAs = false
		default:
			b.walk(child, s)
		}
	}
}

func (b *pyBuilder) walkDeclaration(n *sitter.Node, s *pyScope) {
	global := n.Kind() == "global_statement"

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() != "identifier" {
			continue
		}

		if global {
			s.globals[b.text(child)] = true
		} else {
			s.nonlocals[b.text(child)] = true
		}

		b.addToken(child, roleName, s)
	}
}

func (b *pyBuilder) walkImport(n *sitter.Node, s *pyScope) {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)

		switch child.Kind() {
		case "dotted_name":
			imp := &pyImport{module: b.text(child)}
			b.mod.imports = append(b.mod.imports, imp)

			first := firstIdentifier(child)
			b.addPathTokens(child, s, first)

			if first != nil {
				b.bindImport(imp, first, s)
			}
		case "aliased_import":
			name := child.ChildByFieldName("name")
			alias := child.ChildByFieldName("alias")

			imp := &pyImport{}
			if name != nil {
				imp.module = b.text(name)
				b.addPathTokens(name, s, nil)
			}

			if alias != nil {
				imp.alias = b.text(alias)
				b.bindImport(imp, alias, s)
			}

			b.mod.imports = append(b.mod.imports, imp)
		}
	}
}

func (b *pyBuilder) walkFromImport(n *sitter.Node, s *pyScope) {
	module := ""
	seenImport := false

	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)

		switch {
		case child.Kind() == "import":
			seenImport = true
		case !seenImport && (child.Kind() == "relative_import" || child.Kind() == "dotted_name"):
			module = b.text(child)
			b.addPathTokens(child, s, nil)
		case seenImport && child.Kind() == "dotted_name":
			b.addFromName(child, nil, module, s)
		case seenImport && child.Kind() == "aliased_import":
			b.addFromName(child.ChildByFieldName("name"), child.ChildByFieldName("alias"), module, s)
		case seenImport && child.Kind() == "import_list":
			for j := uint(0); j < child.ChildCount(); j++ {
				sub := child.Child(j)

				switch sub.Kind() {
				case "dotted_name":
					b.addFromName(sub, nil, module, s)
				case "aliased_import":
					b.addFromName(sub.ChildByFieldName("name"), sub.ChildByFieldName("alias"), module, s)
				}
			}
		}
	}
}

func (b *pyBuilder) addFromName(name, alias *sitter.Node, module string, s *pyScope) {
	if name == nil {
		return
	}

	ident := firstIdentifier(name)
	if ident == nil {
		return
	}

	imp := &pyImport{
		module:     module,
		name:       b.text(ident),
		nameOffset: int(ident.StartByte()),
		from:       true,
	}
	b.mod.imports = append(b.mod.imports, imp)

	if alias != nil {
		b.addToken(ident, roleImportName, s)
		imp.alias = b.text(alias)
		b.bindImport(imp, alias, s)

		return
	}

	b.bindImport(imp, ident, s)
}

func (b *pyBuilder) bindImport(imp *pyImport, n *sitter.Node, s *pyScope) {
	binding := b.declare(n, s, m.KindImport)
	if binding == nil || binding.kind != m.KindImport {
		return
	}

	imp.binding = binding
	if binding.imp == nil {
		binding.imp = imp
	}
}

func (b *pyBuilder) addPathTokens(n *sitter.Node, s *pyScope, skip *sitter.Node) {
	if n.Kind() == "identifier" {
		if skip == nil || n.StartByte() != skip.StartByte() {
			b.addToken(n, roleImportPath, s)
		}

		return
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		b.addPathTokens(n.Child(i), s, skip)
	}
}

func (b *pyBuilder) walkKeywordArgument(n *sitter.Node, s *pyScope) {
	name := n.ChildByFieldName("name")
	if name != nil && name.Kind() == "identifier" {
		t := b.addToken(name, roleKeyword, s)
		t.calleeOffset = -1

		if args := n.Parent(); args != nil && args.Kind() == "argument_list" {
			if call := args.Parent(); call != nil && call.Kind() == "call" {
				fn := call.ChildByFieldName("function")

				switch {
				case fn == nil:
				case fn.Kind() == "identifier":
					t.calleeOffset = int(fn.StartByte())
				case fn.Kind() == "attribute":
					if attr := fn.ChildByFieldName("attribute"); attr != nil {
						t.calleeAttr = b.text(attr)
					}
				}
			}
		}
	}

	b.walk(n.ChildByFieldName("value"), s)
}

func (b *pyBuilder) addAttribute(n *sitter.Node, s *pyScope) *pyToken {
	attr := n.ChildByFieldName("attribute")
	if attr == nil {
		return nil
	}

	t := b.addToken(attr, roleAttribute, s)
	t.objectOffset = -1

	if obj := n.ChildByFieldName("object"); obj != nil {
		t.object = strings.Join(strings.Fields(b.text(obj)), "")
		if obj.Kind() == "identifier" {
			t.objectOffset = int(obj.StartByte())
		}
	}

	return t
}

// declareTargets declares every name bound by an assignment target.
func (b *pyBuilder) declareTargets(n *sitter.Node, s *pyScope, kind m.SymbolKind) {
	if n == nil {
		return
	}

	switch n.Kind() {
	case "identifier":
		b.declare(n, s, kind)
	case "pattern_list", "tuple_pattern", "list_pattern", "expression_list", "tuple", "list",
		"parenthesized_expression", "list_splat_pattern", "list_splat", "as_pattern_target":
		for i := uint(0); i < n.ChildCount(); i++ {
			b.declareTargets(n.Child(i), s, kind)
		}
	case "attribute":
		b.walk(n.ChildByFieldName("object"), s)

		t := b.addAttribute(n, s)
		if t == nil {
			return
		}

		obj := n.ChildByFieldName("object")
		if cls := s.class(); cls != nil && obj != nil && obj.Kind() == "identifier" && b.text(obj) == s.selfName {
			if _, ok := cls.names[t.name]; ok {
				return
			}

			binding, ok := cls.attrs[t.name]
			if !ok {
				binding = &pyBinding{name: t.name, kind: m.KindAttribute, offset: t.start, scope: cls, renamable: true}
				cls.attrs[t.name] = binding
			}

			t.binding = binding
		}
	default:
		b.walk(n, s)
	}
}

// declare binds the identifier n in s, honouring global and nonlocal
// declarations, and records n as a binding token.
func (b *pyBuilder) declare(n *sitter.Node, s *pyScope, kind m.SymbolKind) *pyBinding {
	if n == nil || n.Kind() != "identifier" {
		if n != nil {
			b.walk(n, s)
		}

		return nil
	}

	name := b.text(n)
	target := s

	switch {
	case kind == m.KindParameter:
	case s.globals[name]:
		target = s.root()
	case s.nonlocals[name]:
		for sc := s.parent; sc != nil; sc = sc.parent {
			if sc.kind == scopeClass {
				continue
			}

			if _, ok := sc.names[name]; ok {
				target = sc

				break
			}
		}
	}

	binding, ok := target.names[name]
	if !ok {
		binding = &pyBinding{
			name:      name,
			kind:      kind,
			offset:    int(n.StartByte()),
			scope:     target,
			renamable: kind != m.KindImport,
		}
		target.names[name] = binding
	}

	role := roleName
	if kind == m.KindImport && binding.kind == m.KindImport && n.Parent() != nil && n.Parent().Kind() == "dotted_name" {
		role = roleImportName
	}

	t := b.addToken(n, role, s)
	t.binding = binding

	return binding
}

func (b *pyBuilder) resolve() {
	byOffset := make(map[int]*pyToken, len(b.mod.tokens))
	for _, t := range b.mod.tokens {
		byOffset[t.start] = t
	}

	for _, t := range b.mod.tokens {
		if t.binding != nil {
			continue
		}

		switch t.role {
		case roleName:
			t.binding = lookup(t.scope, t.name)
		case roleAttribute:
			obj, ok := byOffset[t.objectOffset]
			if !ok || obj.binding == nil {
				continue
			}

			t.binding = selfAttribute(obj.binding, t.name)
		}
	}
}

// lookup resolves a name with Python's rules: local, enclosing functions,
// module. Class bodies are only visible from the class body itself.
func lookup(s *pyScope, name string) *pyBinding {
	for sc := s; sc != nil; sc = sc.parent {
		if sc != s && sc.kind == scopeClass {
			continue
		}

		if sc.globals[name] {
			return sc.root().names[name]
		}

		if binding, ok := sc.names[name]; ok {
			return binding
		}
	}

	return nil
}

// selfAttribute resolves self.<name> inside a method to the class member.
func selfAttribute(object *pyBinding, name string) *pyBinding {
	if object.kind != m.KindParameter {
		return nil
	}

	cls := object.scope.class()
	if cls == nil || object.scope.selfName != object.name {
		return nil
	}

	if binding, ok := cls.names[name]; ok {
		return binding
	}

	return cls.attrs[name]
}

func firstIdentifier(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}

	if n.Kind() == "identifier" {
		return n
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		if found := firstIdentifier(n.Child(i)); found != nil {
			return found
		}
	}

	return nil
}
