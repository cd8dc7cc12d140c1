package model

import "unicode"

// SymbolKind classifies what an identifier token names.
type SymbolKind string

// Available SymbolKind values.
const (
	KindVariable   SymbolKind = "variable"
	KindParameter  SymbolKind = "parameter"
	KindFunction   SymbolKind = "function"
	KindClass      SymbolKind = "class"
	KindAttribute  SymbolKind = "attribute"
	KindImport     SymbolKind = "import"
	KindKeyword    SymbolKind = "keyword"
	KindUnresolved SymbolKind = "unresolved"
)

// Symbol is the resolver's answer for one identifier token.
type Symbol struct {
	Name string
	Kind SymbolKind
	// Binding is the offset of the token that defines the symbol.
	Binding int
	// Scope is the dotted chain of enclosing definitions of the binding
	// ("" for module level).
	Scope     string
	Renamable bool
}

// Token is one identifier in a module's current text.
type Token struct {
	Name   string
	Offset int
	Line   int
	Symbol Symbol
}

// Analysis is the resolver view of one module's current text.
type Analysis struct {
	Path Path
	Hash string
	// Tokens holds every identifier token, offset ascending.
	Tokens []Token
}

// Names returns the set of identifier spellings present in the module.
func (a Analysis) Names() Universe {
	names := make([]string, 0, len(a.Tokens))
	for _, token := range a.Tokens {
		names = append(names, token.Name)
	}

	return NewUniverse(names...)
}

// Direction of a naming convention conversion.
type Direction string

// Available Direction values.
const (
	CamelToSnake Direction = "camel->snake"
	SnakeToCamel Direction = "snake->camel"
)

// Proposal is a classifier suggestion for one name.
type Proposal struct {
	Old       string
	New       string
	Direction Direction
}

// Occurrence is a candidate identifier found by a scan. It is only valid
// until the next edit of any file in the project.
type Occurrence struct {
	Module   Module
	Name     string
	Offset   int
	Line     int
	Kind     SymbolKind
	Scope    string
	Proposal Proposal
}

// Key identifies the occurrence's symbol independently of offsets.
func (o Occurrence) Key() string {
	return string(o.Module.Path) + "|" + o.Scope + "|" + string(o.Kind) + "|" + o.Name
}

// IsIdentifier reports whether name is a valid, non-keyword Python
// identifier.
func IsIdentifier(name string) bool {
	if name == "" || pythonKeywords[name] {
		return false
	}

	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}
