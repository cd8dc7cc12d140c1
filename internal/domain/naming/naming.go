// Package naming converts Python identifiers between camelCase and
// snake_case and decides which names are rename candidates.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

var (
	firstCapRe = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	allCapRe   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// CamelToSnake converts camelCase and CapWords names to snake_case. Names
// made only of capitals, digits and underscores are returned unchanged.
func CamelToSnake(name string) string {
	if isConstant(name) {
		return name
	}

	s := firstCapRe.ReplaceAllString(name, "${1}_${2}")

	return strings.ToLower(allCapRe.ReplaceAllString(s, "${1}_${2}"))
}

// SnakeToCamel converts snake_case to CapWords. A single leading underscore
// and trailing underscores are kept; names without an inner underscore are
// unchanged.
func SnakeToCamel(name string) string {
	prefix := ""
	body := strings.TrimRight(name, "_")
	suffix := name[len(body):]

	if strings.HasPrefix(body, "_") && !strings.HasPrefix(body, "__") {
		prefix = "_"
		body = body[1:]
	}

	words := strings.Split(body, "_")
	if len(words) == 1 {
		return name
	}

	var b strings.Builder

	b.WriteString(prefix)

	for _, word := range words {
		if word == "" {
			continue
		}

		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	b.WriteString(suffix)

	return b.String()
}

// Classify proposes a converted name for an identifier of the given kind.
// Classes target CapWords, everything else targets snake_case. Imports,
// keyword arguments, unresolved names, dunders and marked names are never
// candidates; isMarked may be nil.
func Classify(name string, kind m.SymbolKind, isMarked func(string) bool) (m.Proposal, bool) {
	if name == "" || isDunder(name) {
		return m.Proposal{}, false
	}

	if isMarked != nil && isMarked(name) {
		return m.Proposal{}, false
	}

	switch kind {
	case m.KindImport, m.KindKeyword, m.KindUnresolved:
		return m.Proposal{}, false
	case m.KindClass:
		if hasUpper(name) {
			return m.Proposal{}, false
		}

		converted := SnakeToCamel(name)
		if converted == name {
			return m.Proposal{}, false
		}

		return m.Proposal{Old: name, New: converted, Direction: m.SnakeToCamel}, true
	default:
		if !hasUpper(name) || !hasLower(name) {
			return m.Proposal{}, false
		}

		converted := CamelToSnake(name)
		if converted == name {
			return m.Proposal{}, false
		}

		return m.Proposal{Old: name, New: converted, Direction: m.CamelToSnake}, true
	}
}

func isConstant(name string) bool {
	for _, r := range name {
		if r != '_' && !unicode.IsUpper(r) {
			return false
		}
	}

	return true
}

func isDunder(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

func hasUpper(name string) bool {
	return strings.IndexFunc(name, unicode.IsUpper) >= 0
}

func hasLower(name string) bool {
	return strings.IndexFunc(name, unicode.IsLower) >= 0
}
