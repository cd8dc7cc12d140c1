package adapter

import (
	"fmt"
	"log/slog"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ParserPool recycles tree-sitter parser instances to avoid the per-file
// allocation overhead of sitter.NewParser() / parser.Close().
//
// Usage:
//
//	sp, err := pool.Get()
//	if err != nil { ... }
//	defer pool.Put(sp)
//	tree := sp.Parse(source, nil)
type ParserPool struct {
	lang *sitter.Language
	pool sync.Pool
}

// NewParserPool creates a pool for the given language grammar.
// The language must remain valid for the lifetime of the pool.
func NewParserPool(lang *sitter.Language) *ParserPool {
	return &ParserPool{
		lang: lang,
		pool: sync.Pool{
			New: func() any {
				return sitter.NewParser()
			},
		},
	}
}

// Get retrieves a parser from the pool, or allocates a new one if the pool is
// empty. The returned parser is configured for the pool's language; a
// grammar the linked runtime cannot load is reported here.
func (p *ParserPool) Get() (*sitter.Parser, error) {
	sp := p.pool.Get().(*sitter.Parser)

	if err := sp.SetLanguage(p.lang); err != nil {
		sp.Close()
		slog.Error("Failed to set parser language", "error", err)

		return nil, fmt.Errorf("failed to set parser language: %w", err)
	}

	return sp, nil
}

// Put returns a parser to the pool for reuse. Callers must not use sp after
// calling Put.
func (p *ParserPool) Put(sp *sitter.Parser) {
	if sp == nil {
		return
	}

	sp.Reset()
	p.pool.Put(sp)
}
