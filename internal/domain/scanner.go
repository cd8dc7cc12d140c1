package domain

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"camelsnake.dev/pkg/camelsnake/internal/adapter"
	"camelsnake.dev/pkg/camelsnake/internal/domain/naming"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// SkipList holds occurrence keys the resolver already failed on during the
// current session.
type SkipList map[string]bool

// Scanner finds rename candidates in the current text of a module.
type Scanner interface {
	Scan(ctx context.Context, module m.Module, skip SkipList) (iter.Seq[m.Occurrence], error)
}

type scanner struct {
	adapter.SourceFSAdapter
	adapter.Resolver
	Quarantine
}

// NewScanner creates a Scanner.
func NewScanner(fs adapter.SourceFSAdapter, resolver adapter.Resolver, quarantine Quarantine) Scanner {
	return &scanner{SourceFSAdapter: fs, Resolver: resolver, Quarantine: quarantine}
}

// Scan re-reads the module and yields, offset ascending, the binding site
// of every renamable, unreviewed symbol the classifier proposes to convert.
// The sequence is only valid until the next edit of any project file.
func (s *scanner) Scan(ctx context.Context, module m.Module, skip SkipList) (iter.Seq[m.Occurrence], error) {
	src, err := s.ReadFile(module.Path)
	if err != nil {
		slog.Error("Failed to read module", "path", module.Path, "error", err)
		return nil, fmt.Errorf("failed to read %s: %w", module.Path, err)
	}

	analysis, err := s.Analyze(ctx, module.Path, src)
	if err != nil {
		return nil, err
	}

	var candidates []m.Occurrence

	for _, token := range analysis.Tokens {
		if token.Symbol.Binding != token.Offset {
			continue
		}

		sym, ok, err := s.Resolve(ctx, module.Path, src, token.Offset)
		if err != nil {
			return nil, err
		}

		if !ok || !sym.Renamable {
			continue
		}

		proposal, ok := naming.Classify(token.Name, sym.Kind, s.IsMarked)
		if !ok {
			continue
		}

		candidates = append(candidates, m.Occurrence{
			Module:   module,
			Name:     token.Name,
			Offset:   token.Offset,
			Line:     token.Line,
			Kind:     sym.Kind,
			Scope:    sym.Scope,
			Proposal: proposal,
		})
	}

	return func(yield func(m.Occurrence) bool) {
		for _, occ := range candidates {
			if skip[occ.Key()] {
				continue
			}

			if !yield(occ) {
				return
			}
		}
	}, nil
}
