package adapter

import (
	"context"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// Resolver is the symbol-resolution and rename backend.
//
// PlanRename and Apply may read or modify any file of the project, not only
// the one the occurrence lives in. After Apply returns, every Analysis,
// Occurrence and ChangeSet taken earlier is invalid.
type Resolver interface {
	// Analyze returns every identifier token of src with its symbol.
	Analyze(ctx context.Context, path m.Path, src []byte) (m.Analysis, error)

	// Resolve returns the symbol whose token starts at offset, if any.
	Resolve(ctx context.Context, path m.Path, src []byte, offset int) (m.Symbol, bool, error)

	// PlanRename computes the edits renaming the symbol at occ to newName
	// across the project without touching the disk.
	PlanRename(ctx context.Context, project m.Project, occ m.Occurrence, newName string, opts m.RenameOptions) (*m.ChangeSet, error)

	// Apply writes a planned change set. It fails without writing anything
	// when a file no longer matches the content the plan was built from.
	Apply(ctx context.Context, cs *m.ChangeSet) error
}
