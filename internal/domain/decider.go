package domain

import (
	"context"
	"fmt"

	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// DecisionSource answers one query per occurrence.
type DecisionSource interface {
	Query(ctx context.Context, query m.Query) (m.Decision, error)
	// Origin is recorded on the ledger entries this source decides.
	Origin() m.Origin
}

// NewDecisionSource returns the decision source of mode. Interactive mode
// delegates to ask.
func NewDecisionSource(mode m.Mode, ask func(ctx context.Context, query m.Query) (m.Decision, error)) (DecisionSource, error) {
	switch mode {
	case m.ModeInteractive, "":
		if ask == nil {
			return nil, fmt.Errorf("interactive mode needs a prompt")
		}

		return interactiveSource(ask), nil
	case m.ModeAcceptAll:
		return acceptAllSource{}, nil
	case m.ModeDefaultPolicy:
		return defaultPolicySource{}, nil
	default:
		return nil, fmt.Errorf("unknown decision mode %q", mode)
	}
}

type interactiveSource func(ctx context.Context, query m.Query) (m.Decision, error)

func (s interactiveSource) Query(ctx context.Context, query m.Query) (m.Decision, error) {
	return s(ctx, query)
}

func (s interactiveSource) Origin() m.Origin {
	return m.OriginUser
}

type acceptAllSource struct{}

func (acceptAllSource) Query(ctx context.Context, _ m.Query) (m.Decision, error) {
	if err := ctx.Err(); err != nil {
		return m.Decision{}, err
	}

	return m.Decision{Kind: m.DecisionAccept}, nil
}

func (acceptAllSource) Origin() m.Origin {
	return m.OriginPolicy
}

// defaultPolicySource accepts exactly the renames that raise no collision
// warning.
type defaultPolicySource struct{}

func (defaultPolicySource) Query(ctx context.Context, query m.Query) (m.Decision, error) {
	if err := ctx.Err(); err != nil {
		return m.Decision{}, err
	}

	return m.Decision{Kind: query.Suggested()}, nil
}

func (defaultPolicySource) Origin() m.Origin {
	return m.OriginPolicy
}
