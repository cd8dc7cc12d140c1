package domain

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"camelsnake.dev/pkg/camelsnake/internal/adapter"
	cerrors "camelsnake.dev/pkg/camelsnake/internal/errors"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

// ErrAborted is returned when a session stops before its module is done,
// either on a Stop decision or because the context was cancelled.
var ErrAborted = errors.New("session aborted")

// SessionState is the state of a decision session.
type SessionState int

// Available SessionState values.
const (
	StateScanning SessionState = iota
	StateAwaitingDecision
	StateApplying
	StateDone
	StateAborted
)

func (s SessionState) String() string {
	switch s {
	case StateScanning:
		return "SCANNING"
	case StateAwaitingDecision:
		return "AWAITING_DECISION"
	case StateApplying:
		return "APPLYING"
	case StateDone:
		return "DONE"
	case StateAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// DecisionObserver is told about every recorded ledger entry.
type DecisionObserver interface {
	DisplayDecision(ctx context.Context, query m.Query, entry m.LedgerEntry)
}

// SessionResult summarises one module's session.
type SessionResult struct {
	Module   m.Module
	State    SessionState
	Queried  int
	Warnings []m.Warning
}

// Session reviews the candidates of one module at a time. Every queried
// occurrence ends up in the ledger exactly once.
type Session struct {
	Scanner
	adapter.Resolver
	Quarantine
	DecisionSource

	ledger   *Ledger
	observer DecisionObserver
	project  m.Project
	docs     bool
}

// NewSession creates a session over project. observer may be nil.
func NewSession(
	project m.Project,
	scanner Scanner,
	resolver adapter.Resolver,
	quarantine Quarantine,
	source DecisionSource,
	ledger *Ledger,
	observer DecisionObserver,
	docs bool,
) *Session {
	return &Session{
		Scanner:        scanner,
		Resolver:       resolver,
		Quarantine:     quarantine,
		DecisionSource: source,
		ledger:         ledger,
		observer:       observer,
		project:        project,
		docs:           docs,
	}
}

// sessionRun is the mutable state of one Run call.
type sessionRun struct {
	*Session

	module m.Module
	result SessionResult
	skip   SkipList
	next   func() (m.Occurrence, bool)
	stop   func()

	occ      m.Occurrence
	target   string
	accepted bool
	docs     bool
	query    m.Query
	plan     *m.ChangeSet
}

// Run drives the module to DONE or ABORTED. ErrAborted is returned with the
// result in the latter case; bookkeeping is complete either way.
//
//nolint:cyclop // The switch is the state machine.
func (s *Session) Run(ctx context.Context, module m.Module) (SessionResult, error) {
	r := &sessionRun{
		Session: s,
		module:  module,
		result:  SessionResult{Module: module},
		skip:    SkipList{},
	}
	defer r.release()

	state := StateScanning

	for {
		var err error

		switch state {
		case StateScanning:
			state, err = r.scan(ctx)
		case StateAwaitingDecision:
			state, err = r.decide(ctx)
		case StateApplying:
			state, err = r.apply(ctx)
		case StateDone, StateAborted:
			r.result.State = state
			slog.Debug("Session finished", "module", module.ShortPath, "state", state, "queried", r.result.Queried)

			if state == StateAborted {
				return r.result, ErrAborted
			}

			return r.result, nil
		}

		if err != nil {
			r.result.State = state

			return r.result, err
		}
	}
}

func (r *sessionRun) release() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

// scan starts a fresh scan; every earlier occurrence is invalid by now.
func (r *sessionRun) scan(ctx context.Context) (SessionState, error) {
	if ctx.Err() != nil {
		return StateAborted, nil
	}

	r.release()

	seq, err := r.Scan(ctx, r.module, r.skip)
	if err != nil {
		if ctx.Err() != nil {
			return StateAborted, nil
		}

		slog.Error("Failed to scan module", "module", r.module.Path, "error", err)

		return StateScanning, fmt.Errorf("failed to scan %s: %w", r.module.ShortPath, err)
	}

	r.next, r.stop = iter.Pull(seq)

	return r.advance(), nil
}

// advance pulls the next occurrence of the current scan. Only valid while
// nothing was edited since the scan started.
func (r *sessionRun) advance() SessionState {
	occ, ok := r.next()
	if !ok {
		return StateDone
	}

	r.occ = occ
	r.target = occ.Proposal.New
	r.docs = r.Session.docs

	return StateAwaitingDecision
}

//nolint:cyclop // One branch per decision kind.
func (r *sessionRun) decide(ctx context.Context) (SessionState, error) {
	// Set once the occurrence was shown; from then on it must reach the ledger.
	queried := false

	for {
		if ctx.Err() != nil {
			return r.abort(ctx, queried), nil
		}

		cs, err := r.PlanRename(ctx, r.project, r.occ, r.target, m.RenameOptions{Docs: r.docs})
		if err != nil {
			if ctx.Err() != nil {
				return r.abort(ctx, queried), nil
			}

			if !cerrors.IsResolve(err) {
				return StateAwaitingDecision, err
			}

			r.resolverSkip(ctx, err)

			return r.advance(), nil
		}

		r.plan = cs

		shown := r.occ
		shown.Proposal.New = r.target

		r.query = m.Query{
			Occurrence: shown,
			Affected:   cs.Affected(),
			Warnings:   r.ledger.Check(r.module.Path, cs.Affected(), r.occ.Name, r.target),
			Diff:       cs.Diff,
			Docs:       r.docs,
		}

		queried = true

		decision, err := r.Query(ctx, r.query)
		if err != nil {
			r.record(ctx, false)

			if ctx.Err() != nil {
				return StateAborted, nil
			}

			slog.Error("Failed to get decision", "module", r.module.Path, "name", r.occ.Name, "error", err)

			return StateAwaitingDecision, fmt.Errorf("failed to get decision for %s: %w", r.occ.Name, err)
		}

		switch decision.Kind {
		case m.DecisionAccept:
			r.accepted = true
			return StateApplying, nil
		case m.DecisionReject:
			r.accepted = false
			return StateApplying, nil
		case m.DecisionToggleDocs:
			r.docs = !r.docs
		case m.DecisionAcceptCustom:
			switch {
			case decision.Name == r.occ.Name:
				r.accepted = false
				return StateApplying, nil
			case !m.IsIdentifier(decision.Name):
				slog.Warn("Ignoring invalid custom name", "name", decision.Name)
			default:
				r.target = decision.Name
			}
		case m.DecisionStop:
			r.record(ctx, false)
			return StateAborted, nil
		default:
			return StateAwaitingDecision, fmt.Errorf("unknown decision %q", decision.Kind)
		}
	}
}

// abort ends the decision loop. An occurrence that was already shown is
// recorded as rejected.
func (r *sessionRun) abort(ctx context.Context, queried bool) SessionState {
	if queried {
		r.record(ctx, false)
	}

	return StateAborted
}

// apply records the decision, then marks the occurrence so it is never
// offered again in this pass. Once recorded, the edit is carried out even if
// ctx is cancelled meanwhile so the ledger never holds an unapplied rename.
func (r *sessionRun) apply(ctx context.Context) (SessionState, error) {
	r.record(ctx, r.accepted)

	name, opts := r.occ.Name, m.RenameOptions{}
	if r.accepted {
		name, opts.Docs = r.target, r.docs
	}

	marked := r.Mark(name)
	actx := context.WithoutCancel(ctx)

	cs, err := r.PlanRename(actx, r.project, r.occ, marked, opts)
	if err == nil {
		err = r.Resolver.Apply(actx, cs)
	}

	if err != nil {
		if !cerrors.IsResolve(err) {
			slog.Error("Failed to apply rename", "module", r.module.Path, "name", r.occ.Name, "error", err)
			return StateApplying, fmt.Errorf("failed to apply rename of %s: %w", r.occ.Name, err)
		}

		r.skip[r.occ.Key()] = true
		r.warn(m.Warning{
			Kind:   m.WarnResolveSkipped,
			Module: r.module.Path,
			Old:    r.occ.Name,
			New:    r.target,
			Detail: err.Error(),
		})
	}

	if ctx.Err() != nil {
		return StateAborted, nil
	}

	return StateScanning, nil
}

func (r *sessionRun) record(ctx context.Context, accepted bool) {
	entry := m.LedgerEntry{
		Module:   r.module.Path,
		Old:      r.occ.Name,
		New:      r.target,
		Kind:     r.occ.Kind,
		Accepted: accepted,
		Origin:   r.Origin(),
		Affected: r.query.Affected,
	}

	r.result.Queried++

	warnings := r.ledger.Record(entry)
	if !accepted {
		// Rejected renames are not checked again; keep what the query showed.
		warnings = r.query.Warnings
	}

	for _, w := range warnings {
		r.warn(w)
	}

	if r.observer != nil {
		r.observer.DisplayDecision(ctx, r.query, entry)
	}
}

// resolverSkip records an occurrence the resolver could not plan. Nothing
// was edited, so the current scan stays valid.
func (r *sessionRun) resolverSkip(ctx context.Context, err error) {
	slog.Warn("Resolver skipped occurrence", "module", r.module.Path, "name", r.occ.Name, "error", err)

	r.skip[r.occ.Key()] = true
	r.query = m.Query{Occurrence: r.occ}

	r.warn(m.Warning{
		Kind:   m.WarnResolveSkipped,
		Module: r.module.Path,
		Old:    r.occ.Name,
		New:    r.target,
		Detail: err.Error(),
	})

	entry := m.LedgerEntry{
		Module: r.module.Path,
		Old:    r.occ.Name,
		New:    r.target,
		Kind:   r.occ.Kind,
		Origin: m.OriginResolver,
	}
	r.ledger.Record(entry)

	if r.observer != nil {
		r.observer.DisplayDecision(ctx, r.query, entry)
	}
}

func (r *sessionRun) warn(w m.Warning) {
	r.result.Warnings = append(r.result.Warnings, w)
}
