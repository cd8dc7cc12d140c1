// Package domain holds the rename safety engine of camelsnake: discovery,
// scanning, decision sessions, the mapping ledger, the quarantine and the
// post-pass verifier.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"camelsnake.dev/pkg/camelsnake/internal/adapter"
	"camelsnake.dev/pkg/camelsnake/internal/controller"
	cerrors "camelsnake.dev/pkg/camelsnake/internal/errors"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
	"camelsnake.dev/pkg/camelsnake/internal/observability"
)

// RunArgs configures a rename run.
type RunArgs struct {
	DiscoverArgs

	Mode   m.Mode
	Docs   bool
	Marker string
	// Report, when set, receives the YAML run report.
	Report m.Path
	// Backup, when set, receives a copy of the root before any edit.
	Backup m.Path
	// SweepOnAbort runs the sweep and the verifier after an abort.
	SweepOnAbort bool
	// MetricsFile, when set, receives the run counters in textfile format.
	MetricsFile m.Path
}

// ListArgs configures a dry run.
type ListArgs struct {
	DiscoverArgs

	Marker string
}

// SweepArgs configures a sweep-only recovery run.
type SweepArgs struct {
	DiscoverArgs

	Marker string
}

// Workflow is the entry point of every command.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) (m.RunResult, error)
	List(ctx context.Context, args ListArgs) error
	Sweep(ctx context.Context, args SweepArgs) ([]m.Path, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.Resolver
	adapter.ReportStore
	controller.UI
	Discovery

	metrics *observability.Metrics
}

// NewWorkflow creates a Workflow. metrics may be nil.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	resolver adapter.Resolver,
	reportStore adapter.ReportStore,
	ui controller.UI,
	discovery Discovery,
	metrics *observability.Metrics,
) Workflow {
	return &workflow{
		SourceFSAdapter: fs,
		Resolver:        resolver,
		ReportStore:     reportStore,
		UI:              ui,
		Discovery:       discovery,
		metrics:         metrics,
	}
}

// Run executes the full pass. Errors before the first edit leave the tree
// untouched; once sessions started, the sweep and the verifier always run
// unless SweepOnAbort is false and the run was aborted.
//
//nolint:cyclop,funlen // Phases run in a fixed order.
func (w *workflow) Run(ctx context.Context, args RunArgs) (m.RunResult, error) {
	result := m.RunResult{
		RunID:     uuid.NewString(),
		Mode:      args.Mode,
		Status:    m.StatusComplete,
		StartedAt: time.Now(),
	}
	log := slog.With("run", result.RunID)

	quarantine, err := w.quarantine(args.Marker)
	if err != nil {
		return result, err
	}

	project, err := w.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		log.Error("Failed to discover project", "root", args.Root, "error", err)
		return result, err
	}

	result.Root = project.Root
	result.Modules = len(project.Modules)

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		log.Error("Failed to start UI", "error", err)
		return result, fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.Close(context.WithoutCancel(ctx))

	w.DisplayRunInfo(ctx, controller.RunInfo{
		RunID:     result.RunID,
		Root:      project.Root,
		Package:   project.Package,
		Mode:      args.Mode,
		Modules:   project.Modules,
		FileCount: len(project.Files),
		Docs:      args.Docs,
	})

	if len(project.Modules) == 0 {
		result.FinishedAt = time.Now()
		w.DisplayResult(ctx, result)

		return result, nil
	}

	leftovers, err := w.leftovers(project, quarantine)
	if err != nil {
		return result, err
	}

	if len(leftovers) > 0 {
		log.Warn("Review markers left by an earlier run", "files", len(leftovers))
		result.Warnings = append(result.Warnings, leftovers...)
		w.DisplayWarnings(ctx, leftovers)

		// Only the built-in marker is swept implicitly; a custom one may
		// match text this tool never wrote.
		if args.Marker != "" && args.Marker != DefaultMarker {
			return result, cerrors.New(cerrors.CodeValidation, fmt.Sprintf(
				"%d file(s) contain the custom marker %q; check them and run camelsnake sweep --marker %s first",
				len(leftovers), args.Marker, args.Marker)).
				WithContext(cerrors.CtxPath, string(leftovers[0].Module))
		}
	}

	pre, err := w.snapshot(ctx, m.PhasePre, project, quarantine)
	if err != nil {
		log.Error("Failed to take pre snapshot", "error", err)
		return result, err
	}

	if args.Backup != "" {
		if err := w.CopyDir(project.Root, args.Backup); err != nil {
			log.Error("Failed to back up project", "root", project.Root, "backup", args.Backup, "error", err)
			return result, fmt.Errorf("failed to back up %s: %w", project.Root, err)
		}

		log.Info("Project backed up", "backup", args.Backup)
	}

	source, err := NewDecisionSource(args.Mode, w.Query)
	if err != nil {
		return result, err
	}

	ledger := NewLedger(pre)
	scanner := NewScanner(w.SourceFSAdapter, w.Resolver, quarantine)
	session := NewSession(project, scanner, w.Resolver, quarantine, source, ledger, w.UI, args.Docs)

	aborted, runErr := false, error(nil)

	for i, module := range project.Modules {
		if ctx.Err() != nil {
			aborted = true
			break
		}

		w.DisplayModule(ctx, module, i+1, len(project.Modules))

		res, err := session.Run(ctx, module)
		result.Warnings = append(result.Warnings, res.Warnings...)

		if errors.Is(err, ErrAborted) {
			log.Info("Run aborted", "module", module.ShortPath)

			aborted = true

			break
		}

		if err != nil {
			log.Error("Session failed", "module", module.ShortPath, "error", err)

			runErr = err

			break
		}
	}

	if aborted || runErr != nil {
		result.Status = m.StatusPartial
	}

	result.Entries = ledger.Entries()

	// Shutdown phases run even when the operator interrupted the run.
	sctx := context.WithoutCancel(ctx)

	if aborted && !args.SweepOnAbort {
		skipped := m.Warning{Kind: m.WarnSweepSkipped, Detail: "run camelsnake sweep before editing further"}
		result.Warnings = append(result.Warnings, skipped)
		w.DisplayWarnings(sctx, []m.Warning{skipped})
	} else {
		swept, err := quarantine.Sweep(sctx, project.Paths())
		if err != nil {
			log.Error("Failed to sweep review markers", "error", err)
			return w.finish(sctx, args, result), errors.Join(runErr, err)
		}

		result.Swept = swept
		w.DisplaySweep(sctx, swept)

		post, err := w.snapshot(sctx, m.PhasePost, project, quarantine)
		if err != nil {
			log.Error("Failed to take post snapshot", "error", err)
			return w.finish(sctx, args, result), errors.Join(runErr, err)
		}

		result.PostPass = Verify(result.Entries, pre, post)
	}

	return w.finish(sctx, args, result), runErr
}

// finish reports the result and exports it. Export failures are logged
// only; the edits are already final.
func (w *workflow) finish(ctx context.Context, args RunArgs, result m.RunResult) m.RunResult {
	result.FinishedAt = time.Now()

	w.DisplayResult(ctx, result)

	if args.Report != "" {
		if err := w.SaveReport(args.Report, result); err != nil {
			slog.Warn("Report not written", "path", args.Report, "error", err)
		}
	}

	if w.metrics != nil {
		w.metrics.ObserveRun(result)

		if args.MetricsFile != "" {
			if err := w.metrics.WriteTextfile(string(args.MetricsFile)); err != nil {
				slog.Warn("Metrics not written", "path", args.MetricsFile, "error", err)
			}
		}
	}

	slog.Info("Run finished", "run", result.RunID, "status", result.Status,
		"accepted", result.Accepted(), "rejected", result.Rejected(),
		"warnings", len(result.Warnings), "post_pass", len(result.PostPass))

	return result
}

// List shows the current candidates of every module without editing.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	quarantine, err := w.quarantine(args.Marker)
	if err != nil {
		return err
	}

	project, err := w.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.Close(context.WithoutCancel(ctx))

	scanner := NewScanner(w.SourceFSAdapter, w.Resolver, quarantine)

	for _, module := range project.Modules {
		seq, err := scanner.Scan(ctx, module, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if !cerrors.IsResolve(err) {
				return err
			}

			w.DisplayWarnings(ctx, []m.Warning{{
				Kind:   m.WarnResolveSkipped,
				Module: module.Path,
				Detail: err.Error(),
			}})

			continue
		}

		var occurrences []m.Occurrence
		for occ := range seq {
			occurrences = append(occurrences, occ)
		}

		w.DisplayCandidates(ctx, module, occurrences)
	}

	return nil
}

// Sweep removes review markers left behind by an interrupted run.
func (w *workflow) Sweep(ctx context.Context, args SweepArgs) ([]m.Path, error) {
	quarantine, err := w.quarantine(args.Marker)
	if err != nil {
		return nil, err
	}

	project, err := w.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		return nil, err
	}

	if err := w.Start(ctx, controller.WithSweepMode()); err != nil {
		return nil, fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.Close(context.WithoutCancel(ctx))

	swept, err := quarantine.Sweep(ctx, project.Paths())
	if err != nil {
		return swept, err
	}

	w.DisplaySweep(ctx, swept)

	return swept, nil
}

func (w *workflow) quarantine(marker string) (Quarantine, error) {
	if marker == "" {
		marker = DefaultMarker
	}

	if err := ValidateMarker(marker); err != nil {
		slog.Error("Invalid review marker", "marker", marker, "error", err)
		return nil, err
	}

	return NewQuarantine(w.SourceFSAdapter, marker), nil
}

// leftovers reports files still holding review markers.
func (w *workflow) leftovers(project m.Project, quarantine Quarantine) ([]m.Warning, error) {
	var warnings []m.Warning

	for _, path := range project.Paths() {
		content, err := w.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read module", "path", path, "error", err)
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if count := quarantine.Count(content); count > 0 {
			warnings = append(warnings, m.Warning{
				Kind:   m.WarnLeftoverQuarantine,
				Module: path,
				Detail: fmt.Sprintf("%d review marker(s); they are removed at the end of this run, or run camelsnake sweep", count),
			})
		}
	}

	return warnings, nil
}

// snapshot freezes the swept-form universe of every file of the project.
func (w *workflow) snapshot(ctx context.Context, phase m.Phase, project m.Project, quarantine Quarantine) (m.Snapshot, error) {
	universes := make(map[m.Path]m.Universe, len(project.Files))
	names := 0

	for _, module := range project.Files {
		content, err := w.ReadFile(module.Path)
		if err != nil {
			slog.Error("Failed to read module", "path", module.Path, "error", err)
			return m.Snapshot{}, fmt.Errorf("failed to read %s: %w", module.Path, err)
		}

		analysis, err := w.Analyze(ctx, module.Path, quarantine.Strip(content))
		if err != nil {
			if cerrors.IsCode(err, cerrors.CodeSyntax) {
				return m.Snapshot{}, fmt.Errorf("%s: %w (exclude it with --exclude)", module.ShortPath, err)
			}

			return m.Snapshot{}, err
		}

		universes[module.Path] = analysis.Names()
		names += universes[module.Path].Len()
	}

	slog.Debug("Snapshot taken", "phase", phase, "modules", len(universes), "names", names)

	return m.NewSnapshot(phase, universes), nil
}
