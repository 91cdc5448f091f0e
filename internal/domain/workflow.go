package domain

import (
	"context"
	"fmt"
	"log/slog"

	"tokswap.dev/pkg/tokswap/internal/adapter"
	"tokswap.dev/pkg/tokswap/internal/controller"
	m "tokswap.dev/pkg/tokswap/internal/model"
)

// RunArgs contains the arguments for a full transformation run.
type RunArgs struct {
	Config m.RunConfig
}

// ScanArgs contains the arguments for a dry-run scan.
type ScanArgs struct {
	Config m.RunConfig
}

// AuditArgs contains the arguments for rendering stored audit records.
type AuditArgs struct {
	LogPath m.Path
	Format  controller.AuditFormat
	Last    int // keep only the N most recent records, 0 keeps all
}

// Workflow ties the orchestrator and the UI together, one method per command.
type Workflow interface {
	Run(args RunArgs) error
	Scan(args ScanArgs) error
	Audit(args AuditArgs) error
}

type workflow struct {
	adapter.AuditStore
	controller.UI
	Orchestrator
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	auditStore adapter.AuditStore,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		AuditStore:   auditStore,
		UI:           ui,
		Orchestrator: orchestrator,
	}
}

// Run executes the full pipeline and reports its outcome. The run error is
// returned after the summary is displayed so the process still exits non-zero
// on a failed run.
func (w *workflow) Run(args RunArgs) error {
	ctx := context.Background()

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	summary, runErr := w.Transform(ctx, args.Config, w.progressFunc(ctx))

	if err := w.DisplayRunSummary(ctx, summary, runErr); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display run summary", "error", err)

		return fmt.Errorf("display summary: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return runErr
}

// Scan executes the dry-run pipeline and reports what a run would replace.
func (w *workflow) Scan(args ScanArgs) error {
	ctx := context.Background()

	if err := w.Start(ctx, controller.WithScanMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	summary, scanErr := w.Orchestrator.Scan(ctx, args.Config, w.progressFunc(ctx))

	if err := w.DisplayScanSummary(ctx, summary, scanErr); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display scan summary", "error", err)

		return fmt.Errorf("display summary: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return scanErr
}

// Audit reads stored audit records and renders them.
func (w *workflow) Audit(args AuditArgs) error {
	ctx := context.Background()

	if err := w.Start(ctx, controller.WithAuditMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	records, err := w.List(ctx, args.LogPath)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to read audit log", "path", args.LogPath, "error", err)

		return fmt.Errorf("read audit log: %w", err)
	}

	if err := w.DisplayAuditRecords(ctx, lastRecords(records, args.Last), args.Format); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display audit records", "error", err)

		return fmt.Errorf("display audit records: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) progressFunc(ctx context.Context) m.ProgressFunc {
	return func(p m.Progress) {
		w.DisplayProgress(ctx, p)
	}
}

// lastRecords keeps the n most recent records, newest last.
func lastRecords(records []m.AuditRecord, n int) []m.AuditRecord {
	if n <= 0 || n >= len(records) {
		return records
	}

	return records[len(records)-n:]
}
