package domain

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"tokswap.dev/pkg/tokswap/internal/adapter"
	m "tokswap.dev/pkg/tokswap/internal/model"
	"tokswap.dev/pkg/tokswap/pkg"
)

// Orchestrator drives a transformation run through its states, from source
// validation to the final audit append. A run either commits the fully
// rewritten document over the source path or leaves the original untouched.
type Orchestrator interface {
	// Transform rewrites every occurrence of the configured match token and
	// atomically commits the result back to the source document.
	Transform(ctx context.Context, cfg m.RunConfig, progress m.ProgressFunc) (m.RunSummary, error)

	// Scan streams the document and counts occurrences without creating a
	// staging artifact or mutating anything.
	Scan(ctx context.Context, cfg m.RunConfig, progress m.ProgressFunc) (m.RunSummary, error)
}

type orchestrator struct {
	fsAdapter  adapter.DocumentFS
	auditStore adapter.AuditStore
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and audit store adapters.
func NewOrchestrator(fsAdapter adapter.DocumentFS, auditStore adapter.AuditStore) Orchestrator {
	return &orchestrator{
		fsAdapter:  fsAdapter,
		auditStore: auditStore,
	}
}

func (ro *orchestrator) Transform(ctx context.Context, cfg m.RunConfig, progress m.ProgressFunc) (m.RunSummary, error) {
	summary := newRunSummary(cfg)

	info, err := ro.validate(ctx, &summary, progress)
	if err != nil {
		return ro.abort(summary, err)
	}

	src, err := ro.openSource(ctx, &summary)
	if err != nil {
		return ro.abort(summary, err)
	}
	defer ro.closeSource(summary.Config.SourcePath, src)

	stage, err := ro.createStage(summary.Config, info.Mode().Perm())
	if err != nil {
		return ro.abort(summary, err)
	}

	sink := adapter.NewBufferedSink(stage, summary.Config.BufferLines)

	if err := ro.stream(ctx, &summary, src, sink, progress); err != nil {
		sink.Abort()
		return ro.abort(summary, err)
	}

	ro.advance(&summary, m.StateFinalizing, progress)

	if err := sink.Finalize(ctx); err != nil {
		sink.Abort()
		slog.Error("Failed to finalize staging artifact", "run", summary.RunID, "error", err)

		return ro.abort(summary, m.Fail(m.FailureWrite, fmt.Errorf("failed to finalize staging artifact: %w", err)))
	}

	ro.advance(&summary, m.StateCommitting, progress)

	if err := stage.Commit(string(summary.Config.SourcePath)); err != nil {
		// The finalized artifact stays on disk for manual recovery.
		slog.Error("Failed to commit staging artifact", "run", summary.RunID, "staging", stage.Path(), "error", err)

		return ro.abort(summary, m.Fail(m.FailureCommit, fmt.Errorf("failed to commit staging artifact: %w", err)))
	}

	ro.advance(&summary, m.StateLogging, progress)

	if err := ro.appendAudit(ctx, &summary); err != nil {
		// The document is already committed; the append failure is reported
		// in the summary instead of failing the run.
		summary.AuditWriteErr = m.Fail(m.FailureLog, fmt.Errorf("failed to append audit record: %w", err))

		slog.Error("Failed to append audit record", "run", summary.RunID, "path", summary.Config.AuditLogPath(), "error", err)
	}

	ro.finish(&summary, progress)

	return summary, nil
}

func (ro *orchestrator) Scan(ctx context.Context, cfg m.RunConfig, progress m.ProgressFunc) (m.RunSummary, error) {
	summary := newRunSummary(cfg)

	if _, err := ro.validate(ctx, &summary, progress); err != nil {
		return ro.abort(summary, err)
	}

	src, err := ro.openSource(ctx, &summary)
	if err != nil {
		return ro.abort(summary, err)
	}
	defer ro.closeSource(summary.Config.SourcePath, src)

	ro.advance(&summary, m.StateStreaming, progress)

	for {
		line, ok, err := src.Next(ctx)
		if err != nil {
			return ro.abort(summary, m.Fail(m.FailureUnreadable, fmt.Errorf("failed to read source line %d: %w", summary.LinesRead+1, err)))
		}

		if !ok {
			break
		}

		summary.LinesRead++

		if count := CountOccurrences(line, summary.Config.MatchToken); count > 0 {
			summary.TotalOccurrences += count
			summary.MatchedLines = append(summary.MatchedLines, summary.LinesRead)
		}

		summary.BytesRead = src.BytesRead()
		report(&summary, progress)
	}

	summary.BytesRead = src.BytesRead()
	ro.finish(&summary, progress)

	return summary, nil
}

// validate confirms the source document is a readable regular file, resolves
// its absolute path for the audit trail, and records its size for progress.
func (ro *orchestrator) validate(ctx context.Context, summary *m.RunSummary, progress m.ProgressFunc) (fs.FileInfo, error) {
	ro.advance(summary, m.StateValidating, progress)

	info, err := ro.fsAdapter.Validate(ctx, summary.Config.SourcePath)
	if err != nil {
		slog.Error("Failed to validate source document", "run", summary.RunID, "path", summary.Config.SourcePath, "error", err)
		return nil, err
	}

	abs, err := ro.fsAdapter.Abs(summary.Config.SourcePath)
	if err != nil {
		slog.Error("Failed to resolve source document path", "run", summary.RunID, "path", summary.Config.SourcePath, "error", err)
		return nil, m.Fail(m.FailureUnreadable, err)
	}

	summary.Config.SourcePath = abs
	summary.TotalBytes = info.Size()

	return info, nil
}

func (ro *orchestrator) openSource(ctx context.Context, summary *m.RunSummary) (adapter.LineSource, error) {
	src, err := ro.fsAdapter.OpenLines(ctx, summary.Config.SourcePath)
	if err != nil {
		slog.Error("Failed to open source document", "run", summary.RunID, "path", summary.Config.SourcePath, "error", err)
		return nil, err
	}

	return src, nil
}

func (ro *orchestrator) createStage(cfg m.RunConfig, mode fs.FileMode) (pkg.StageFile, error) {
	stage, err := ro.fsAdapter.CreateStage(cfg, mode)
	if err != nil {
		slog.Error("Failed to create staging artifact", "source", cfg.SourcePath, "error", err)
		return nil, m.Fail(m.FailureWrite, fmt.Errorf("failed to create staging artifact: %w", err))
	}

	return stage, nil
}

// stream pulls lines from src, rewrites them, and submits the results to the
// sink. Matched line numbers are recorded 1-based in read order, so they come
// out strictly increasing.
func (ro *orchestrator) stream(ctx context.Context, summary *m.RunSummary, src adapter.LineSource, sink adapter.StagedSink, progress m.ProgressFunc) error {
	ro.advance(summary, m.StateStreaming, progress)

	for {
		line, ok, err := src.Next(ctx)
		if err != nil {
			return m.Fail(m.FailureWrite, fmt.Errorf("failed to read source line %d: %w", summary.LinesRead+1, err))
		}

		if !ok {
			break
		}

		summary.LinesRead++

		rec := RewriteRecord(summary.LinesRead, line, summary.Config.MatchToken, summary.Config.ReplacementToken)
		if rec.Occurrences > 0 {
			summary.TotalOccurrences += rec.Occurrences
			summary.MatchedLines = append(summary.MatchedLines, rec.Number)
		}

		if err := sink.Put(ctx, rec.Rewritten); err != nil {
			return m.Fail(m.FailureWrite, fmt.Errorf("failed to stage line %d: %w", rec.Number, err))
		}

		summary.BytesRead = src.BytesRead()
		report(summary, progress)
	}

	summary.BytesRead = src.BytesRead()
	report(summary, progress)

	return nil
}

func (ro *orchestrator) appendAudit(ctx context.Context, summary *m.RunSummary) error {
	record := m.AuditRecord{
		Timestamp:        time.Now().UTC(),
		SourcePath:       summary.Config.SourcePath,
		MatchToken:       summary.Config.MatchToken,
		ReplacementToken: summary.Config.ReplacementToken,
		TotalOccurrences: summary.TotalOccurrences,
		MatchedLines:     summary.MatchedLines,
	}

	return ro.auditStore.Append(ctx, summary.Config.AuditLogPath(), record)
}

func (ro *orchestrator) advance(summary *m.RunSummary, state m.RunState, progress m.ProgressFunc) {
	slog.Debug("Run state changed", "run", summary.RunID, "from", summary.State, "to", state)
	summary.State = state
	report(summary, progress)
}

func (ro *orchestrator) finish(summary *m.RunSummary, progress m.ProgressFunc) {
	ro.advance(summary, m.StateDone, progress)
	summary.FinishedAt = time.Now().UTC()

	slog.Info("Run completed",
		"run", summary.RunID,
		"lines", summary.LinesRead,
		"occurrences", summary.TotalOccurrences,
		"auditError", summary.AuditWriteErr,
	)
}

func (ro *orchestrator) abort(summary m.RunSummary, err error) (m.RunSummary, error) {
	summary.State = m.StateFailed
	summary.FinishedAt = time.Now().UTC()

	slog.Error("Run failed", "run", summary.RunID, "kind", m.KindOf(err), "error", err)

	return summary, err
}

// closeSource releases the line source, logging close errors since by this
// point the run's outcome is already decided.
func (ro *orchestrator) closeSource(path m.Path, src adapter.LineSource) {
	if err := src.Close(); err != nil {
		slog.Error("Failed to close source document", "path", path, "error", err)
	}
}

func newRunSummary(cfg m.RunConfig) m.RunSummary {
	return m.RunSummary{
		RunID:     uuid.NewString(),
		Config:    cfg,
		State:     m.StateIdle,
		StartedAt: time.Now().UTC(),
	}
}

// report delivers a progress snapshot when the caller asked for one.
func report(summary *m.RunSummary, progress m.ProgressFunc) {
	if progress == nil {
		return
	}

	progress(m.Progress{
		State:       summary.State,
		LinesRead:   summary.LinesRead,
		BytesRead:   summary.BytesRead,
		TotalBytes:  summary.TotalBytes,
		Occurrences: summary.TotalOccurrences,
	})
}
