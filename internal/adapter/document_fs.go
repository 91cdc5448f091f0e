// Package adapter contains UI and infrastructure adapters for the tokswap CLI.
package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "tokswap.dev/pkg/tokswap/internal/model"
	"tokswap.dev/pkg/tokswap/pkg"
)

// DocumentFS abstracts filesystem-specific operations that the domain layer
// relies on when transforming documents. It intentionally hides direct `os`
// access so the orchestration logic can be tested without touching the disk.
type DocumentFS interface {
	// Validate checks that path names a readable regular file and returns its
	// metadata. Errors carry a NotFound or Unreadable classification.
	Validate(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Abs resolves path to its absolute form for audit records.
	Abs(path m.Path) (m.Path, error)

	// OpenLines opens the document for sequential line reads.
	OpenLines(ctx context.Context, path m.Path) (LineSource, error)

	// CreateStage prepares the staging artifact for a run. The artifact is
	// collocated with the source document unless the config names an explicit
	// staging path, so the later rename stays within one volume.
	CreateStage(cfg m.RunConfig, mode fs.FileMode) (pkg.StageFile, error)
}

// LocalDocumentFS is the concrete implementation backed by the local
// filesystem.
type LocalDocumentFS struct{}

// NewLocalDocumentFS constructs a LocalDocumentFS instance ready to be wired
// into the workflow.
func NewLocalDocumentFS() *LocalDocumentFS {
	return &LocalDocumentFS{}
}

// Validate stats the document and probes it for readability.
func (a *LocalDocumentFS) Validate(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, m.Fail(m.FailureNotFound, fmt.Errorf("source document %s does not exist: %w", path, err))
		}

		return nil, m.Fail(m.FailureUnreadable, fmt.Errorf("failed to stat source document %s: %w", path, err))
	}

	if info.IsDir() {
		return nil, m.Fail(m.FailureUnreadable, fmt.Errorf("source document %s is a directory", path))
	}

	file, err := os.Open(string(path))
	if err != nil {
		return nil, m.Fail(m.FailureUnreadable, fmt.Errorf("failed to open source document %s: %w", path, err))
	}

	if err := file.Close(); err != nil {
		return nil, m.Fail(m.FailureUnreadable, fmt.Errorf("failed to close source document %s: %w", path, err))
	}

	return info, nil
}

// Abs resolves path to its absolute form.
func (a *LocalDocumentFS) Abs(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return m.Path(abs), nil
}

// OpenLines opens the document and returns a LineSource over its content.
func (a *LocalDocumentFS) OpenLines(ctx context.Context, path m.Path) (LineSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, m.Fail(m.FailureNotFound, fmt.Errorf("source document %s does not exist: %w", path, err))
		}

		return nil, m.Fail(m.FailureUnreadable, fmt.Errorf("failed to open source document %s: %w", path, err))
	}

	return newLineReader(file), nil
}

// CreateStage creates the staging artifact next to the source document, or at
// the configured staging path when one is set.
func (a *LocalDocumentFS) CreateStage(cfg m.RunConfig, mode fs.FileMode) (pkg.StageFile, error) {
	if cfg.StagingPath != "" {
		return pkg.NewStageFileAt(string(cfg.StagingPath), mode)
	}

	dir := filepath.Dir(string(cfg.SourcePath))
	pattern := "." + filepath.Base(string(cfg.SourcePath)) + ".tokswap-*"

	return pkg.NewStageFile(dir, pattern, mode)
}
