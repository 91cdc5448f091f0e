// Package pkg is a package that provides utilities for tokswap.
package pkg

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// StageFile is a write-ahead staging file for rewritten documents. Content is
// invisible to readers of the destination until Commit renames it into place.
// It is not safe for concurrent use; callers serialize writes.
type StageFile interface {
	Lines() int
	Path() string
	WriteLine(line string) error
	Finalize() error
	Commit(dest string) error
	Abort() error
}

type stageFileImpl struct {
	path      string
	file      *os.File
	writer    *bufio.Writer
	lines     int
	finalized bool
}

// WriteLine implements StageFile. It appends line plus a terminator to the
// staging file.
func (f *stageFileImpl) WriteLine(line string) error {
	if f.file == nil {
		return fmt.Errorf("staging file %s is closed", f.path)
	}

	if _, err := f.writer.WriteString(line); err != nil {
		slog.Error("failed to write staged line", "path", f.path, "line", f.lines+1, "error", err)
		return fmt.Errorf("failed to write staged line: %w", err)
	}

	if err := f.writer.WriteByte('\n'); err != nil {
		slog.Error("failed to write line terminator", "path", f.path, "line", f.lines+1, "error", err)
		return fmt.Errorf("failed to write line terminator: %w", err)
	}

	f.lines++

	return nil
}

// Lines implements StageFile.
func (f *stageFileImpl) Lines() int {
	return f.lines
}

// Path implements StageFile.
func (f *stageFileImpl) Path() string {
	return f.path
}

// Finalize implements StageFile. It flushes buffered lines and forces them to
// stable storage so a later Commit publishes complete content.
func (f *stageFileImpl) Finalize() error {
	if f.file == nil {
		return nil
	}

	if err := f.writer.Flush(); err != nil {
		slog.Error("failed to flush staging file", "path", f.path, "error", err)
		return fmt.Errorf("failed to flush staging file: %w", err)
	}

	if err := f.file.Sync(); err != nil {
		slog.Error("failed to sync staging file", "path", f.path, "error", err)
		return fmt.Errorf("failed to sync staging file: %w", err)
	}

	if err := f.file.Close(); err != nil {
		slog.Error("failed to close staging file", "path", f.path, "error", err)
		return fmt.Errorf("failed to close staging file: %w", err)
	}

	f.file = nil
	f.finalized = true

	slog.Debug("finalized staging file", "path", f.path, "lines", f.lines)

	return nil
}

// Commit implements StageFile. The rename is the single visible step; the
// destination holds either its old content or the full staged content.
func (f *stageFileImpl) Commit(dest string) error {
	if !f.finalized {
		return fmt.Errorf("staging file %s is not finalized", f.path)
	}

	if err := os.Rename(f.path, dest); err != nil {
		slog.Error("failed to commit staging file", "path", f.path, "dest", dest, "error", err)
		return fmt.Errorf("failed to commit staging file: %w", err)
	}

	// Best effort. The rename itself already happened.
	if dir, err := os.Open(filepath.Dir(dest)); err == nil {
		_ = dir.Sync()
		_ = dir.Close()
	}

	slog.Debug("committed staging file", "path", f.path, "dest", dest, "lines", f.lines)

	return nil
}

// Abort implements StageFile. It discards the staging file without touching
// the destination.
func (f *stageFileImpl) Abort() error {
	if f.file != nil {
		if err := f.file.Close(); err != nil {
			slog.Warn("failed to close staging file on abort", "path", f.path, "error", err)
		}

		f.file = nil
	}

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove staging file", "path", f.path, "error", err)
		return fmt.Errorf("failed to remove staging file: %w", err)
	}

	slog.Debug("aborted staging file", "path", f.path)

	return nil
}

// NewStageFile creates a StageFile in dir using pattern for the temporary
// name. mode is applied up front so the committed file keeps the source's
// permissions.
func NewStageFile(dir, pattern string, mode os.FileMode) (StageFile, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		slog.Error("failed to create staging file", "dir", dir, "error", err)
		return nil, fmt.Errorf("failed to create staging file: %w", err)
	}

	if err := file.Chmod(mode); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		slog.Error("failed to chmod staging file", "path", file.Name(), "error", err)

		return nil, fmt.Errorf("failed to chmod staging file: %w", err)
	}

	slog.Debug("created staging file", "path", file.Name())

	return &stageFileImpl{
		path:   file.Name(),
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// NewStageFileAt creates a StageFile at an explicit path, truncating any
// previous staging leftover at that location.
func NewStageFileAt(path string, mode os.FileMode) (StageFile, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		slog.Error("failed to create staging file", "path", path, "error", err)
		return nil, fmt.Errorf("failed to create staging file: %w", err)
	}

	slog.Debug("created staging file", "path", path)

	return &stageFileImpl{
		path:   path,
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}
