package adapter

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"tokswap.dev/pkg/tokswap/pkg"
)

// DefaultBufferLines is the staged sink's buffer capacity when the run config
// does not set one.
const DefaultBufferLines = 256

// StagedSink accepts rewritten lines one at a time and appends them to the
// staging artifact through a bounded buffer. Put blocking while the buffer is
// saturated is the backpressure signal; the producer resumes as soon as the
// drain goroutine frees a slot.
type StagedSink interface {
	// Put submits one rewritten line. It blocks while the buffer is saturated
	// and fails once the drain goroutine has reported a write error. Put must
	// not be called after Finalize or Abort.
	Put(ctx context.Context, line string) error

	// Finalize stops accepting lines, waits for the drain goroutine to empty
	// the buffer, and flushes the staging artifact to stable storage.
	Finalize(ctx context.Context) error

	// Abort discards the staging artifact. Removal errors are logged, not
	// returned; the failure that led here already explains the run's outcome.
	Abort()
}

type bufferedSink struct {
	stage  pkg.StageFile
	lines  chan string
	failed chan struct{}
	group  errgroup.Group

	mu       sync.Mutex
	writeErr error

	closeOnce sync.Once
}

// NewBufferedSink wires a bounded channel in front of stage and starts the
// drain goroutine performing the actual writes.
func NewBufferedSink(stage pkg.StageFile, bufferLines int) StagedSink {
	if bufferLines <= 0 {
		bufferLines = DefaultBufferLines
	}

	s := &bufferedSink{
		stage:  stage,
		lines:  make(chan string, bufferLines),
		failed: make(chan struct{}),
	}

	s.group.Go(s.drain)

	return s
}

// drain moves buffered lines into the staging artifact. After the first write
// error it keeps consuming so producers blocked in Put wake up instead of
// wedging on a full channel.
func (s *bufferedSink) drain() error {
	for line := range s.lines {
		if s.err() != nil {
			continue
		}

		if err := s.stage.WriteLine(line); err != nil {
			s.fail(err)
		}
	}

	return s.err()
}

func (s *bufferedSink) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr == nil {
		s.writeErr = err
		close(s.failed)
	}
}

func (s *bufferedSink) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeErr
}

// Put implements StagedSink.
func (s *bufferedSink) Put(ctx context.Context, line string) error {
	select {
	case <-s.failed:
		return s.err()
	default:
	}

	select {
	case s.lines <- line:
		return nil
	case <-s.failed:
		return s.err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Finalize implements StagedSink.
func (s *bufferedSink) Finalize(ctx context.Context) error {
	s.closeLines()

	if err := s.group.Wait(); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.stage.Finalize()
}

// Abort implements StagedSink.
func (s *bufferedSink) Abort() {
	s.closeLines()
	_ = s.group.Wait()

	if err := s.stage.Abort(); err != nil {
		slog.Warn("failed to discard staging artifact", "path", s.stage.Path(), "error", err)
	}
}

func (s *bufferedSink) closeLines() {
	s.closeOnce.Do(func() {
		close(s.lines)
	})
}
