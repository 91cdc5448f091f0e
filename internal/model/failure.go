package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a transformation run failed.
type FailureKind int

const (
	// FailureNone marks an error that carries no run classification.
	FailureNone FailureKind = iota
	// FailureNotFound means the source document does not exist.
	FailureNotFound
	// FailureUnreadable means the source document exists but cannot be read.
	FailureUnreadable
	// FailureWrite means the staging artifact could not be produced.
	FailureWrite
	// FailureCommit means the staging artifact could not replace the source document.
	FailureCommit
	// FailureLog means the audit record could not be appended after a successful commit.
	FailureLog
)

func (k FailureKind) String() string {
	switch k {
	case FailureNotFound:
		return "not_found"
	case FailureUnreadable:
		return "unreadable"
	case FailureWrite:
		return "write_failure"
	case FailureCommit:
		return "commit_failure"
	case FailureLog:
		return "log_failure"
	default:
		return "none"
	}
}

// RunError couples a failure classification with its cause.
type RunError struct {
	Kind FailureKind
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// Fail wraps err with a failure classification.
func Fail(kind FailureKind, err error) error {
	return &RunError{Kind: kind, Err: err}
}

// KindOf extracts the failure classification from err, or FailureNone.
func KindOf(err error) FailureKind {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Kind
	}
	return FailureNone
}
