package model

// RunState identifies the phase a transformation run is in.
type RunState int

const (
	// StateIdle means the run is configured but not started.
	StateIdle RunState = iota
	// StateValidating means the source document is being checked for readability.
	StateValidating
	// StateStreaming means lines are flowing through the rewrite pipeline.
	StateStreaming
	// StateFinalizing means buffered output is being flushed to the staging artifact.
	StateFinalizing
	// StateCommitting means the staging artifact is replacing the source document.
	StateCommitting
	// StateLogging means the audit record is being appended.
	StateLogging
	// StateDone means the run finished and the rewritten document was committed.
	StateDone
	// StateFailed means the run aborted and the source document was left untouched.
	StateFailed
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateStreaming:
		return "streaming"
	case StateFinalizing:
		return "finalizing"
	case StateCommitting:
		return "committing"
	case StateLogging:
		return "logging"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RunConfig carries everything a single transformation run needs.
type RunConfig struct {
	SourcePath       Path
	StagingPath      Path // empty means a generated sibling of SourcePath
	LogPath          Path // empty means SourcePath + ".audit.log"
	MatchToken       string
	ReplacementToken string
	BufferLines      int // staged sink channel capacity, <= 0 means the adapter default
}

// AuditLogPath resolves the audit log destination for this run.
func (c RunConfig) AuditLogPath() Path {
	if c.LogPath != "" {
		return c.LogPath
	}
	return c.SourcePath + ".audit.log"
}

// Progress is a point-in-time snapshot of a running transformation.
type Progress struct {
	State       RunState
	LinesRead   int
	BytesRead   int64
	TotalBytes  int64
	Occurrences int
}

// ProgressFunc receives Progress snapshots as a run advances.
type ProgressFunc func(Progress)
