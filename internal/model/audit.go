package model

import "time"

// AuditRecord describes one committed transformation run.
type AuditRecord struct {
	Timestamp        time.Time
	SourcePath       Path // absolute path of the transformed document
	MatchToken       string
	ReplacementToken string
	TotalOccurrences int
	MatchedLines     []int // 1-based line numbers, strictly increasing
}

// RunSummary is the final accounting of a transformation run.
type RunSummary struct {
	RunID            string
	Config           RunConfig
	State            RunState
	LinesRead        int
	BytesRead        int64
	TotalBytes       int64
	TotalOccurrences int
	MatchedLines     []int
	StartedAt        time.Time
	FinishedAt       time.Time
	AuditWriteErr    error // set when the commit succeeded but the audit append did not
}
