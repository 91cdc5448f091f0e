package controller

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "tokswap.dev/pkg/tokswap/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	return cmd, buf
}

func sampleRunSummary() m.RunSummary {
	started := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	return m.RunSummary{
		RunID: "run-1",
		Config: m.RunConfig{
			SourcePath:       "/tmp/notes.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
		},
		State:            m.StateDone,
		LinesRead:        3,
		BytesRead:        42,
		TotalBytes:       42,
		TotalOccurrences: 3,
		MatchedLines:     []int{1, 3},
		StartedAt:        started,
		FinishedAt:       started.Add(120 * time.Millisecond),
	}
}

func sampleAuditRecords() []m.AuditRecord {
	return []m.AuditRecord{
		{
			Timestamp:        time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
			SourcePath:       "/tmp/notes.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
			TotalOccurrences: 3,
			MatchedLines:     []int{1, 3},
		},
		{
			Timestamp:        time.Date(2026, 1, 3, 9, 0, 0, 0, time.UTC),
			SourcePath:       "/tmp/other.txt",
			MatchToken:       "beta",
			ReplacementToken: "gamma",
			TotalOccurrences: 0,
		},
	}
}

func TestSimpleUIDisplayRunSummary(t *testing.T) {
	noMatches := sampleRunSummary()
	noMatches.TotalOccurrences = 0
	noMatches.MatchedLines = nil

	auditFailed := sampleRunSummary()
	auditFailed.AuditWriteErr = m.Fail(m.FailureLog, errors.New("log is read-only"))

	tests := []struct {
		name         string
		summary      m.RunSummary
		runErr       error
		wantContains []string
	}{
		{
			name:    "renders the summary table",
			summary: sampleRunSummary(),
			wantContains: []string{
				"/tmp/notes.txt",
				`"devmode" -> "HelloWorld"`,
				"1, 3",
				"120ms",
			},
		},
		{
			name:         "renders (none) when nothing matched",
			summary:      noMatches,
			wantContains: []string{"(none)"},
		},
		{
			name:         "reports a failed run with its kind",
			summary:      m.RunSummary{State: m.StateFailed},
			runErr:       m.Fail(m.FailureNotFound, errors.New("no such file")),
			wantContains: []string{"run failed (not_found)", "no such file"},
		},
		{
			name:         "reports an audit log failure after a successful run",
			summary:      auditFailed,
			wantContains: []string{"audit log not updated", "log is read-only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newBufferedCmd()
			ui := NewSimpleUI(cmd)

			err := ui.DisplayRunSummary(context.Background(), tt.summary, tt.runErr)
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUIDisplayScanSummary(t *testing.T) {
	tests := []struct {
		name         string
		summary      m.RunSummary
		scanErr      error
		wantContains []string
	}{
		{
			name:         "marks the run as a dry run",
			summary:      sampleRunSummary(),
			wantContains: []string{"/tmp/notes.txt", "dry run, document unchanged"},
		},
		{
			name:         "reports a failed scan with its kind",
			summary:      m.RunSummary{State: m.StateFailed},
			scanErr:      m.Fail(m.FailureUnreadable, errors.New("permission denied")),
			wantContains: []string{"scan failed (unreadable)", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newBufferedCmd()
			ui := NewSimpleUI(cmd)

			err := ui.DisplayScanSummary(context.Background(), tt.summary, tt.scanErr)
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUIDisplayProgress(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	ui.DisplayProgress(ctx, m.Progress{State: m.StateValidating})
	ui.DisplayProgress(ctx, m.Progress{State: m.StateStreaming, LinesRead: 1})
	ui.DisplayProgress(ctx, m.Progress{State: m.StateStreaming, LinesRead: 2})
	ui.DisplayProgress(ctx, m.Progress{State: m.StateDone})

	assert.Equal(t, "validating...\nstreaming...\n", buf.String())
}

func TestSimpleUIDisplayAuditRecords(t *testing.T) {
	tests := []struct {
		name         string
		records      []m.AuditRecord
		format       AuditFormat
		wantContains []string
	}{
		{
			name:    "renders a table",
			records: sampleAuditRecords(),
			format:  FormatTable,
			wantContains: []string{
				"2026-01-02T15:04:05Z",
				`"devmode" -> "HelloWorld"`,
				"1, 3",
				"(none)",
			},
		},
		{
			name:    "renders yaml",
			records: sampleAuditRecords(),
			format:  FormatYAML,
			wantContains: []string{
				"- timestamp:",
				"match: devmode",
				"replacement: HelloWorld",
				"occurrences: 3",
				"- 1",
			},
		},
		{
			name:         "says when the log is empty",
			records:      nil,
			format:       FormatTable,
			wantContains: []string{"no audit records"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newBufferedCmd()
			ui := NewSimpleUI(cmd)

			err := ui.DisplayAuditRecords(context.Background(), tt.records, tt.format)
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestSimpleUIDisplayAuditRecordsUnknownFormat(t *testing.T) {
	cmd, _ := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayAuditRecords(context.Background(), sampleAuditRecords(), AuditFormat("csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown audit format")
}

func TestSimpleUILifecycle(t *testing.T) {
	cmd, _ := newBufferedCmd()
	ui := NewSimpleUI(cmd)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx))
	ui.Wait(ctx)
	ui.Close(ctx)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, ui.Start(cancelled))
}

func TestNewUI(t *testing.T) {
	cmd, _ := newBufferedCmd()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTTY(f))
}
