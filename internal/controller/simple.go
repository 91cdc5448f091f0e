package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "tokswap.dev/pkg/tokswap/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd       *cobra.Command
	lastState m.RunState
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, lastState: m.StateIdle}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayProgress prints one line per state change. Per-line churn stays
// silent so plain output remains readable when piped.
func (s *SimpleUI) DisplayProgress(ctx context.Context, p m.Progress) {
	if err := ctx.Err(); err != nil {
		return
	}

	if p.State == s.lastState || p.State == m.StateDone {
		return
	}

	s.lastState = p.State
	s.printf("%s...\n", p.State)
}

// DisplayRunSummary prints the outcome of a full transformation run.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, summary m.RunSummary, runErr error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if runErr != nil {
		s.printf("run failed (%s): %v\n", m.KindOf(runErr), runErr)
		return nil
	}

	s.printf("\n%s", renderSummaryTable(summary))

	if summary.AuditWriteErr != nil {
		s.printf("audit log not updated: %v\n", summary.AuditWriteErr)
	}

	return nil
}

// DisplayScanSummary prints the outcome of a dry-run scan.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, summary m.RunSummary, scanErr error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if scanErr != nil {
		s.printf("scan failed (%s): %v\n", m.KindOf(scanErr), scanErr)
		return nil
	}

	s.printf("\n%s", renderSummaryTable(summary))
	s.printf("dry run, document unchanged\n")

	return nil
}

// DisplayAuditRecords renders previously written audit records.
func (s *SimpleUI) DisplayAuditRecords(ctx context.Context, records []m.AuditRecord, format AuditFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(records) == 0 {
		s.printf("no audit records\n")
		return nil
	}

	switch format {
	case FormatYAML:
		out, err := renderAuditYAML(records)
		if err != nil {
			return err
		}

		s.printf("%s", out)
	case FormatTable:
		s.printf("\n%s", renderAuditTable(records))
	default:
		return fmt.Errorf("unknown audit format %q", format)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	table.Append([]string{"Source", string(summary.Config.SourcePath)})
	table.Append([]string{"Replaced", fmt.Sprintf("%q -> %q", summary.Config.MatchToken, summary.Config.ReplacementToken)})
	table.Append([]string{"Lines read", strconv.Itoa(summary.LinesRead)})
	table.Append([]string{"Occurrences", strconv.Itoa(summary.TotalOccurrences)})
	table.Append([]string{"Matched lines", formatLineNumbers(summary.MatchedLines)})
	table.Append([]string{"Duration", summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond).String()})

	table.Render()

	return tableBuffer.String()
}

func renderAuditTable(records []m.AuditRecord) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Timestamp", "Source", "Replaced", "Count", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, rec := range records {
		table.Append([]string{
			rec.Timestamp.UTC().Format(time.RFC3339),
			string(rec.SourcePath),
			fmt.Sprintf("%q -> %q", rec.MatchToken, rec.ReplacementToken),
			strconv.Itoa(rec.TotalOccurrences),
			formatLineNumbers(rec.MatchedLines),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Records %d", len(records)),
		"", "", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

// auditRecordYAML is the stable YAML projection of an audit record.
type auditRecordYAML struct {
	Timestamp   string `yaml:"timestamp"`
	Source      string `yaml:"source"`
	Match       string `yaml:"match"`
	Replacement string `yaml:"replacement"`
	Occurrences int    `yaml:"occurrences"`
	Lines       []int  `yaml:"lines,omitempty"`
}

func renderAuditYAML(records []m.AuditRecord) (string, error) {
	views := make([]auditRecordYAML, 0, len(records))

	for _, rec := range records {
		views = append(views, auditRecordYAML{
			Timestamp:   rec.Timestamp.UTC().Format(time.RFC3339),
			Source:      string(rec.SourcePath),
			Match:       rec.MatchToken,
			Replacement: rec.ReplacementToken,
			Occurrences: rec.TotalOccurrences,
			Lines:       rec.MatchedLines,
		})
	}

	out, err := yaml.Marshal(views)
	if err != nil {
		return "", fmt.Errorf("failed to encode audit records: %w", err)
	}

	return string(out), nil
}

func formatLineNumbers(lines []int) string {
	if len(lines) == 0 {
		return "(none)"
	}

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, strconv.Itoa(line))
	}

	return strings.Join(parts, ", ")
}
