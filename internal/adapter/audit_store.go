package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	m "tokswap.dev/pkg/tokswap/internal/model"
)

// auditTimeLayout is the ISO 8601 form audit records carry.
const auditTimeLayout = time.RFC3339

// AuditStore persists one audit record per committed transformation run.
type AuditStore interface {
	// Append writes rec at the end of the audit log at path, creating the log
	// on first use.
	Append(ctx context.Context, path m.Path, rec m.AuditRecord) error

	// List parses the audit log at path back into records, oldest first. A
	// missing log yields no records and no error.
	List(ctx context.Context, path m.Path) ([]m.AuditRecord, error)
}

// LocalAuditStore is the concrete implementation on the local filesystem.
type LocalAuditStore struct{}

// NewLocalAuditStore constructs a LocalAuditStore.
func NewLocalAuditStore() *LocalAuditStore {
	return &LocalAuditStore{}
}

// Append implements AuditStore.
func (a *LocalAuditStore) Append(ctx context.Context, path m.Path, rec m.AuditRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("failed to open audit log", "path", path, "error", err)
		return fmt.Errorf("failed to open audit log: %w", err)
	}

	if _, err := file.WriteString(RenderRecord(rec) + "\n"); err != nil {
		_ = file.Close()
		slog.Error("failed to append audit record", "path", path, "error", err)

		return fmt.Errorf("failed to append audit record: %w", err)
	}

	if err := file.Close(); err != nil {
		slog.Error("failed to close audit log", "path", path, "error", err)
		return fmt.Errorf("failed to close audit log: %w", err)
	}

	slog.Debug("appended audit record", "path", path, "source", rec.SourcePath, "occurrences", rec.TotalOccurrences)

	return nil
}

// List implements AuditStore.
func (a *LocalAuditStore) List(ctx context.Context, path m.Path) ([]m.AuditRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		slog.Error("failed to read audit log", "path", path, "error", err)

		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	var records []m.AuditRecord

	for _, block := range strings.Split(string(content), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		rec, err := parseRecord(block)
		if err != nil {
			slog.Error("failed to parse audit record", "path", path, "error", err)
			return nil, fmt.Errorf("failed to parse audit record: %w", err)
		}

		records = append(records, rec)
	}

	return records, nil
}

// RenderRecord lays out rec in the fixed four-line audit format. Tokens are
// quoted so that parsing survives arbitrary token content.
func RenderRecord(rec m.AuditRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Timestamp: %s\n", rec.Timestamp.UTC().Format(auditTimeLayout))
	fmt.Fprintf(&b, "Source file: %s\n", rec.SourcePath)
	fmt.Fprintf(&b, "Occurrences replaced (%q -> %q): %d\n", rec.MatchToken, rec.ReplacementToken, rec.TotalOccurrences)
	fmt.Fprintf(&b, "Lines containing original text (1-based): %s\n", renderMatchedLines(rec.MatchedLines))

	return b.String()
}

func renderMatchedLines(lines []int) string {
	if len(lines) == 0 {
		return "(none)"
	}

	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ", ")
}

func parseRecord(block string) (m.AuditRecord, error) {
	var rec m.AuditRecord

	lines := strings.Split(block, "\n")
	if len(lines) != 4 {
		return rec, fmt.Errorf("expected 4 lines per record, got %d", len(lines))
	}

	ts, ok := strings.CutPrefix(lines[0], "Timestamp: ")
	if !ok {
		return rec, fmt.Errorf("malformed timestamp line: %q", lines[0])
	}

	when, err := time.Parse(auditTimeLayout, ts)
	if err != nil {
		return rec, fmt.Errorf("malformed timestamp: %w", err)
	}

	rec.Timestamp = when

	source, ok := strings.CutPrefix(lines[1], "Source file: ")
	if !ok {
		return rec, fmt.Errorf("malformed source line: %q", lines[1])
	}

	rec.SourcePath = m.Path(source)

	if err := parseReplacementLine(lines[2], &rec); err != nil {
		return rec, err
	}

	if err := parseMatchedLines(lines[3], &rec); err != nil {
		return rec, err
	}

	return rec, nil
}

func parseReplacementLine(line string, rec *m.AuditRecord) error {
	rest, ok := strings.CutPrefix(line, "Occurrences replaced (")
	if !ok {
		return fmt.Errorf("malformed replacement line: %q", line)
	}

	idx := strings.LastIndex(rest, "): ")
	if idx < 0 {
		return fmt.Errorf("malformed replacement line: %q", line)
	}

	count, err := strconv.Atoi(rest[idx+len("): "):])
	if err != nil {
		return fmt.Errorf("malformed occurrence count: %w", err)
	}

	rec.TotalOccurrences = count

	// The quoting keeps this cut unambiguous: a literal `" -> "` inside a
	// token appears with escaped quotes.
	left, right, ok := strings.Cut(rest[:idx], `" -> "`)
	if !ok {
		return fmt.Errorf("malformed token pair: %q", line)
	}

	match, err := strconv.Unquote(left + `"`)
	if err != nil {
		return fmt.Errorf("malformed match token: %w", err)
	}

	replacement, err := strconv.Unquote(`"` + right)
	if err != nil {
		return fmt.Errorf("malformed replacement token: %w", err)
	}

	rec.MatchToken = match
	rec.ReplacementToken = replacement

	return nil
}

func parseMatchedLines(line string, rec *m.AuditRecord) error {
	rest, ok := strings.CutPrefix(line, "Lines containing original text (1-based): ")
	if !ok {
		return fmt.Errorf("malformed matched lines: %q", line)
	}

	if rest == "(none)" {
		return nil
	}

	for _, part := range strings.Split(rest, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("malformed line number %q: %w", part, err)
		}

		rec.MatchedLines = append(rec.MatchedLines, n)
	}

	return nil
}
