// Package controller provides output adapters for presenting transformation runs.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "tokswap.dev/pkg/tokswap/internal/model"
)

// AuditFormat selects how stored audit records are rendered.
type AuditFormat string

// Available audit output formats.
const (
	FormatTable AuditFormat = "table"
	FormatYAML  AuditFormat = "yaml"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeScan
	ModeAudit
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to full transformation mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithScanMode sets the UI to dry-run scan mode.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithAuditMode sets the UI to audit browsing mode.
func WithAuditMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeAudit
	}
}

// UI defines the interface for presenting run progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayProgress(ctx context.Context, p m.Progress)
	DisplayRunSummary(ctx context.Context, summary m.RunSummary, runErr error) error
	DisplayScanSummary(ctx context.Context, summary m.RunSummary, scanErr error) error
	DisplayAuditRecords(ctx context.Context, records []m.AuditRecord, format AuditFormat) error
}

// NewUI selects the interactive TUI when the command is attached to a
// terminal, falling back to plain console output otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
