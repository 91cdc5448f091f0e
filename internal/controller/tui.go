package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "tokswap.dev/pkg/tokswap/internal/model"
)

const (
	minBarWidth = 10
	maxBarWidth = 60

	// progressInterval caps how often same-state snapshots reach the event
	// loop so large documents do not flood it.
	progressInterval = 50 * time.Millisecond
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noteStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mode      StartMode
	program   *tea.Program
	done      chan struct{}
	lastState m.RunState
	lastSend  time.Time
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start implements UI. Run and scan modes launch the live progress program;
// audit mode renders once at display time instead.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := StartConfig{}
	for _, option := range options {
		option(&cfg)
	}

	t.mode = cfg.mode
	if t.mode == ModeAudit {
		return nil
	}

	model := newRunModel(t.mode)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			model.bar.Width = clampBarWidth(width - 8)
		}
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("Failed to run progress program", "error", err)
		}
	}()

	return nil
}

// Close shuts the progress program down.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		return
	}

	t.program.Quit()
}

// Wait blocks until the progress program finishes rendering.
func (t *TUI) Wait(ctx context.Context) {
	if t.done == nil {
		return
	}

	select {
	case <-t.done:
	case <-ctx.Done():
	}
}

// DisplayProgress forwards a snapshot to the progress program.
func (t *TUI) DisplayProgress(ctx context.Context, p m.Progress) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		return
	}

	now := time.Now()
	if p.State == t.lastState && now.Sub(t.lastSend) < progressInterval {
		return
	}

	t.lastState = p.State
	t.lastSend = now
	t.program.Send(progressMsg(p))
}

// DisplayRunSummary hands the final accounting to the progress program, which
// renders it and quits.
func (t *TUI) DisplayRunSummary(ctx context.Context, summary m.RunSummary, runErr error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.program == nil {
		_, err := fmt.Fprint(t.output, renderOutcome(summary, runErr, t.mode))
		return err
	}

	t.program.Send(summaryMsg{summary: summary, err: runErr})

	return nil
}

// DisplayScanSummary implements UI. Scan outcomes render through the same
// program; the mode picked at Start adjusts the wording.
func (t *TUI) DisplayScanSummary(ctx context.Context, summary m.RunSummary, scanErr error) error {
	return t.DisplayRunSummary(ctx, summary, scanErr)
}

// DisplayAuditRecords renders stored audit records straight to the output.
func (t *TUI) DisplayAuditRecords(ctx context.Context, records []m.AuditRecord, format AuditFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(t.output, "no audit records")
		return err
	}

	switch format {
	case FormatYAML:
		out, err := renderAuditYAML(records)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(t.output, out)

		return err
	case FormatTable:
		_, err := fmt.Fprintf(t.output, "\n%s", renderAuditTable(records))
		return err
	default:
		return fmt.Errorf("unknown audit format %q", format)
	}
}

// progressMsg carries a run snapshot into the Bubble Tea event loop.
type progressMsg m.Progress

// summaryMsg carries the final accounting and quits the program.
type summaryMsg struct {
	summary m.RunSummary
	err     error
}

// runModel represents the Bubble Tea model for the live progress display.
type runModel struct {
	mode     StartMode
	bar      progress.Model
	current  m.Progress
	outcome  *summaryMsg
	quitting bool
}

func newRunModel(mode StartMode) runModel {
	return runModel{
		mode: mode,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth)),
	}
}

func (rm runModel) Init() tea.Cmd {
	return nil
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.bar.Width = clampBarWidth(msg.Width - 8)

		return rm, nil

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)

	case progressMsg:
		rm.current = m.Progress(msg)

		return rm, nil

	case summaryMsg:
		rm.outcome = &msg
		rm.current = m.Progress{
			State:       msg.summary.State,
			LinesRead:   msg.summary.LinesRead,
			BytesRead:   msg.summary.BytesRead,
			TotalBytes:  msg.summary.TotalBytes,
			Occurrences: msg.summary.TotalOccurrences,
		}
		rm.quitting = true

		return rm, tea.Quit
	}

	return rm, nil
}

//nolint:exhaustive // Only quit keys matter for a progress display
func (rm runModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		rm.quitting = true
		return rm, tea.Quit
	default:
	}

	if msg.String() == "q" {
		rm.quitting = true
		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tokswap") + " " + noteStyle.Render(rm.modeLabel()) + "\n\n")
	b.WriteString("  " + rm.bar.ViewAs(rm.percent()) + "\n")
	fmt.Fprintf(&b, "  %s | %d line(s) | %d occurrence(s)\n", rm.current.State, rm.current.LinesRead, rm.current.Occurrences)

	if rm.outcome != nil {
		b.WriteString("\n" + renderOutcome(rm.outcome.summary, rm.outcome.err, rm.mode))
	} else {
		b.WriteString("\n" + noteStyle.Render("  q: hide display") + "\n")
	}

	return b.String()
}

func (rm runModel) modeLabel() string {
	if rm.mode == ModeScan {
		return "scan (dry run)"
	}

	return "replace"
}

func (rm runModel) percent() float64 {
	if rm.current.TotalBytes <= 0 {
		switch rm.current.State {
		case m.StateFinalizing, m.StateCommitting, m.StateLogging, m.StateDone:
			return 1
		default:
			return 0
		}
	}

	p := float64(rm.current.BytesRead) / float64(rm.current.TotalBytes)
	if p > 1 {
		p = 1
	}

	return p
}

func renderOutcome(summary m.RunSummary, runErr error, mode StartMode) string {
	if runErr != nil {
		verb := "run"
		if mode == ModeScan {
			verb = "scan"
		}

		return failureStyle.Render(fmt.Sprintf("  ✗ %s failed (%s): %v", verb, m.KindOf(runErr), runErr)) + "\n"
	}

	var b strings.Builder

	if mode == ModeScan {
		line := fmt.Sprintf("✓ found %d occurrence(s) across %d line(s), dry run", summary.TotalOccurrences, len(summary.MatchedLines))
		fmt.Fprintf(&b, "  %s\n", successStyle.Render(line))
	} else {
		line := fmt.Sprintf("✓ committed %d occurrence(s) across %d line(s)", summary.TotalOccurrences, len(summary.MatchedLines))
		fmt.Fprintf(&b, "  %s\n", successStyle.Render(line))
		fmt.Fprintf(&b, "  %s\n", noteStyle.Render("audit: "+string(summary.Config.AuditLogPath())))
	}

	if len(summary.MatchedLines) > 0 {
		fmt.Fprintf(&b, "  %s\n", noteStyle.Render("lines: "+formatLineNumbers(summary.MatchedLines)))
	}

	if summary.AuditWriteErr != nil {
		fmt.Fprintf(&b, "  %s\n", failureStyle.Render(fmt.Sprintf("audit log not updated: %v", summary.AuditWriteErr)))
	}

	return b.String()
}

func clampBarWidth(width int) int {
	if width < minBarWidth {
		return minBarWidth
	}

	if width > maxBarWidth {
		return maxBarWidth
	}

	return width
}
