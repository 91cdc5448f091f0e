package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tokswap.dev/pkg/tokswap/internal/adapter"
	m "tokswap.dev/pkg/tokswap/internal/model"
)

// The documents under examples/ cover the shapes a run has to handle: matches
// spread across lines, adjacent matches, multibyte text, empty documents, and
// sources without a final terminator.
func TestTransformIntegration(t *testing.T) {
	tests := []struct {
		name        string
		fixture     string
		wantContent string
		wantLines   int
		wantOcc     int
		wantMatched []int
	}{
		{
			name:        "matches spread across lines",
			fixture:     "basic",
			wantContent: "build HelloWorld binaries before release\nship the release notes\nHelloWorld is off by default, enable HelloWorld locally\n",
			wantLines:   3,
			wantOcc:     3,
			wantMatched: []int{1, 3},
		},
		{
			name:        "adjacent matches rewrite left to right",
			fixture:     "adjacent",
			wantContent: "HelloWorldHelloWorldHelloWorld\nplain line\n",
			wantLines:   2,
			wantOcc:     3,
			wantMatched: []int{1},
		},
		{
			name:        "empty document commits empty",
			fixture:     "empty",
			wantContent: "",
			wantLines:   0,
			wantOcc:     0,
			wantMatched: nil,
		},
		{
			name:        "no matches leaves content identical",
			fixture:     "nomatch",
			wantContent: "nothing to see here\nmove along\n",
			wantLines:   2,
			wantOcc:     0,
			wantMatched: nil,
		},
		{
			name:        "missing final terminator is normalized",
			fixture:     "noterminator",
			wantContent: "first HelloWorld\nlast HelloWorld\n",
			wantLines:   2,
			wantOcc:     2,
			wantMatched: []int{1, 2},
		},
		{
			name:        "multibyte neighbours survive the rewrite",
			fixture:     "multibyte",
			wantContent: "naïve HelloWorld café\n日本語 HelloWorld テスト\n",
			wantLines:   2,
			wantOcc:     2,
			wantMatched: []int{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := copyFixture(t, tt.fixture)
			cfg := runConfig(source)

			summary, err := newTestOrchestrator().Transform(context.Background(), cfg, nil)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}

			if summary.State != m.StateDone {
				t.Errorf("Transform() state = %v, want %v", summary.State, m.StateDone)
			}

			if summary.LinesRead != tt.wantLines {
				t.Errorf("Transform() lines = %d, want %d", summary.LinesRead, tt.wantLines)
			}

			if summary.TotalOccurrences != tt.wantOcc {
				t.Errorf("Transform() occurrences = %d, want %d", summary.TotalOccurrences, tt.wantOcc)
			}

			if !equalInts(summary.MatchedLines, tt.wantMatched) {
				t.Errorf("Transform() matched lines = %v, want %v", summary.MatchedLines, tt.wantMatched)
			}

			if got := readDocument(t, source); got != tt.wantContent {
				t.Errorf("committed content = %q, want %q", got, tt.wantContent)
			}

			if summary.AuditWriteErr != nil {
				t.Fatalf("Transform() audit error = %v, want nil", summary.AuditWriteErr)
			}

			records, err := adapter.NewLocalAuditStore().List(context.Background(), cfg.AuditLogPath())
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}

			if len(records) != 1 || records[0].TotalOccurrences != tt.wantOcc {
				t.Errorf("audit log records = %+v, want one with %d occurrences", records, tt.wantOcc)
			}

			assertNoStagingArtifact(t, source)
		})
	}
}

func TestScanIntegrationLeavesFixtureUntouched(t *testing.T) {
	source := copyFixture(t, "basic")
	cfg := runConfig(source)
	before := readDocument(t, source)

	summary, err := newTestOrchestrator().Scan(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if summary.TotalOccurrences != 3 {
		t.Errorf("Scan() occurrences = %d, want 3", summary.TotalOccurrences)
	}

	if !equalInts(summary.MatchedLines, []int{1, 3}) {
		t.Errorf("Scan() matched lines = %v, want [1 3]", summary.MatchedLines)
	}

	if got := readDocument(t, source); got != before {
		t.Errorf("document changed by scan: %q, want %q", got, before)
	}

	if _, err := os.Stat(string(cfg.AuditLogPath())); !os.IsNotExist(err) {
		t.Errorf("Stat(%q) error = %v, want not-exist", cfg.AuditLogPath(), err)
	}

	assertNoStagingArtifact(t, source)
}

func copyFixture(t *testing.T, fixture string) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("..", "..", "examples", fixture, "document.txt"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "document.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	return path
}
