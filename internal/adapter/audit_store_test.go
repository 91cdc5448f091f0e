package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "tokswap.dev/pkg/tokswap/internal/model"
)

func auditGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderRecord(t *testing.T) {
	t.Run("record with matches", func(t *testing.T) {
		rec := m.AuditRecord{
			Timestamp:        time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
			SourcePath:       "/tmp/doc.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
			TotalOccurrences: 3,
			MatchedLines:     []int{1, 3},
		}

		auditGoldie(t).Assert(t, "audit_record", []byte(RenderRecord(rec)))
	})

	t.Run("record without matches", func(t *testing.T) {
		rec := m.AuditRecord{
			Timestamp:        time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
			SourcePath:       "/tmp/doc.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
		}

		auditGoldie(t).Assert(t, "audit_record_none", []byte(RenderRecord(rec)))
	})

	t.Run("non-UTC timestamps are rendered in UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		rec := m.AuditRecord{
			Timestamp:        time.Date(2026, 1, 2, 17, 4, 5, 0, loc),
			SourcePath:       "/tmp/doc.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
			TotalOccurrences: 3,
			MatchedLines:     []int{1, 3},
		}

		auditGoldie(t).Assert(t, "audit_record", []byte(RenderRecord(rec)))
	})
}

func TestLocalAuditStore_AppendAndList(t *testing.T) {
	store := NewLocalAuditStore()
	ctx := context.Background()

	t.Run("round trip preserves records in order", func(t *testing.T) {
		logPath := m.Path(filepath.Join(t.TempDir(), "doc.txt.audit.log"))

		first := m.AuditRecord{
			Timestamp:        time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
			SourcePath:       "/tmp/doc.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
			TotalOccurrences: 3,
			MatchedLines:     []int{1, 3, 12},
		}

		second := m.AuditRecord{
			Timestamp:        time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC),
			SourcePath:       "/tmp/doc.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
		}

		require.NoError(t, store.Append(ctx, logPath, first))
		require.NoError(t, store.Append(ctx, logPath, second))

		records, err := store.List(ctx, logPath)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, first, records[0])
		assert.Equal(t, second, records[1])
		assert.Nil(t, records[1].MatchedLines)
	})

	t.Run("tokens with quotes and arrows survive the round trip", func(t *testing.T) {
		logPath := m.Path(filepath.Join(t.TempDir(), "audit.log"))

		rec := m.AuditRecord{
			Timestamp:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			SourcePath:       "/tmp/doc.txt",
			MatchToken:       `say "hello" -> now`,
			ReplacementToken: "tab\there",
			TotalOccurrences: 1,
			MatchedLines:     []int{7},
		}

		require.NoError(t, store.Append(ctx, logPath, rec))

		records, err := store.List(ctx, logPath)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, rec, records[0])
	})

	t.Run("missing log lists nothing", func(t *testing.T) {
		records, err := store.List(ctx, m.Path(filepath.Join(t.TempDir(), "absent.log")))
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed log is an error", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "audit.log")
		require.NoError(t, os.WriteFile(logPath, []byte("not an audit record\n"), 0o644))

		_, err := store.List(ctx, m.Path(logPath))
		require.Error(t, err)
	})

	t.Run("append is accumulative across store instances", func(t *testing.T) {
		logPath := m.Path(filepath.Join(t.TempDir(), "audit.log"))

		rec := m.AuditRecord{
			Timestamp:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			SourcePath:       "/tmp/doc.txt",
			MatchToken:       "devmode",
			ReplacementToken: "HelloWorld",
			TotalOccurrences: 1,
			MatchedLines:     []int{2},
		}

		require.NoError(t, NewLocalAuditStore().Append(ctx, logPath, rec))
		require.NoError(t, NewLocalAuditStore().Append(ctx, logPath, rec))

		records, err := store.List(ctx, logPath)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}
