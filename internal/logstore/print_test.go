package logstore

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/josephmachado/data-quality-checker/internal/checkval"
	"github.com/josephmachado/data-quality-checker/internal/testutil"
)

func TestPrintAll_EmptyStore(t *testing.T) {
	s := testStore(t)

	var buf bytes.Buffer
	if err := s.PrintAll(context.Background(), &buf); err != nil {
		t.Fatalf("PrintAll() failed: %v", err)
	}
	if buf.String() != "No log entries found.\n" {
		t.Errorf("PrintAll() = %q, want %q", buf.String(), "No log entries found.\n")
	}
}

func TestPrintAll_Golden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	clock := testutil.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s := NewWithClock(path, clock)
	ctx := context.Background()

	appends := []struct {
		kind   string
		result bool
		meta   checkval.Metadata
	}{
		{"is_column_unique", true, checkval.Metadata{
			"column":          checkval.String("id"),
			"total_rows":      checkval.Int(3),
			"distinct_rows":   checkval.Int(3),
			"duplicate_count": checkval.Int(0),
		}},
		{"is_column_not_null", false, checkval.Metadata{
			"column":     checkval.String("email"),
			"null_count": checkval.Int(2),
			"total_rows": checkval.Int(10),
		}},
		{"is_column_enum", true, nil},
	}
	for _, a := range appends {
		if err := s.Append(ctx, a.kind, a.result, a.meta); err != nil {
			t.Fatalf("Append(%q) failed: %v", a.kind, err)
		}
		clock.Advance(time.Minute)
	}

	var buf bytes.Buffer
	if err := s.PrintAll(ctx, &buf); err != nil {
		t.Fatalf("PrintAll() failed: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "show_logs", buf.Bytes())
}

func TestPrintAll_RuleWidth(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, "is_column_unique", true, nil); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := s.PrintAll(ctx, &buf); err != nil {
		t.Fatalf("PrintAll() failed: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 2 {
		t.Fatalf("PrintAll() produced %d lines, want at least 2", len(lines))
	}
	if lines[1] != strings.Repeat("-", 120) {
		t.Errorf("rule line = %q, want 120 dashes", lines[1])
	}
}
