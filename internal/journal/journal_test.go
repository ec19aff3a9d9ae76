package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.sqlite"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := j.Init(ctx); err != nil {
		t.Fatalf("init journal: %v", err)
	}
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	entries := []Entry{
		{RequestID: "r1", Path: "/readme.md", Decision: "markdown", Status: 200, Duration: 3 * time.Millisecond},
		{RequestID: "r2", Path: "/main.go", Decision: "text", Status: 200, Duration: time.Millisecond},
		{RequestID: "r3", Path: "/missing", Decision: "raw", Status: 404},
	}
	for _, e := range entries {
		if err := j.Record(ctx, e); err != nil {
			t.Fatalf("record %s: %v", e.RequestID, err)
		}
	}

	recent, err := j.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].RequestID != "r3" || recent[1].RequestID != "r2" {
		t.Fatalf("expected newest first, got %s, %s", recent[0].RequestID, recent[1].RequestID)
	}
	if recent[0].Decision != "raw" || recent[0].Status != 404 {
		t.Fatalf("unexpected entry: %+v", recent[0])
	}
}

func TestInitIdempotent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()
	if err := j.Init(ctx); err != nil {
		t.Fatalf("second init: %v", err)
	}
	if err := j.Record(ctx, Entry{RequestID: "r1", Path: "/", Decision: "directory", Status: 200}); err != nil {
		t.Fatalf("record after reinit: %v", err)
	}
}
