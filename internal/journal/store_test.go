package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Record(context.Background(), Run{
		Kind:     KindIngest,
		Source:   "vhs",
		Accepted: 4,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if id == "" {
		t.Error("Record should assign a run ID")
	}
}

func TestRecentNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := store.Record(ctx, Run{
			Kind:      KindIngest,
			Source:    "vhs",
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			Accepted:  i,
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	runs, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Accepted != 2 || runs[1].Accepted != 1 {
		t.Errorf("runs not newest first: %+v", runs)
	}
}

func TestRecordReviewCounters(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, Run{
		Kind:      KindReview,
		Published: 5,
		Rejected:  2,
		Skipped:   1,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Kind != KindReview || got.Published != 5 || got.Rejected != 2 || got.Skipped != 1 {
		t.Errorf("review run mismatch: %+v", got)
	}
}
