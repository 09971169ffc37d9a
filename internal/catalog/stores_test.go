package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPendingStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending_events.json")

	store, err := OpenPending(path, nil)
	if err != nil {
		t.Fatalf("OpenPending failed: %v", err)
	}
	store.Append(validEvent())
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := OpenPending(path, nil)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded length: got %d, want 1", reloaded.Len())
	}
	got := reloaded.Events()[0]
	if got.Title != "Jazz Night" || got.Status != StatusPending {
		t.Errorf("reloaded event mismatch: %+v", got)
	}
}

func TestPendingStoreAppendDefaultsStatus(t *testing.T) {
	store, err := OpenPending(filepath.Join(t.TempDir(), "p.json"), nil)
	if err != nil {
		t.Fatalf("OpenPending failed: %v", err)
	}
	ev := validEvent()
	ev.Status = ""
	store.Append(ev)
	if store.Events()[0].Status != StatusPending {
		t.Errorf("status should default to pending: %q", store.Events()[0].Status)
	}
}

func TestPendingStoreRemovePreservesOrder(t *testing.T) {
	store, err := OpenPending(filepath.Join(t.TempDir(), "p.json"), nil)
	if err != nil {
		t.Fatalf("OpenPending failed: %v", err)
	}
	for _, title := range []string{"A", "B", "C"} {
		ev := validEvent()
		ev.ID = "evt_" + title
		ev.Title = title
		store.Append(ev)
	}

	removed := store.Remove(1)
	if removed.Title != "B" {
		t.Errorf("removed wrong event: %q", removed.Title)
	}
	if store.Len() != 2 || store.Events()[0].Title != "A" || store.Events()[1].Title != "C" {
		t.Errorf("remaining order wrong: %+v", store.Events())
	}
}

func TestPendingStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending_events.json")
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	if _, err := OpenPending(path, nil); !errors.Is(err, ErrCorrupt) {
		t.Errorf("corrupt pending store error = %v, want ErrCorrupt", err)
	}
}

func TestPublishedStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	store, err := OpenPublished(path, nil)
	if err != nil {
		t.Fatalf("OpenPublished failed: %v", err)
	}
	ev := validEvent()
	ev.Status = StatusPublished
	ev.PublishedAt = time.Now().UTC()
	store.Append(ev)
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := OpenPublished(path, nil)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 1 || reloaded.Events()[0].Status != StatusPublished {
		t.Errorf("reloaded published store mismatch: %+v", reloaded.Events())
	}
}

func TestWriteBackup(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteBackup(dir, validEvent())
	if err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("backup written outside dir: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if !strings.Contains(string(data), "Jazz Night") {
		t.Errorf("backup content missing event data: %q", data)
	}
}

func TestRejectedListSuppression(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rejected_events.json")

	list, err := OpenRejected(path, nil)
	if err != nil {
		t.Fatalf("OpenRejected failed: %v", err)
	}
	if err := list.Add("Spam Party", "facebook"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := list.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := OpenRejected(path, nil)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	// Matching is by normalized title and source.
	if !reloaded.IsSuppressed("SPAM PARTY!!!", "facebook") {
		t.Error("normalized variant should be suppressed")
	}
	if reloaded.IsSuppressed("Spam Party", "telegram") {
		t.Error("different source should not be suppressed")
	}
	if reloaded.IsSuppressed("Garden Party", "facebook") {
		t.Error("different title should not be suppressed")
	}
}

func TestRejectedListMissingKeys(t *testing.T) {
	list, err := OpenRejected(filepath.Join(t.TempDir(), "r.json"), nil)
	if err != nil {
		t.Fatalf("OpenRejected failed: %v", err)
	}
	if err := list.Add("", "facebook"); !errors.Is(err, ErrMissingSuppressionKey) {
		t.Errorf("expected ErrMissingSuppressionKey, got %v", err)
	}
	if err := list.Add("Spam Party", "  "); !errors.Is(err, ErrMissingSuppressionKey) {
		t.Errorf("expected ErrMissingSuppressionKey, got %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("no records should be written: len = %d", list.Len())
	}
}

func TestRejectedListClear(t *testing.T) {
	list, err := OpenRejected(filepath.Join(t.TempDir(), "r.json"), nil)
	if err != nil {
		t.Fatalf("OpenRejected failed: %v", err)
	}
	if err := list.Add("Spam Party", "facebook"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if !list.Clear("spam party", "FACEBOOK") {
		t.Error("Clear should match normalized keys")
	}
	if list.IsSuppressed("Spam Party", "facebook") {
		t.Error("cleared record should no longer suppress")
	}
	if list.Clear("Spam Party", "facebook") {
		t.Error("second Clear should report nothing removed")
	}
}

func TestRejectedListAddIdempotent(t *testing.T) {
	list, err := OpenRejected(filepath.Join(t.TempDir(), "r.json"), nil)
	if err != nil {
		t.Fatalf("OpenRejected failed: %v", err)
	}
	if err := list.Add("Spam Party", "facebook"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := list.Add("SPAM PARTY", "Facebook"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if list.Len() != 1 {
		t.Errorf("normalized duplicates should collapse: len = %d", list.Len())
	}
}
