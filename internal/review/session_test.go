package review

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"kurator/internal/catalog"
	"kurator/internal/entity"
	"kurator/internal/resolver"
	"kurator/internal/similarity"
	"kurator/internal/testsupport"
)

type fixture struct {
	pending   *catalog.PendingStore
	published *catalog.PublishedStore
	rejected  *catalog.RejectedList
	backupDir string
}

func newStores(t *testing.T) fixture {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	cat := testsupport.MustOpenCatalog(t, cfg)
	return fixture{
		pending:   cat.Pending,
		published: cat.Published,
		rejected:  cat.Rejected,
		backupDir: cfg.Paths.BackupDir,
	}
}

func (f fixture) stores() Stores {
	return Stores{Pending: f.pending, Published: f.published, Rejected: f.rejected}
}

func reviewEvent(n int) catalog.Event {
	return catalog.Event{
		ID:        fmt.Sprintf("evt_%016d", n),
		Title:     fmt.Sprintf("Konzert Nummer %d", n),
		Source:    "vhs",
		StartTime: time.Date(2026, 8, n, 19, 0, 0, 0, time.UTC),
		Location: &entity.Location{
			ID:   "loc_freiheitshalle",
			Name: "Freiheitshalle",
			Lat:  50.3167,
			Lon:  11.9167,
		},
	}
}

func seedPending(t *testing.T, f fixture, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		f.pending.Append(reviewEvent(i))
	}
	if err := f.pending.Save(); err != nil {
		t.Fatalf("seeding pending store: %v", err)
	}
}

func TestApprovePublishesEvent(t *testing.T) {
	f := newStores(t)
	seedPending(t, f, 1)
	session := NewSession(f.stores(), Options{BackupDir: f.backupDir})

	if err := session.Approve(0); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	if f.pending.Len() != 0 {
		t.Errorf("pending holds %d events, want 0", f.pending.Len())
	}
	if f.published.Len() != 1 {
		t.Fatalf("published holds %d events, want 1", f.published.Len())
	}
	got := f.published.Events()[0]
	if got.Status != catalog.StatusPublished {
		t.Errorf("Status = %q, want published", got.Status)
	}
	if got.PublishedAt.IsZero() {
		t.Error("PublishedAt should be stamped")
	}

	backups, err := os.ReadDir(f.backupDir)
	if err != nil {
		t.Fatalf("reading backup dir: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("backup dir holds %d files, want 1", len(backups))
	}
}

func TestApproveFailsClosedOnValidation(t *testing.T) {
	f := newStores(t)
	ev := reviewEvent(1)
	ev.Location = nil
	ev.LocationID = ""
	f.pending.Append(ev)
	session := NewSession(f.stores(), Options{BackupDir: f.backupDir})

	err := session.Approve(0)
	if !errors.Is(err, catalog.ErrValidation) {
		t.Fatalf("Approve error = %v, want ErrValidation", err)
	}

	if f.pending.Len() != 1 {
		t.Errorf("failed approve must leave the event pending")
	}
	if f.published.Len() != 0 {
		t.Errorf("failed approve must not publish")
	}
	if f.pending.At(0).Status != catalog.StatusPending {
		t.Errorf("event status changed on failed approve")
	}
	backups, _ := os.ReadDir(f.backupDir)
	if len(backups) != 0 {
		t.Errorf("failed approve must not write a backup")
	}
}

func TestApproveRecordsRegistryUsage(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cat := testsupport.MustOpenCatalog(t, cfg)
	locations, organizers := testsupport.MustOpenRegistries(t, cfg)
	loc := locations.Register("Freiheitshalle", 50.3167, 11.9167, "Kulmbacher Str. 4")
	org := organizers.Register("Kulturverein Hof", "")

	ev := reviewEvent(1)
	ev.Location = nil
	ev.LocationID = loc.ID
	ev.OrganizerID = org.ID
	cat.Pending.Append(ev)

	session := NewSession(
		Stores{Pending: cat.Pending, Published: cat.Published, Rejected: cat.Rejected},
		Options{
			Resolver:  resolver.New(locations, organizers, nil),
			BackupDir: cfg.Paths.BackupDir,
		})
	if err := session.Approve(0); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	if got, _ := locations.Get(loc.ID); got.UsageCount != 1 {
		t.Errorf("location usage count = %d, want 1", got.UsageCount)
	}
	if got, _ := organizers.Get(org.ID); got.UsageCount != 1 {
		t.Errorf("organizer usage count = %d, want 1", got.UsageCount)
	}

	published := cat.Published.Events()[0]
	if published.Location == nil || published.Location.Name != "Freiheitshalle" {
		t.Errorf("published event location not resolved: %+v", published.Location)
	}
	if published.Organizer == nil || published.Organizer.Name != "Kulturverein Hof" {
		t.Errorf("published event organizer not resolved: %+v", published.Organizer)
	}
}

func TestFailedApproveLeavesUsageUntouched(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cat := testsupport.MustOpenCatalog(t, cfg)
	locations, organizers := testsupport.MustOpenRegistries(t, cfg)
	loc := locations.Register("Freiheitshalle", 50.3167, 11.9167, "")

	ev := reviewEvent(1)
	ev.Location = nil
	ev.LocationID = loc.ID
	ev.StartTime = time.Time{}
	cat.Pending.Append(ev)

	session := NewSession(
		Stores{Pending: cat.Pending, Published: cat.Published, Rejected: cat.Rejected},
		Options{Resolver: resolver.New(locations, organizers, nil)})
	if err := session.Approve(0); !errors.Is(err, catalog.ErrValidation) {
		t.Fatalf("Approve error = %v, want ErrValidation", err)
	}

	if got, _ := locations.Get(loc.ID); got.UsageCount != 0 {
		t.Errorf("failed approve bumped usage count to %d", got.UsageCount)
	}
}

func TestRejectWritesSuppressionRecord(t *testing.T) {
	f := newStores(t)
	seedPending(t, f, 1)
	session := NewSession(f.stores(), Options{})

	if err := session.Reject(0); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if f.pending.Len() != 0 {
		t.Errorf("rejected event still pending")
	}
	if !f.rejected.IsSuppressed("Konzert Nummer 1", "vhs") {
		t.Error("suppression record missing after reject")
	}
}

func TestRejectWithoutKeysSkipsRecord(t *testing.T) {
	f := newStores(t)
	ev := reviewEvent(1)
	ev.Title = "   "
	f.pending.Append(ev)
	session := NewSession(f.stores(), Options{})

	if err := session.Reject(0); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if f.pending.Len() != 0 {
		t.Errorf("event with missing keys must still leave pending")
	}
	if f.rejected.Len() != 0 {
		t.Errorf("no suppression record should be written without keys")
	}
}

func TestEditPreservesIdentity(t *testing.T) {
	f := newStores(t)
	seedPending(t, f, 1)
	session := NewSession(f.stores(), Options{})
	originalID := f.pending.At(0).ID

	err := session.Edit(0, func(ev *catalog.Event) {
		ev.Title = "Komplett neuer Titel"
		ev.ID = "evt_should_be_ignored"
	})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	got := f.pending.At(0)
	if got.Title != "Komplett neuer Titel" {
		t.Errorf("Title = %q, edit not applied", got.Title)
	}
	if got.ID != originalID {
		t.Errorf("ID = %q, want original %q", got.ID, originalID)
	}
	if got.Status != catalog.StatusPending {
		t.Errorf("edited event must stay pending")
	}
}

func TestActionsOutOfRange(t *testing.T) {
	f := newStores(t)
	session := NewSession(f.stores(), Options{})

	if err := session.Approve(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Approve error = %v, want ErrIndexOutOfRange", err)
	}
	if err := session.Reject(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Reject error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRunSkipAndQuit(t *testing.T) {
	f := newStores(t)
	seedPending(t, f, 3)
	var out strings.Builder
	session := NewSession(f.stores(), Options{
		Input:     strings.NewReader("s\nq\n"),
		Output:    &out,
		BackupDir: f.backupDir,
	})

	report, err := session.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", report.Skipped)
	}
	if f.pending.Len() != 3 {
		t.Errorf("skip and quit must not remove events")
	}
	if session.State() != StateDone {
		t.Errorf("State = %s, want done", session.State())
	}
}

func TestRunShowsSimilarPublished(t *testing.T) {
	f := newStores(t)
	historic := reviewEvent(1)
	historic.Status = catalog.StatusPublished
	f.published.Append(historic)

	candidate := reviewEvent(2)
	candidate.Title = "Konzert Nummer 1"
	f.pending.Append(candidate)

	var out strings.Builder
	session := NewSession(f.stores(), Options{
		Matcher:    similarity.New(0),
		MaxMatches: 1,
		Input:      strings.NewReader("q\n"),
		Output:     &out,
	})
	if _, err := session.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "similar published events") {
		t.Errorf("expected similarity hint in output:\n%s", out.String())
	}
}

func TestRunExhaustedInputQuits(t *testing.T) {
	f := newStores(t)
	seedPending(t, f, 2)
	session := NewSession(f.stores(), Options{Input: strings.NewReader("")})

	if _, err := session.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if session.State() != StateDone {
		t.Errorf("session must end when input runs out")
	}
}

func TestStateTransitionTable(t *testing.T) {
	tests := []struct {
		from State
		to   State
		ok   bool
	}{
		{StateReviewing, StateBatchSelecting, true},
		{StateReviewing, StateDone, true},
		{StateBatchSelecting, StateReviewing, true},
		{StateBatchSelecting, StateDone, true},
		{StateDone, StateReviewing, false},
		{StateDone, StateBatchSelecting, false},
		{StateBatchSelecting, StateBatchSelecting, false},
	}
	for _, tt := range tests {
		if got := canTransition(tt.from, tt.to); got != tt.ok {
			t.Errorf("canTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}
