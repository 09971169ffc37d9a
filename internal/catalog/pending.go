package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"kurator/internal/fileutil"
	"kurator/internal/logging"
)

type pendingFile struct {
	PendingEvents []Event   `json:"pending_events"`
	LastScraped   time.Time `json:"last_scraped,omitzero"`
}

// PendingStore holds candidates awaiting review, backed by a single JSON file.
type PendingStore struct {
	path   string
	logger *slog.Logger
	events []Event
}

// OpenPending loads the pending store at path. A missing file yields an empty
// store; a corrupt file is an explicit error.
func OpenPending(path string, logger *slog.Logger) (*PendingStore, error) {
	store := &PendingStore{
		path:   path,
		logger: logging.NewComponentLogger(logger, "pending"),
	}

	var payload pendingFile
	if err := fileutil.ReadJSON(path, &payload); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load pending store %s: %w: %v", path, ErrCorrupt, err)
		}
		return store, nil
	}
	store.events = payload.PendingEvents
	store.logger.Debug("loaded pending store", logging.Int("event_count", len(store.events)))
	return store, nil
}

// Events returns the pending candidates in review order.
func (s *PendingStore) Events() []Event {
	return s.events
}

// Len returns the number of pending candidates.
func (s *PendingStore) Len() int {
	return len(s.events)
}

// At returns a pointer to the event at index i for in-place edits, or nil
// when the index is out of range.
func (s *PendingStore) At(i int) *Event {
	if i < 0 || i >= len(s.events) {
		return nil
	}
	return &s.events[i]
}

// Append adds a candidate to the end of the review queue.
func (s *PendingStore) Append(ev Event) {
	if ev.Status == "" {
		ev.Status = StatusPending
	}
	s.events = append(s.events, ev)
}

// Remove deletes and returns the event at index i, preserving the order of
// the remaining events.
func (s *PendingStore) Remove(i int) Event {
	ev := s.events[i]
	s.events = append(s.events[:i], s.events[i+1:]...)
	return ev
}

// ContainsID reports whether a candidate with the given identity is already
// queued.
func (s *PendingStore) ContainsID(id string) bool {
	for i := range s.events {
		if s.events[i].ID == id {
			return true
		}
	}
	return false
}

// Save persists the store atomically, stamping last_scraped.
func (s *PendingStore) Save() error {
	payload := pendingFile{
		PendingEvents: s.events,
		LastScraped:   time.Now().UTC(),
	}
	if payload.PendingEvents == nil {
		payload.PendingEvents = []Event{}
	}
	return fileutil.WriteJSONAtomic(s.path, payload)
}
