package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"kurator/internal/fileutil"
	"kurator/internal/logging"
	"kurator/internal/textutil"
)

type publishedFile struct {
	Events      []Event   `json:"events"`
	LastUpdated time.Time `json:"last_updated,omitzero"`
}

// PublishedStore holds the curated catalogue of approved events. It doubles
// as the historical corpus for near-duplicate detection.
type PublishedStore struct {
	path   string
	logger *slog.Logger
	events []Event
}

// OpenPublished loads the published store at path. A missing file yields an
// empty store; a corrupt file is an explicit error.
func OpenPublished(path string, logger *slog.Logger) (*PublishedStore, error) {
	store := &PublishedStore{
		path:   path,
		logger: logging.NewComponentLogger(logger, "published"),
	}

	var payload publishedFile
	if err := fileutil.ReadJSON(path, &payload); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load published store %s: %w: %v", path, ErrCorrupt, err)
		}
		return store, nil
	}
	store.events = payload.Events
	store.logger.Debug("loaded published store", logging.Int("event_count", len(store.events)))
	return store, nil
}

// Events returns the published events in publication order.
func (s *PublishedStore) Events() []Event {
	return s.events
}

// Len returns the number of published events.
func (s *PublishedStore) Len() int {
	return len(s.events)
}

// Append adds an approved event to the catalogue.
func (s *PublishedStore) Append(ev Event) {
	s.events = append(s.events, ev)
}

// Save persists the store atomically, stamping last_updated.
func (s *PublishedStore) Save() error {
	payload := publishedFile{
		Events:      s.events,
		LastUpdated: time.Now().UTC(),
	}
	if payload.Events == nil {
		payload.Events = []Event{}
	}
	return fileutil.WriteJSONAtomic(s.path, payload)
}

// WriteBackup writes a standalone copy of a published event into backupDir.
// The copy is advisory recovery data, written before the store update so an
// interrupted publish can be replayed by hand.
func WriteBackup(backupDir string, ev Event) (string, error) {
	name := fmt.Sprintf("%s_%s.json", textutil.SanitizeToken(ev.ID), time.Now().UTC().Format("20060102T150405"))
	path := filepath.Join(backupDir, name)
	if err := fileutil.WriteJSONAtomic(path, ev); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}
