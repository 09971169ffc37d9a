package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"kurator/internal/fileutil"
	"kurator/internal/identity"
	"kurator/internal/logging"
)

// Rejection permanently suppresses future candidates whose normalized
// (title, source) pair matches a previously rejected event.
type Rejection struct {
	Title      string    `json:"title"`
	Source     string    `json:"source"`
	RejectedAt time.Time `json:"rejected_at"`
}

type rejectedFile struct {
	RejectedEvents []Rejection `json:"rejected_events"`
}

// RejectedList is the file-backed suppression list consulted before any
// candidate reaches the pending store.
type RejectedList struct {
	path    string
	logger  *slog.Logger
	records []Rejection
	keys    map[string]struct{}
}

// OpenRejected loads the suppression list at path. A missing file yields an
// empty list; a corrupt file is an explicit error.
func OpenRejected(path string, logger *slog.Logger) (*RejectedList, error) {
	list := &RejectedList{
		path:   path,
		logger: logging.NewComponentLogger(logger, "rejected"),
		keys:   make(map[string]struct{}),
	}

	var payload rejectedFile
	if err := fileutil.ReadJSON(path, &payload); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load rejection list %s: %w: %v", path, ErrCorrupt, err)
		}
		return list, nil
	}
	list.records = payload.RejectedEvents
	for _, rec := range list.records {
		list.keys[identity.SuppressionKey(rec.Title, rec.Source)] = struct{}{}
	}
	list.logger.Debug("loaded rejection list", logging.Int("record_count", len(list.records)))
	return list, nil
}

// Add writes a suppression record for (title, source). Missing keys are an
// ErrMissingSuppressionKey so the caller can warn and continue.
func (l *RejectedList) Add(title, source string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(source) == "" {
		return ErrMissingSuppressionKey
	}

	key := identity.SuppressionKey(title, source)
	if _, exists := l.keys[key]; exists {
		return nil
	}

	l.records = append(l.records, Rejection{
		Title:      title,
		Source:     source,
		RejectedAt: time.Now().UTC(),
	})
	l.keys[key] = struct{}{}
	return nil
}

// IsSuppressed reports whether a candidate with this title and source has
// been rejected before.
func (l *RejectedList) IsSuppressed(title, source string) bool {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(source) == "" {
		return false
	}
	_, found := l.keys[identity.SuppressionKey(title, source)]
	return found
}

// Clear removes the suppression record matching (title, source), if any.
// This is the explicit operator escape hatch; records never expire on their
// own.
func (l *RejectedList) Clear(title, source string) bool {
	key := identity.SuppressionKey(title, source)
	if _, found := l.keys[key]; !found {
		return false
	}
	delete(l.keys, key)
	for i := range l.records {
		if identity.SuppressionKey(l.records[i].Title, l.records[i].Source) == key {
			l.records = append(l.records[:i], l.records[i+1:]...)
			break
		}
	}
	return true
}

// All returns the suppression records in insertion order.
func (l *RejectedList) All() []Rejection {
	return l.records
}

// Len returns the number of suppression records.
func (l *RejectedList) Len() int {
	return len(l.records)
}

// Save persists the list atomically.
func (l *RejectedList) Save() error {
	payload := rejectedFile{RejectedEvents: l.records}
	if payload.RejectedEvents == nil {
		payload.RejectedEvents = []Rejection{}
	}
	return fileutil.WriteJSONAtomic(l.path, payload)
}
