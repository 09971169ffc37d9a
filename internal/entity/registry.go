package entity

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"kurator/internal/fileutil"
	"kurator/internal/logging"
)

// ErrNotFound reports a registry lookup for an unknown entity ID.
var ErrNotFound = errors.New("entity: not found")

type locationsFile struct {
	Locations map[string]Location `json:"locations"`
}

type organizersFile struct {
	Organizers map[string]Organizer `json:"organizers"`
}

// LocationRegistry is the file-backed repository of canonical locations.
// It is loaded once, mutated only through its methods, and flushed with Save.
type LocationRegistry struct {
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
	byID   map[string]Location
}

// OpenLocations loads the location registry at path. A missing file yields an
// empty registry; a corrupt file is an explicit error because the registry is
// canonical data, not a rebuildable cache.
func OpenLocations(path string, logger *slog.Logger) (*LocationRegistry, error) {
	reg := &LocationRegistry{
		path:   path,
		logger: logging.NewComponentLogger(logger, "locations"),
		byID:   make(map[string]Location),
	}

	var payload locationsFile
	if err := fileutil.ReadJSON(path, &payload); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load location registry: %w", err)
		}
		return reg, nil
	}
	if payload.Locations != nil {
		reg.byID = payload.Locations
	}
	reg.logger.Debug("loaded location registry", logging.Int("entry_count", len(reg.byID)))
	return reg, nil
}

// Get returns a copy of the location with the given ID.
func (r *LocationRegistry) Get(id string) (Location, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loc, ok := r.byID[id]
	return loc, ok
}

// Register adds a location derived from name and coordinates, reusing the
// existing record when the deterministic ID is already present.
func (r *LocationRegistry) Register(name string, lat, lon float64, address string) Location {
	id := LocationID(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[id]; ok {
		return existing
	}

	now := time.Now().UTC()
	loc := Location{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Lat:       lat,
		Lon:       lon,
		Address:   strings.TrimSpace(address),
		Aliases:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.byID[id] = loc
	r.logger.Debug("registered location", logging.String("location_id", id), logging.String("name", loc.Name))
	return loc
}

// Verify marks a location as operator-verified.
func (r *LocationRegistry) Verify(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: location %q", ErrNotFound, id)
	}
	loc.Verified = true
	loc.UpdatedAt = time.Now().UTC()
	r.byID[id] = loc
	return nil
}

// AddAlias records an alternate name for a location.
func (r *LocationRegistry) AddAlias(id, alias string) error {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return errors.New("entity: empty alias")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	loc, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: location %q", ErrNotFound, id)
	}
	for _, existing := range loc.Aliases {
		if strings.EqualFold(existing, alias) {
			return nil
		}
	}
	loc.Aliases = append(loc.Aliases, alias)
	loc.UpdatedAt = time.Now().UTC()
	r.byID[id] = loc
	return nil
}

// RecordUsage bumps the usage counter for a referenced location. Unknown IDs
// are ignored; usage tracking is advisory.
func (r *LocationRegistry) RecordUsage(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, ok := r.byID[id]
	if !ok {
		return
	}
	loc.UsageCount++
	r.byID[id] = loc
}

// Find returns locations whose name or aliases match query, sorted by ID.
func (r *LocationRegistry) Find(query string) []Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []Location
	for _, loc := range r.byID {
		if loc.MatchesName(query) {
			matches = append(matches, loc)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// All returns every location sorted by ID.
func (r *LocationRegistry) All() []Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Location, 0, len(r.byID))
	for _, loc := range r.byID {
		all = append(all, loc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Len returns the number of registered locations.
func (r *LocationRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Save flushes the registry to disk atomically.
func (r *LocationRegistry) Save() error {
	r.mu.RLock()
	payload := locationsFile{Locations: r.byID}
	err := fileutil.WriteJSONAtomic(r.path, payload)
	r.mu.RUnlock()
	return err
}

// OrganizerRegistry is the file-backed repository of canonical organizers.
type OrganizerRegistry struct {
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
	byID   map[string]Organizer
}

// OpenOrganizers loads the organizer registry at path. Missing file yields an
// empty registry; corruption is an explicit error.
func OpenOrganizers(path string, logger *slog.Logger) (*OrganizerRegistry, error) {
	reg := &OrganizerRegistry{
		path:   path,
		logger: logging.NewComponentLogger(logger, "organizers"),
		byID:   make(map[string]Organizer),
	}

	var payload organizersFile
	if err := fileutil.ReadJSON(path, &payload); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load organizer registry: %w", err)
		}
		return reg, nil
	}
	if payload.Organizers != nil {
		reg.byID = payload.Organizers
	}
	reg.logger.Debug("loaded organizer registry", logging.Int("entry_count", len(reg.byID)))
	return reg, nil
}

// Get returns a copy of the organizer with the given ID.
func (r *OrganizerRegistry) Get(id string) (Organizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	org, ok := r.byID[id]
	return org, ok
}

// Register adds an organizer by name, reusing the existing record when the
// deterministic ID is already present.
func (r *OrganizerRegistry) Register(name, email string) Organizer {
	id := OrganizerID(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[id]; ok {
		return existing
	}

	now := time.Now().UTC()
	org := Organizer{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Aliases:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.byID[id] = org
	r.logger.Debug("registered organizer", logging.String("organizer_id", id), logging.String("name", org.Name))
	return org
}

// Verify marks an organizer as operator-verified.
func (r *OrganizerRegistry) Verify(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	org, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: organizer %q", ErrNotFound, id)
	}
	org.Verified = true
	org.UpdatedAt = time.Now().UTC()
	r.byID[id] = org
	return nil
}

// RecordUsage bumps the usage counter for a referenced organizer.
func (r *OrganizerRegistry) RecordUsage(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	org, ok := r.byID[id]
	if !ok {
		return
	}
	org.UsageCount++
	r.byID[id] = org
}

// Find returns organizers whose name or aliases match query, sorted by ID.
func (r *OrganizerRegistry) Find(query string) []Organizer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []Organizer
	for _, org := range r.byID {
		if org.MatchesName(query) {
			matches = append(matches, org)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// All returns every organizer sorted by ID.
func (r *OrganizerRegistry) All() []Organizer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Organizer, 0, len(r.byID))
	for _, org := range r.byID {
		all = append(all, org)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Len returns the number of registered organizers.
func (r *OrganizerRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Save flushes the registry to disk atomically.
func (r *OrganizerRegistry) Save() error {
	r.mu.RLock()
	payload := organizersFile{Organizers: r.byID}
	err := fileutil.WriteJSONAtomic(r.path, payload)
	r.mu.RUnlock()
	return err
}
