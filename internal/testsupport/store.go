package testsupport

import (
	"testing"
	"time"

	"kurator/internal/catalog"
	"kurator/internal/config"
	"kurator/internal/entity"
	"kurator/internal/logging"
)

// Catalog bundles the three review stores for tests.
type Catalog struct {
	Pending   *catalog.PendingStore
	Published *catalog.PublishedStore
	Rejected  *catalog.RejectedList
}

// MustOpenCatalog opens the pending, published, and rejected stores under the
// config's data directory.
func MustOpenCatalog(t testing.TB, cfg *config.Config) Catalog {
	t.Helper()

	logger := logging.NewNop()
	pending, err := catalog.OpenPending(cfg.PendingPath(), logger)
	if err != nil {
		t.Fatalf("catalog.OpenPending: %v", err)
	}
	published, err := catalog.OpenPublished(cfg.PublishedPath(), logger)
	if err != nil {
		t.Fatalf("catalog.OpenPublished: %v", err)
	}
	rejected, err := catalog.OpenRejected(cfg.RejectedPath(), logger)
	if err != nil {
		t.Fatalf("catalog.OpenRejected: %v", err)
	}
	return Catalog{Pending: pending, Published: published, Rejected: rejected}
}

// MustOpenRegistries opens the location and organizer registries under the
// config's registry directory.
func MustOpenRegistries(t testing.TB, cfg *config.Config) (*entity.LocationRegistry, *entity.OrganizerRegistry) {
	t.Helper()

	logger := logging.NewNop()
	locations, err := entity.OpenLocations(cfg.LocationsPath(), logger)
	if err != nil {
		t.Fatalf("entity.OpenLocations: %v", err)
	}
	organizers, err := entity.OpenOrganizers(cfg.OrganizersPath(), logger)
	if err != nil {
		t.Fatalf("entity.OpenOrganizers: %v", err)
	}
	return locations, organizers
}

// NewEvent creates a publishable candidate event for tests.
func NewEvent(id, title, source string) catalog.Event {
	return catalog.Event{
		ID:        id,
		Title:     title,
		Source:    source,
		StartTime: time.Date(2026, 10, 3, 19, 0, 0, 0, time.UTC),
		Location: &entity.Location{
			ID:   "loc_theater_hof",
			Name: "Theater Hof",
			Lat:  50.3219,
			Lon:  11.9180,
		},
	}
}
