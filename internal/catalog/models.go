package catalog

import (
	"fmt"
	"strings"
	"time"

	"kurator/internal/entity"
)

// Status represents the review lifecycle of a candidate event.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// Terminal reports whether the status ends the review lifecycle.
func (s Status) Terminal() bool {
	return s == StatusPublished || s == StatusRejected
}

// Event is a scraped candidate moving through the curation pipeline.
//
// Location and organizer data arrives in exactly one of three shapes per
// side: a fully embedded object (Location/Organizer set), a registry
// reference (LocationID/OrganizerID set), or a reference plus a partial
// override. The resolver package expands references into the embedded view.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Location         *entity.Location         `json:"location,omitempty"`
	LocationID       string                   `json:"location_id,omitempty"`
	LocationOverride *entity.LocationOverride `json:"location_override,omitempty"`

	Organizer         *entity.Organizer         `json:"organizer,omitempty"`
	OrganizerID       string                    `json:"organizer_id,omitempty"`
	OrganizerOverride *entity.OrganizerOverride `json:"organizer_override,omitempty"`

	StartTime   time.Time `json:"start_time,omitzero"`
	EndTime     time.Time `json:"end_time,omitzero"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source"`
	Category    string    `json:"category,omitempty"`
	Status      Status    `json:"status"`
	ScrapedAt   time.Time `json:"scraped_at,omitzero"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}

// LocationName returns the display name of whichever location shape the event
// carries, or an empty string.
func (e *Event) LocationName() string {
	if e.Location != nil {
		return e.Location.Name
	}
	if e.LocationOverride != nil && e.LocationOverride.Name != "" {
		return e.LocationOverride.Name
	}
	return ""
}

// Coordinates returns the event's lat/lon when an embedded location carries
// them. Events holding only a registry reference have no coordinates until
// resolved.
func (e *Event) Coordinates() (lat, lon float64, ok bool) {
	if e.Location == nil {
		return 0, 0, false
	}
	if e.Location.Lat == 0 && e.Location.Lon == 0 {
		return 0, 0, false
	}
	return e.Location.Lat, e.Location.Lon, true
}

// Validate checks the canonical event schema required for publishing.
// Approval fails closed on the first violation.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrValidation)
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrValidation)
	}
	if strings.TrimSpace(e.Source) == "" {
		return fmt.Errorf("%w: missing source", ErrValidation)
	}
	if e.StartTime.IsZero() {
		return fmt.Errorf("%w: missing start_time", ErrValidation)
	}
	if !e.EndTime.IsZero() && e.EndTime.Before(e.StartTime) {
		return fmt.Errorf("%w: end_time before start_time", ErrValidation)
	}
	if e.Location == nil && strings.TrimSpace(e.LocationID) == "" {
		return fmt.Errorf("%w: missing location", ErrValidation)
	}
	if e.Location != nil {
		if strings.TrimSpace(e.Location.Name) == "" {
			return fmt.Errorf("%w: location missing name", ErrValidation)
		}
		if e.Location.Lat < -90 || e.Location.Lat > 90 {
			return fmt.Errorf("%w: latitude %v out of range", ErrValidation, e.Location.Lat)
		}
		if e.Location.Lon < -180 || e.Location.Lon > 180 {
			return fmt.Errorf("%w: longitude %v out of range", ErrValidation, e.Location.Lon)
		}
	}
	return nil
}
