package resolver

import (
	"log/slog"

	"kurator/internal/catalog"
	"kurator/internal/entity"
	"kurator/internal/logging"
)

// Resolver expands registry references on events into full entity views.
type Resolver struct {
	locations  *entity.LocationRegistry
	organizers *entity.OrganizerRegistry
	logger     *slog.Logger
}

// New creates a resolver over the given registries.
func New(locations *entity.LocationRegistry, organizers *entity.OrganizerRegistry, logger *slog.Logger) *Resolver {
	return &Resolver{
		locations:  locations,
		organizers: organizers,
		logger:     logging.NewComponentLogger(logger, "resolver"),
	}
}

// ResolveEventLocation returns the resolved location view for an event, or
// (nil, false) when the event has no location data or references an unknown
// registry ID.
func (r *Resolver) ResolveEventLocation(ev *catalog.Event) (*entity.Location, bool) {
	switch tier := LocationTier(ev); tier {
	case TierEmbedded:
		loc := *ev.Location
		return &loc, true
	case TierOverride:
		canonical, ok := r.locations.Get(ev.LocationID)
		if !ok {
			return nil, false
		}
		merged := canonical.Merged(ev.LocationOverride)
		return &merged, true
	case TierReference:
		canonical, ok := r.locations.Get(ev.LocationID)
		if !ok {
			return nil, false
		}
		return &canonical, true
	case TierNone:
		return nil, false
	default:
		return nil, false
	}
}

// ResolveEventOrganizer returns the resolved organizer view for an event, or
// (nil, false) when absent or unknown.
func (r *Resolver) ResolveEventOrganizer(ev *catalog.Event) (*entity.Organizer, bool) {
	switch tier := OrganizerTier(ev); tier {
	case TierEmbedded:
		org := *ev.Organizer
		return &org, true
	case TierOverride:
		canonical, ok := r.organizers.Get(ev.OrganizerID)
		if !ok {
			return nil, false
		}
		merged := canonical.Merged(ev.OrganizerOverride)
		return &merged, true
	case TierReference:
		canonical, ok := r.organizers.Get(ev.OrganizerID)
		if !ok {
			return nil, false
		}
		return &canonical, true
	case TierNone:
		return nil, false
	default:
		return nil, false
	}
}

// ResolveEvents expands references for a whole batch in place, preserving
// order. Events with unknown references are kept with the field left
// unresolved; the gap surfaces only in coverage statistics.
func (r *Resolver) ResolveEvents(events []catalog.Event) []catalog.Event {
	for i := range events {
		ev := &events[i]

		if LocationTier(ev) != TierEmbedded {
			if loc, ok := r.ResolveEventLocation(ev); ok {
				r.locations.RecordUsage(ev.LocationID)
				ev.Location = loc
			} else if ev.LocationID != "" {
				r.logger.Debug("unresolved location reference",
					logging.String("event_id", ev.ID),
					logging.String("location_id", ev.LocationID))
			}
		}

		if OrganizerTier(ev) != TierEmbedded {
			if org, ok := r.ResolveEventOrganizer(ev); ok {
				r.organizers.RecordUsage(ev.OrganizerID)
				ev.Organizer = org
			} else if ev.OrganizerID != "" {
				r.logger.Debug("unresolved organizer reference",
					logging.String("event_id", ev.ID),
					logging.String("organizer_id", ev.OrganizerID))
			}
		}
	}
	return events
}
