package resolver

import "kurator/internal/catalog"

// Tier identifies which of the mutually exclusive resolution strategies an
// event side uses. Modeling tiers as an explicit variant keeps tier selection
// exhaustive; a future tier cannot silently fall through a field-presence
// conditional.
type Tier int

const (
	// TierNone means the event carries no data for this side.
	TierNone Tier = iota
	// TierReference means only a registry ID is present.
	TierReference
	// TierOverride means a registry ID plus a partial override object.
	TierOverride
	// TierEmbedded means a fully inline object with no registry lookup.
	TierEmbedded
)

func (t Tier) String() string {
	switch t {
	case TierReference:
		return "reference"
	case TierOverride:
		return "override"
	case TierEmbedded:
		return "embedded"
	case TierNone:
		return "none"
	default:
		return "unknown"
	}
}

// LocationTier classifies the location shape of an event.
// Priority: embedded > override > reference.
func LocationTier(ev *catalog.Event) Tier {
	switch {
	case ev.Location != nil:
		return TierEmbedded
	case ev.LocationID != "" && ev.LocationOverride != nil:
		return TierOverride
	case ev.LocationID != "":
		return TierReference
	default:
		return TierNone
	}
}

// OrganizerTier classifies the organizer shape of an event.
func OrganizerTier(ev *catalog.Event) Tier {
	switch {
	case ev.Organizer != nil:
		return TierEmbedded
	case ev.OrganizerID != "" && ev.OrganizerOverride != nil:
		return TierOverride
	case ev.OrganizerID != "":
		return TierReference
	default:
		return TierNone
	}
}
