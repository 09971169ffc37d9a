package resolver

import "kurator/internal/catalog"

// TierCounts reports how many events of a batch use each resolution tier for
// one entity side.
type TierCounts struct {
	Reference int `json:"tier_1_reference"`
	Override  int `json:"tier_2_override"`
	Embedded  int `json:"tier_3_embedded"`
	None      int `json:"none"`
}

// Total sums the tier counts; it always equals the batch size.
func (c TierCounts) Total() int {
	return c.Reference + c.Override + c.Embedded + c.None
}

// CoverageStats summarizes how a batch of events supplies its entity data and
// where references point at unknown registry records. Unresolved references
// are visible only here, never as hard errors.
type CoverageStats struct {
	TotalEvents          int        `json:"total_events"`
	Locations            TierCounts `json:"locations"`
	Organizers           TierCounts `json:"organizers"`
	UnresolvedLocations  int        `json:"unresolved_locations"`
	UnresolvedOrganizers int        `json:"unresolved_organizers"`
}

// AnalyzeCoverage classifies every event into exactly one tier per side and
// counts references that do not resolve against the registries.
func (r *Resolver) AnalyzeCoverage(events []catalog.Event) CoverageStats {
	stats := CoverageStats{TotalEvents: len(events)}

	for i := range events {
		ev := &events[i]

		switch LocationTier(ev) {
		case TierReference:
			stats.Locations.Reference++
			if _, ok := r.locations.Get(ev.LocationID); !ok {
				stats.UnresolvedLocations++
			}
		case TierOverride:
			stats.Locations.Override++
			if _, ok := r.locations.Get(ev.LocationID); !ok {
				stats.UnresolvedLocations++
			}
		case TierEmbedded:
			stats.Locations.Embedded++
		case TierNone:
			stats.Locations.None++
		}

		switch OrganizerTier(ev) {
		case TierReference:
			stats.Organizers.Reference++
			if _, ok := r.organizers.Get(ev.OrganizerID); !ok {
				stats.UnresolvedOrganizers++
			}
		case TierOverride:
			stats.Organizers.Override++
			if _, ok := r.organizers.Get(ev.OrganizerID); !ok {
				stats.UnresolvedOrganizers++
			}
		case TierEmbedded:
			stats.Organizers.Embedded++
		case TierNone:
			stats.Organizers.None++
		}
	}

	return stats
}
