package entity

import (
	"strings"
	"time"

	"kurator/internal/identity"
)

// Location is a canonical venue record owned by the location registry.
type Location struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Address    string    `json:"address,omitempty"`
	Verified   bool      `json:"verified"`
	Aliases    []string  `json:"aliases"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Organizer is a canonical organizer record owned by the organizer registry.
type Organizer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Verified   bool      `json:"verified"`
	Aliases    []string  `json:"aliases"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Website    string    `json:"website,omitempty"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LocationOverride carries event-local corrections layered over a canonical
// location. Nil coordinate pointers mean "keep the canonical value".
type LocationOverride struct {
	Name    string   `json:"name,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	Address string   `json:"address,omitempty"`
}

// OrganizerOverride carries event-local corrections layered over a canonical
// organizer.
type OrganizerOverride struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// MatchesName reports whether query matches the location name or any alias,
// case-insensitively and as a substring.
func (l *Location) MatchesName(query string) bool {
	return matchesName(query, l.Name, l.Aliases)
}

// MatchesName reports whether query matches the organizer name or any alias.
func (o *Organizer) MatchesName(query string) bool {
	return matchesName(query, o.Name, o.Aliases)
}

// Merged returns a transient copy of the canonical location with override
// fields applied. The canonical record itself is never mutated.
func (l Location) Merged(override *LocationOverride) Location {
	if override == nil {
		return l
	}
	if strings.TrimSpace(override.Name) != "" {
		l.Name = override.Name
	}
	if override.Lat != nil {
		l.Lat = *override.Lat
	}
	if override.Lon != nil {
		l.Lon = *override.Lon
	}
	if strings.TrimSpace(override.Address) != "" {
		l.Address = override.Address
	}
	return l
}

// Merged returns a transient copy of the canonical organizer with override
// fields applied.
func (o Organizer) Merged(override *OrganizerOverride) Organizer {
	if override == nil {
		return o
	}
	if strings.TrimSpace(override.Name) != "" {
		o.Name = override.Name
	}
	if strings.TrimSpace(override.Email) != "" {
		o.Email = override.Email
	}
	if strings.TrimSpace(override.Phone) != "" {
		o.Phone = override.Phone
	}
	if strings.TrimSpace(override.Website) != "" {
		o.Website = override.Website
	}
	return o
}

// LocationID derives the deterministic registry ID for a venue name.
func LocationID(name string) string {
	return "loc_" + slug(name)
}

// OrganizerID derives the deterministic registry ID for an organizer name.
func OrganizerID(name string) string {
	return "org_" + slug(name)
}

func slug(name string) string {
	normalized := identity.NormalizeTitle(name)
	if normalized == "" {
		return "unknown"
	}
	return strings.ReplaceAll(normalized, " ", "_")
}

func matchesName(query, name string, aliases []string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return false
	}
	if strings.Contains(strings.ToLower(name), query) {
		return true
	}
	for _, alias := range aliases {
		if strings.Contains(strings.ToLower(alias), query) {
			return true
		}
	}
	return false
}
