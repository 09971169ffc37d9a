// Package resolver expands event location and organizer references against
// the canonical registries.
//
// Every event side is classified into exactly one resolution tier, selected
// by field presence with priority embedded > override > reference. Reference
// tiers produce copies of registry records; override tiers layer event-local
// corrections onto a copy without touching the canonical record; embedded
// tiers pass the inline object through verbatim. An unknown registry ID is
// not an error: the event keeps its unresolved reference and the gap is
// reported through coverage statistics, so one bad reference never blocks the
// rest of a batch.
package resolver
