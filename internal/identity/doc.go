// Package identity derives stable event identifiers from scrape metadata.
//
// An identifier is a pure function of (source, normalized title, start date).
// Repeated scrapes of the same real-world listing always map to the same ID,
// even when the scraped text varies in casing, punctuation, or whitespace, so
// the dedup cache can recognize events across runs. Time of day is excluded
// from the derivation because recurring listings often shift start times
// slightly between scrapes of the same event.
package identity
