// Package catalog owns the candidate event model and the three durable event
// stores: pending, published, and rejected.
//
// A candidate enters the pending store at scrape time and leaves it exactly
// once, moving to the published store on approval or leaving a suppression
// record behind on rejection. All stores are JSON files written with
// write-then-replace semantics so a crash mid-write never corrupts state.
// The rejection list permanently suppresses re-ingestion of a (normalized
// title, source) pair until an operator clears it.
package catalog
