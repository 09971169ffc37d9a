// Package pipeline ingests scraped candidate events into the pending store.
//
// Each candidate receives a deterministic identity, then passes through the
// rejection suppression list and the per-source dedup cache before being
// appended to the pending store. A malformed candidate fails on its own;
// it never aborts the rest of the batch.
package pipeline
