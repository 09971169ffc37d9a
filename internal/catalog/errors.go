package catalog

import "errors"

var (
	// ErrValidation marks schema violations that block a single approve
	// attempt; the event stays pending and the review loop continues.
	ErrValidation = errors.New("validation error")

	// ErrMissingSuppressionKey reports a rejection whose title or source is
	// missing. The event is still removed from pending, but no suppression
	// record can be written.
	ErrMissingSuppressionKey = errors.New("rejection missing title or source")

	// ErrCorrupt marks a store file that exists but cannot be parsed. Unlike
	// the dedup cache, store files are canonical data and never silently
	// reset.
	ErrCorrupt = errors.New("store file corrupt")
)
