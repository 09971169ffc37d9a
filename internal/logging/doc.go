// Package logging builds slog loggers for the curation pipeline.
//
// It supports console and JSON output, optional log files alongside stdout,
// and attribute helpers so call sites stay terse. Component loggers tag every
// record with the owning subsystem, which keeps interleaved pipeline output
// attributable during a review session.
package logging
