// Package textutil provides small text helpers shared across the pipeline:
// filesystem-safe tokens for backup file names and cache files, and
// whitespace-based title tokenization for similarity scoring.
package textutil
