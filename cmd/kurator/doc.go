// Package main hosts the kurator CLI entrypoint and command graph.
//
// The Cobra-based command tree covers candidate ingestion, the interactive
// review loop, pending/published listings, registry management, coverage
// reporting, suppression maintenance, run history, and configuration
// scaffolding. It centralizes configuration resolution, session locking, and
// structured logging setup so subcommands can focus on user experience.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
