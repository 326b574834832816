// Package services defines shared utilities consumed by the sorting stages and
// the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper so callers can tell user
//     mistakes (bad root, bad config, concurrent run) from filesystem failures.
//
// Use these helpers when wiring new stage logic so error handling and log
// shape stay uniform across scan, organize, and cleanup.
package services
