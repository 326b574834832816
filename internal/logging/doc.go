// Package logging assembles structured slog loggers and formatting helpers used
// across sortdir.
//
// It owns the console and JSON handlers, mirrors records into an optional
// JSON log file, and exposes context-aware helpers so code running inside a
// sort can tag log lines with the run identifier and stage. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
