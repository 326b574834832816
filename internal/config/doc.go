// Package config loads, normalizes, and validates sortdir configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and applies the SORTDIR_LOG_LEVEL and
// SORTDIR_LOG_FORMAT environment overrides. A missing file is not an error:
// defaults cover every field.
//
// The sorting rules themselves are not configuration. Extension categories and
// reserved folder names are fixed in package classify.
package config
