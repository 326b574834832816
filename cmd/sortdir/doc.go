// Package main hosts the sortdir CLI entrypoint and command graph.
//
// The root command sorts a directory in place; scan reports what a sort
// would touch without changing anything, and config scaffolds or checks the
// TOML configuration. Configuration resolution, logger setup, and run
// locking live here so the internal packages stay free of CLI concerns.
package main
