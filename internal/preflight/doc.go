// Package preflight verifies that a sort can start before anything on disk
// is touched.
//
// The CLI runs RunAll after resolving the root: the root must be an existing,
// writable directory whose own name is not a category folder, and the lock and
// log directories must be usable. FirstFailure turns the first failed check
// into a services.ErrValidation error.
package preflight
