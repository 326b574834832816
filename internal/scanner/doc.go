// Package scanner walks a directory tree and builds the Inventory consumed by
// the organizer.
//
// The walk is depth-first recursion over os.ReadDir results. Reserved
// destination folders (images, video, and so on) are skipped without being
// recorded, which keeps a second run from reprocessing sorted output. Any
// read error aborts the scan: the tree is assumed to be quiescent while a run
// is in progress.
package scanner
