// Package archive unpacks the archive formats recognised by the classifier.
//
// MultiFormat handles ZIP, TAR, and gzip streams. Anything the extractor
// cannot read, including entries that would land outside the destination or
// output beyond the configured size cap, is reported as ErrUnreadable so
// callers can drop the archive and carry on. Failures writing the output are
// returned unchanged.
package archive
