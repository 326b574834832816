// Package organizer applies a scanned inventory to the filesystem.
//
// Classified files move into category folders under the root with
// transliterated names, archives are unpacked into per-archive folders under
// root/archives and then deleted, and directories recorded during the scan
// are removed children first when the moves left them empty. Files the
// classifier does not recognise stay where they are.
//
// Filesystem failures while moving or writing extracted data abort the run;
// unreadable archives and directories that cannot be removed are logged,
// recorded in the Result, and skipped.
package organizer
