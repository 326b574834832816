package organizer

import "sortdir/internal/classify"

// Move records one file relocated into a category folder. Renamed is set
// when transliteration changed the base name.
type Move struct {
	Category classify.Category
	Source   string
	Target   string
	Renamed  bool
}

// Extraction records the outcome of unpacking one archive. Err is nil when
// the contents were merged into Target. The archive itself is deleted either way.
type Extraction struct {
	Archive string
	Target  string
	Err     error
}

// Extracted reports whether the archive contents were recovered.
func (e Extraction) Extracted() bool {
	return e.Err == nil
}

// CleanupError pairs a directory path with the reason it was kept.
type CleanupError struct {
	Path  string
	Error error
}

// Result summarises a reorganization run.
type Result struct {
	Moved       []Move
	Left        []string
	Extractions []Extraction
	Removed     []string
	Retained    []CleanupError
}

// MovedCount returns how many files were moved into the folder for category.
func (r Result) MovedCount(category classify.Category) int {
	count := 0
	for _, move := range r.Moved {
		if move.Category == category {
			count++
		}
	}
	return count
}

// RenamedCount returns how many moved files received a new base name.
func (r Result) RenamedCount() int {
	count := 0
	for _, move := range r.Moved {
		if move.Renamed {
			count++
		}
	}
	return count
}

// FailedExtractions returns the archives whose contents could not be recovered.
func (r Result) FailedExtractions() []Extraction {
	var failed []Extraction
	for _, extraction := range r.Extractions {
		if !extraction.Extracted() {
			failed = append(failed, extraction)
		}
	}
	return failed
}
