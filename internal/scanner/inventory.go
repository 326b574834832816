package scanner

import (
	"sort"

	"sortdir/internal/classify"
)

// Directory is a subdirectory recorded during the scan. Children appear in
// discovery order.
type Directory struct {
	Path     string
	Children []*Directory
}

// Inventory is the result of a scan: per-category file lists, the tree of
// visited subdirectories, and the extensions encountered.
type Inventory struct {
	Root string

	files   map[classify.Category][]string
	top     []*Directory
	known   map[string]struct{}
	unknown map[string]struct{}
}

// NewInventory returns an empty inventory rooted at root.
func NewInventory(root string) *Inventory {
	return &Inventory{
		Root:    root,
		files:   make(map[classify.Category][]string),
		known:   make(map[string]struct{}),
		unknown: make(map[string]struct{}),
	}
}

// AddFile appends path to the bucket for category and records ext as known
// or unknown. Empty extensions are not recorded in either set.
func (inv *Inventory) AddFile(path string, category classify.Category, ext string, known bool) {
	inv.files[category] = append(inv.files[category], path)
	if ext == "" {
		return
	}
	if known {
		inv.known[ext] = struct{}{}
		return
	}
	inv.unknown[ext] = struct{}{}
}

// AddDirectory records path as a child of parent, or as a top-level
// subdirectory of the root when parent is nil.
func (inv *Inventory) AddDirectory(parent *Directory, path string) *Directory {
	dir := &Directory{Path: path}
	if parent == nil {
		inv.top = append(inv.top, dir)
	} else {
		parent.Children = append(parent.Children, dir)
	}
	return dir
}

// Files returns the paths classified into category in discovery order.
func (inv *Inventory) Files(category classify.Category) []string {
	return inv.files[category]
}

// Count returns the number of files classified into category.
func (inv *Inventory) Count(category classify.Category) int {
	return len(inv.files[category])
}

// Total returns the number of files across all categories.
func (inv *Inventory) Total() int {
	total := 0
	for _, paths := range inv.files {
		total += len(paths)
	}
	return total
}

// Directories returns every recorded subdirectory in discovery order: each
// parent precedes its descendants.
func (inv *Inventory) Directories() []string {
	var out []string
	var visit func(dirs []*Directory)
	visit = func(dirs []*Directory) {
		for _, dir := range dirs {
			out = append(out, dir.Path)
			visit(dir.Children)
		}
	}
	visit(inv.top)
	return out
}

// WalkDirsPostOrder calls fn for every recorded subdirectory, children before
// their parent. The root itself is never visited.
func (inv *Inventory) WalkDirsPostOrder(fn func(path string)) {
	var visit func(dirs []*Directory)
	visit = func(dirs []*Directory) {
		for _, dir := range dirs {
			visit(dir.Children)
			fn(dir.Path)
		}
	}
	visit(inv.top)
}

// KnownExtensions returns the sorted extensions found in the rule table.
func (inv *Inventory) KnownExtensions() []string {
	return sortedKeys(inv.known)
}

// UnknownExtensions returns the sorted non-empty extensions the rule table
// did not recognise.
func (inv *Inventory) UnknownExtensions() []string {
	return sortedKeys(inv.unknown)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Report is a serialisable view of an inventory.
type Report struct {
	Root              string              `json:"root"`
	Files             map[string][]string `json:"files"`
	Directories       []string            `json:"directories"`
	KnownExtensions   []string            `json:"known_extensions"`
	UnknownExtensions []string            `json:"unknown_extensions"`
}

// Report returns a snapshot keyed by category name. Every category is present,
// empty buckets as empty lists.
func (inv *Inventory) Report() Report {
	files := make(map[string][]string, len(classify.Categories()))
	for _, category := range classify.Categories() {
		paths := append([]string{}, inv.files[category]...)
		files[category.String()] = paths
	}
	dirs := inv.Directories()
	if dirs == nil {
		dirs = []string{}
	}
	return Report{
		Root:              inv.Root,
		Files:             files,
		Directories:       dirs,
		KnownExtensions:   inv.KnownExtensions(),
		UnknownExtensions: inv.UnknownExtensions(),
	}
}
