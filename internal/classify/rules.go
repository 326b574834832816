package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// RuleTable maps uppercase extensions to categories. The zero value knows no
// extensions; use DefaultRules for the built-in table.
type RuleTable struct {
	rules map[string]Category
}

var defaultRules = map[Category][]string{
	Images:    {"JPEG", "PNG", "JPG", "SVG"},
	Video:     {"AVI", "MP4", "MOV", "MKV"},
	Documents: {"DOC", "DOCX", "TXT", "PDF", "XLSX", "PPTX"},
	Audio:     {"MP3", "OGG", "WAV", "AMR"},
	Archives:  {"ZIP", "GZ", "TAR"},
}

// DefaultRules returns the built-in extension table.
func DefaultRules() RuleTable {
	rules := make(map[string]Category)
	for category, exts := range defaultRules {
		for _, ext := range exts {
			rules[ext] = category
		}
	}
	return RuleTable{rules: rules}
}

// Classify resolves ext (any case) to its category. Unknown and empty
// extensions return Other with known=false.
func (t RuleTable) Classify(ext string) (category Category, known bool) {
	if ext == "" {
		return Other, false
	}
	category, known = t.rules[strings.ToUpper(ext)]
	if !known {
		return Other, false
	}
	return category, true
}

// Extensions returns the sorted extensions mapped to category.
func (t RuleTable) Extensions(category Category) []string {
	var out []string
	for ext, c := range t.rules {
		if c == category {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// ExtensionOf returns the uppercase text after the final dot of path's base
// name. Names without a dot, with only a leading dot (".profile"), or ending
// in a dot have no extension.
func ExtensionOf(path string) string {
	name := filepath.Base(path)
	i := suffixIndex(name)
	if i < 0 {
		return ""
	}
	return strings.ToUpper(name[i+1:])
}

// TrimExtension strips the final suffix recognised by ExtensionOf from name.
func TrimExtension(name string) string {
	i := suffixIndex(name)
	if i < 0 {
		return name
	}
	return name[:i]
}

func suffixIndex(name string) int {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return -1
	}
	return i
}
