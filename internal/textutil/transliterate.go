package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// cyrillicToLatin maps lowercase Cyrillic letters (Russian plus the Ukrainian
// є, і, ї, ґ) to readable ASCII clusters. Soft and hard signs are dropped.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "j", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "",
	'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya", 'є': "ye", 'і': "i",
	'ї': "yi", 'ґ': "g",
}

// transliterations holds both cases. Uppercase letters capitalize only the
// first character of their cluster, so "Щ" becomes "Sch".
var transliterations = buildTransliterations()

func buildTransliterations() map[rune]string {
	out := make(map[rune]string, len(cyrillicToLatin)*2)
	for lower, latin := range cyrillicToLatin {
		out[lower] = latin
		upper := unicode.ToUpper(lower)
		if upper == lower {
			continue
		}
		if latin == "" {
			out[upper] = ""
			continue
		}
		out[upper] = strings.ToUpper(latin[:1]) + latin[1:]
	}
	return out
}

// Normalize transliterates Cyrillic to Latin and replaces every character that
// is not an ASCII letter, digit, or dot with an underscore. Each unsafe
// character yields its own underscore. The result is safe for use as a file
// name and Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	composed := norm.NFC.String(name)

	var b strings.Builder
	b.Grow(len(composed))
	for _, r := range composed {
		if latin, ok := transliterations[r]; ok {
			b.WriteString(latin)
			continue
		}
		if isSafeRune(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// IsNormalized reports whether name already consists solely of characters
// Normalize leaves untouched.
func IsNormalized(name string) bool {
	for _, r := range name {
		if !isSafeRune(r) {
			return false
		}
	}
	return true
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '.':
		return true
	default:
		return false
	}
}
