package textutil

import (
	"regexp"
	"testing"
)

var safeName = regexp.MustCompile(`^[a-zA-Z0-9._]*$`)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already safe", "report.PDF", "report.PDF"},
		{"photo with space", "Фото 1.jpg", "Foto_1.jpg"},
		{"archive stem", "архив", "arhiv"},
		{"cluster capitalized", "Щука", "Schuka"},
		{"clusters lowercase", "щи и борщ", "schi_i_borsch"},
		{"signs dropped", "Объявление.txt", "Obyavlenie.txt"},
		{"ukrainian", "Їжак і ґанок є", "Yijak_i_ganok_ye"},
		{"hard sign uppercase", "ПОДЪЕЗД", "PODEZD"},
		{"no collapsing", "a  -  b", "a_____b"},
		{"dots preserved", "..a.b..", "..a.b.."},
		{"other scripts", "日本.png", "__.png"},
		{"punctuation", "what?(1).mp3", "what__1_.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeComposesDecomposedInput(t *testing.T) {
	// "й" written as "и" followed by U+0306 COMBINING BREVE.
	decomposed := "\u0438\u0306"
	if got := Normalize(decomposed); got != "j" {
		t.Fatalf("Normalize(decomposed й) = %q, want %q", got, "j")
	}
}

func TestNormalizeOutputIsSafeAndIdempotent(t *testing.T) {
	inputs := []string{
		"", "plain", "Фото 1.jpg", "ПРИВЕТ мир!", "tab\there", "emoji 🎉.png",
		"Ёлка.ЁЁ", "ґрунт ЄС", "a/b\\c", "  ", "ñandú.doc",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if !safeName.MatchString(once) {
			t.Errorf("Normalize(%q) = %q contains unsafe characters", in, once)
		}
		if !IsNormalized(once) {
			t.Errorf("IsNormalized(%q) = false", once)
		}
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestIsNormalized(t *testing.T) {
	if !IsNormalized("abc.TXT") {
		t.Error("expected abc.TXT to be normalized")
	}
	if IsNormalized("a b") {
		t.Error("expected space to be rejected")
	}
	if IsNormalized("файл") {
		t.Error("expected Cyrillic to be rejected")
	}
}
