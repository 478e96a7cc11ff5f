package arlatin

import (
	"reflect"
	"testing"

	"github.com/qalamlabs/arlatin/mapping"
)

func TestMapLetters(t *testing.T) {
	letters := mapping.Resolve(mapping.Default).LetterMap()

	tests := []struct {
		input string
		want  string
	}{
		{"سرور", "srwr"},
		{"خالد", "khald"},
		{"ظريف", "zryf"},
		{"", ""},
		{"abc", "abc"},         // non-Arabic passthrough
		{"س1ر", "s1r"},         // mixed content
		{"٠٩", "09"},           // Eastern Arabic digits
		{"؟؛،", "?;,"},         // Arabic punctuation
		{"بـــب", "bb"},        // tatweel dropped
		{"汉字", "汉字"},           // non-Arabic scripts untouched
	}

	for _, tt := range tests {
		if got := mapLetters(tt.input, letters); got != tt.want {
			t.Errorf("mapLetters(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAssimilate(t *testing.T) {
	letters := mapping.Resolve(mapping.Default).LetterMap()

	tests := []struct {
		input   string
		want    string
		applies bool
	}{
		{"النور", "an-nwr", true},
		{"الشمس", "as-shms", true},
		{"الرحمن", "ar-rhmn", true},
		{"القمر", "", false}, // qaf is a moon letter
		{"نور", "", false},   // no article
		{"ال", "", false},    // article alone
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := assimilate(tt.input, letters)
		if ok != tt.applies {
			t.Errorf("assimilate(%q) applies = %v, want %v", tt.input, ok, tt.applies)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("assimilate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAssimilate_UnmappedSunLetter(t *testing.T) {
	// The sun letter itself must be present in the letter map.
	letters := map[string]string{
		"ا": "a", // ا
		"ل": "l", // ل
	}

	if _, ok := assimilate("النور", letters); ok {
		t.Error("assimilation should not apply when the sun letter has no mapping")
	}
}

func TestApplyTaMarbuta(t *testing.T) {
	tests := []struct {
		original string
		mapped   string
		style    TaMarbutaStyle
		want     string
	}{
		{"جميلة", "jmylh", StyleAH, "jmylah"},
		{"جميلة", "jmylh", StyleA, "jmyla"},
		{"جميلة", "jmylh", StyleAT, "jmylat"},
		{"جميلة", "jmylh", TaMarbutaStyle("nope"), "jmylh"},
		{"جميل", "jmyl", StyleAH, "jmyl"},   // no tāʼ marbūṭa
		{"جميلة", "jmylt", StyleAH, "jmylt"}, // mapped result lacks trailing h
	}

	for _, tt := range tests {
		if got := applyTaMarbuta(tt.original, tt.mapped, tt.style); got != tt.want {
			t.Errorf("applyTaMarbuta(%q, %q, %q) = %q, want %q",
				tt.original, tt.mapped, tt.style, got, tt.want)
		}
	}
}

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"muhammad ali", "Muhammad Ali"},
		{"al-Rahman", "Al-Rahman"},
		{"", ""},
		{"x", "X"},
		{"иван", "Иван"},       // first-codepoint aware
		{"épée", "Épée"},       // multi-byte leading rune
		{"123 abc", "123 Abc"}, // digits unchanged
	}

	for _, tt := range tests {
		if got := capitalizeWords(tt.input); got != tt.want {
			t.Errorf("capitalizeWords(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a b", []string{"a", "b"}},
		{"a   b", []string{"a", "b"}},
		{"a\tb\nc", []string{"a", "b", "c"}},
		{"a b", []string{"a", "b"}}, // no-break space
		{"solo", []string{"solo"}},
	}

	for _, tt := range tests {
		if got := tokenize(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
