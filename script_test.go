package arlatin

import "testing"

func TestContainsArabic(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"محمد", true},
		{"hello محمد", true},
		{"hello", false},
		{"", false},
		{"123", false},
		{"١٢٣", true}, // Eastern Arabic digits are Arabic script
		{"иван", false},
	}

	for _, tt := range tests {
		if got := ContainsArabic(tt.input); got != tt.want {
			t.Errorf("ContainsArabic(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if got := Direction("محمد علي"); got != "rtl" {
		t.Errorf("Direction = %q, want rtl", got)
	}
	if got := Direction("Muhammad Ali"); got != "ltr" {
		t.Errorf("Direction = %q, want ltr", got)
	}
}

func TestIsSunLetter(t *testing.T) {
	if !IsSunLetter('ن') { // ن
		t.Error("noon should be a sun letter")
	}
	if IsSunLetter('ق') { // ق
		t.Error("qaf is a moon letter")
	}
	if IsSunLetter('x') {
		t.Error("latin letters are not sun letters")
	}
}

func TestIsEasternArabicDigit(t *testing.T) {
	for _, r := range "٠١٢٣٤٥٦٧٨٩۰۹" {
		if !IsEasternArabicDigit(r) {
			t.Errorf("%q should be an Eastern Arabic digit", r)
		}
	}
	for _, r := range "09ب" {
		if IsEasternArabicDigit(r) {
			t.Errorf("%q should not be an Eastern Arabic digit", r)
		}
	}
}
