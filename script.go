package arlatin

import "unicode"

// IsArabicRune reports whether r belongs to the Arabic script, including
// the presentation-form and supplement blocks.
func IsArabicRune(r rune) bool {
	return unicode.Is(unicode.Arabic, r)
}

// ContainsArabic reports whether s contains at least one Arabic codepoint.
// Processors use this to decide which text nodes need transliteration.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if IsArabicRune(r) {
			return true
		}
	}
	return false
}

// Direction returns "rtl" if s contains Arabic text, "ltr" otherwise.
func Direction(s string) string {
	if ContainsArabic(s) {
		return "rtl"
	}
	return "ltr"
}

// IsEasternArabicDigit reports whether r is an Eastern Arabic (٠-٩) or
// extended Arabic-Indic (۰-۹) digit.
func IsEasternArabicDigit(r rune) bool {
	return (r >= '٠' && r <= '٩') || (r >= '۰' && r <= '۹')
}
