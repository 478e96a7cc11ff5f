package arlatin

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// mapLetters transliterates token one codepoint at a time. Codepoints
// present in letters are substituted (possibly with the empty string, which
// is how diacritics are dropped); anything else passes through unchanged,
// so mixed-script input survives intact.
func mapLetters(token string, letters map[string]string) string {
	var b strings.Builder
	b.Grow(len(token))

	for _, r := range token {
		if lat, ok := letters[string(r)]; ok {
			b.WriteString(lat)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// assimilate applies definite-article sun-letter assimilation. It is
// decided and constructed entirely from the source codepoints: the token
// must begin alef + lam + sun letter. The doubled consonant is the first
// codepoint of the sun letter's own letter-map value and the remainder is
// mapped from the source tail, so a variant that renders alef-lam as
// something other than "al" still assimilates correctly.
//
// For "النور" this yields "an-nwr"; for "الشمس" (sheen maps to "sh") the
// doubled consonant is "s", yielding "as-shms".
func assimilate(token string, letters map[string]string) (string, bool) {
	r0, n0 := utf8.DecodeRuneInString(token)
	if r0 != Alef {
		return "", false
	}
	r1, n1 := utf8.DecodeRuneInString(token[n0:])
	if r1 != Lam {
		return "", false
	}
	r2, n2 := utf8.DecodeRuneInString(token[n0+n1:])
	if !IsSunLetter(r2) {
		return "", false
	}

	mapped, ok := letters[string(r2)]
	if !ok || mapped == "" {
		return "", false
	}

	c, size := utf8.DecodeRuneInString(mapped)
	doubled := string(c)
	tail := mapped[size:] + mapLetters(token[n0+n1+n2:], letters)

	return "a" + doubled + "-" + doubled + tail, true
}

// applyTaMarbuta restyles the feminine ending: when the original token ends
// in tāʼ marbūṭa and the mapped result ends in "h", the trailing "h" is
// replaced by the suffix for the configured style. Unrecognized styles
// leave the word untouched.
func applyTaMarbuta(original, mapped string, style TaMarbutaStyle) string {
	var suffix string
	switch style {
	case StyleAH:
		suffix = "ah"
	case StyleA:
		suffix = "a"
	case StyleAT:
		suffix = "at"
	default:
		return mapped
	}

	last, _ := utf8.DecodeLastRuneInString(original)
	if last != TaMarbuta || !strings.HasSuffix(mapped, "h") {
		return mapped
	}

	return mapped[:len(mapped)-1] + suffix
}

// capitalizeWords uppercases the first codepoint of each space-delimited
// segment. The transform is codepoint-aware rather than byte-level so that
// non-ASCII passthrough (Cyrillic, Greek, ...) is never corrupted.
func capitalizeWords(s string) string {
	parts := strings.Split(s, " ")
	for i, part := range parts {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		parts[i] = string(unicode.ToUpper(r)) + part[size:]
	}
	return strings.Join(parts, " ")
}

// tokenize normalizes all Unicode whitespace to ASCII spaces, then splits
// into non-empty tokens. Runs of separators collapse, so the eventual join
// always produces single spaces.
func tokenize(s string) []string {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)

	pieces := strings.Split(normalized, " ")
	tokens := pieces[:0]
	for _, piece := range pieces {
		if piece = strings.TrimSpace(piece); piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}
