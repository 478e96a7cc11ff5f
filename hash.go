package arlatin

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a text hash and an engine fingerprint.
func CacheKey(hash, fingerprint string) string {
	return hash + ":" + fingerprint
}

// Fingerprint encodes the configuration that affects a transliteration
// result. Two engines with equal fingerprints produce identical output for
// identical input, so cached results may be shared between them.
func Fingerprint(mappingName string, style TaMarbutaStyle, assimilation, capitalize bool) string {
	var b strings.Builder
	b.WriteString(mappingName)
	b.WriteByte(':')
	b.WriteString(string(style))
	b.WriteByte(':')
	b.WriteString(boolFlag(assimilation))
	b.WriteString(boolFlag(capitalize))
	return b.String()
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
