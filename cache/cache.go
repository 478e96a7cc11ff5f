// Package cache memoizes rendered transliterations so repeated names —
// the common case in manifests and registries — are transformed once.
//
// Values are final renderings, keys are hash:fingerprint pairs built by
// arlatin.CacheKey from the SHA-256 of the trimmed input and the engine
// configuration fingerprint. Because configuration is part of the key,
// a cache can be shared by engines with different mappings or styles
// without ever serving a rendering produced under other settings.
//
// Caches are strictly memos: the engine treats failed lookups as misses
// and ignores failed stores, so no backend outage changes what
// Transliterate returns.
package cache

// Cache stores rendered transliterations by key.
type Cache interface {
	// Get returns the rendering stored under key. The second return is
	// false on a miss, an expired entry, or a backend error.
	Get(key string) (string, bool)

	// Set stores a rendering under key.
	Set(key string, value string) error
}
