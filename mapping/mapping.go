// Package mapping supplies the lookup tables that drive transliteration:
// a full-word dictionary (exact Arabic spelling → Latin spelling) and a
// single-codepoint letter map used when no dictionary entry matches.
//
// Regional variants implement the same capability set and are selected
// through a registry. Lookups are keyed by exact string identity — no case
// folding and no Unicode normalization are applied, so a diacritic-bearing
// spelling that is not listed verbatim falls through to the letter map.
package mapping

import "fmt"

// Mapping is the capability set a transliteration table variant exposes.
// Implementations must return tables that are read-only after construction;
// they may then be shared freely across goroutines.
type Mapping interface {
	// Name identifies the variant, e.g. "default" or "egyptian". It is
	// used in cache fingerprints and must be stable.
	Name() string

	// FullWordMap returns the exact-match dictionary. Keys are trimmed
	// Arabic words or multi-word phrases; values are used verbatim and
	// own their casing, assimilation and ending rendering.
	FullWordMap() map[string]string

	// LetterMap returns the fallback table keyed by single Arabic
	// codepoint. Diacritics map to the empty string. Codepoints absent
	// from the map pass through unchanged.
	LetterMap() map[string]string
}

// Selector identifies a registered mapping variant.
type Selector string

const (
	// Default is the primary variant using common passport conventions.
	Default Selector = "default"
	// Egyptian renders jīm as "g" and carries Egyptian name spellings.
	Egyptian Selector = "egyptian"
	// Gulf renders qāf as "g" and carries Gulf name spellings.
	Gulf Selector = "gulf"
)

// tableMapping is the standard Mapping implementation backed by two maps.
type tableMapping struct {
	name    string
	words   map[string]string
	letters map[string]string
}

func (m *tableMapping) Name() string                   { return m.name }
func (m *tableMapping) FullWordMap() map[string]string { return m.words }
func (m *tableMapping) LetterMap() map[string]string   { return m.letters }

// New creates a Mapping from the given tables. The maps are used as-is and
// must not be mutated after the call.
func New(name string, words, letters map[string]string) Mapping {
	return &tableMapping{name: name, words: words, letters: letters}
}

// Extend builds a new variant on top of base: the base tables are copied
// and the override entries are merged in, replacing any existing keys.
// This is how regional variants compose additively.
func Extend(base Mapping, name string, wordOverrides, letterOverrides map[string]string) Mapping {
	words := make(map[string]string, len(base.FullWordMap())+len(wordOverrides))
	for k, v := range base.FullWordMap() {
		words[k] = v
	}
	for k, v := range wordOverrides {
		words[k] = v
	}

	letters := make(map[string]string, len(base.LetterMap())+len(letterOverrides))
	for k, v := range base.LetterMap() {
		letters[k] = v
	}
	for k, v := range letterOverrides {
		letters[k] = v
	}

	return &tableMapping{name: name, words: words, letters: letters}
}

// UnknownSelectorError is returned by ResolveStrict for selectors with no
// registered variant.
type UnknownSelectorError struct {
	Selector Selector
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("unknown mapping selector %q", string(e.Selector))
}

// registry holds the known variants. Populated at init time; Register may
// extend it before any engine is constructed. Not synchronized — callers
// registering custom variants must do so before concurrent resolution.
var registry = map[Selector]Mapping{}

func init() {
	registry[Default] = defaultMapping
	registry[Egyptian] = egyptianMapping
	registry[Gulf] = gulfMapping
}

// Register adds or replaces a variant under the given selector.
func Register(sel Selector, m Mapping) {
	registry[sel] = m
}

// Resolve returns the variant registered for sel. Unknown or future
// selectors resolve to the default variant rather than failing; use
// ResolveStrict to detect them.
func Resolve(sel Selector) Mapping {
	if m, ok := registry[sel]; ok {
		return m
	}
	return registry[Default]
}

// ResolveStrict returns the variant registered for sel, or an
// UnknownSelectorError if there is none.
func ResolveStrict(sel Selector) (Mapping, error) {
	if m, ok := registry[sel]; ok {
		return m, nil
	}
	return nil, &UnknownSelectorError{Selector: sel}
}

// Selectors returns the currently registered selectors.
func Selectors() []Selector {
	out := make([]Selector, 0, len(registry))
	for sel := range registry {
		out = append(out, sel)
	}
	return out
}
