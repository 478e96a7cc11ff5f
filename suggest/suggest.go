// Package suggest defines suggestion providers that propose canonical Latin
// spellings for Arabic names the engine currently serves through
// letter-by-letter fallback. Suggestions are review material for extending
// a mapping's full-word dictionary; nothing in this package is consulted
// during transliteration.
package suggest

import "github.com/qalamlabs/arlatin"

// Provider is the interface for suggestion backends.
// This is an alias to the main package interface for convenience.
type Provider = arlatin.SuggestionProvider

// Request is an alias to the main package type.
type Request = arlatin.SuggestRequest
