package arlatin

import "context"

// SuggestionProvider is the interface for dictionary-entry suggestion
// backends. Providers propose canonical Latin spellings for Arabic names
// that the engine currently serves through letter-by-letter fallback,
// typically so they can be reviewed and added to a mapping's dictionary.
//
// Providers perform I/O and are never consulted by Transliterate itself.
type SuggestionProvider interface {
	Suggest(ctx context.Context, req SuggestRequest) ([]string, error)
}

// SuggestRequest contains the parameters for a suggestion request. The
// response carries one Latin spelling per name, in order.
type SuggestRequest struct {
	Names       []string       // Arabic names to suggest spellings for
	Style       TaMarbutaStyle // Ending convention suggestions should follow
	MappingName string         // Variant the suggestions should match (e.g. "egyptian")
	Context     string         // Free-form hint, e.g. "Moroccan passport holders"
}
