package arlatin

import (
	"strings"

	"github.com/qalamlabs/arlatin/mapping"
)

// Engine is the transliteration engine. It holds the active mapping variant,
// the sun-letter assimilation toggle and the tāʼ marbūṭa rendering style,
// plus an optional result cache and registered content processors.
//
// Mapping tables are read-only and safe to share; the engine's own
// configuration fields are not synchronized. An engine is intended to be
// configured by a single owner — construct one per desired configuration,
// or guard the fluent setters with external mutual exclusion.
type Engine struct {
	mapping      mapping.Mapping
	style        TaMarbutaStyle
	assimilation bool
	cache        Cache
	processors   map[string]ContentProcessor
}

// Cache is the interface for transliteration result caching. Lookups that
// fail are treated as misses and stored results that fail to persist are
// ignored, so a cache never changes what Transliterate returns.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ContentProcessor is the interface for document processing. Extract pulls
// the Arabic-bearing text nodes out of a document, Apply writes the
// transliterations back.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, results map[string]string) (string, error)
	ContentType() string
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithTaMarbutaStyle sets the tāʼ marbūṭa rendering style.
func WithTaMarbutaStyle(style TaMarbutaStyle) Option {
	return func(e *Engine) {
		e.style = style
	}
}

// WithSunLetterAssimilation toggles definite-article assimilation.
func WithSunLetterAssimilation(enabled bool) Option {
	return func(e *Engine) {
		e.assimilation = enabled
	}
}

// WithCache sets the result cache.
func WithCache(cache Cache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) Option {
	return func(e *Engine) {
		e.processors[processor.ContentType()] = processor
	}
}

// New creates an Engine using the given mapping variant. Defaults:
// tāʼ marbūṭa style "ah", sun-letter assimilation enabled.
func New(m mapping.Mapping, opts ...Option) *Engine {
	e := &Engine{
		mapping:      m,
		style:        StyleAH,
		assimilation: true,
		processors:   make(map[string]ContentProcessor),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// NewFromSelector creates an Engine from a mapping selector. Unknown
// selectors resolve to the default variant; use mapping.ResolveStrict
// beforehand to reject them instead.
func NewFromSelector(sel mapping.Selector, opts ...Option) *Engine {
	return New(mapping.Resolve(sel), opts...)
}

// Transliterate converts Arabic-script text to Latin script.
//
// The input is treated as an opaque sequence of whitespace-delimited tokens;
// all Unicode whitespace is normalized to single spaces before tokenizing.
// Each token is looked up in the active mapping's full-word dictionary and,
// failing that, mapped codepoint by codepoint with sun-letter assimilation
// and tāʼ marbūṭa restyling applied to the result. Codepoints absent from
// the letter map pass through unchanged.
//
// When capitalize is true the first codepoint of every output token is
// uppercased. Empty or all-whitespace input yields "". Transliterate never
// fails, whatever the input contains.
func (e *Engine) Transliterate(text string, capitalize bool) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	var key string
	if e.cache != nil {
		key = CacheKey(HashText(trimmed), e.fingerprint(capitalize))
		if v, ok := e.cache.Get(key); ok {
			return v
		}
	}

	result := e.transliterate(trimmed, capitalize)

	if e.cache != nil {
		_ = e.cache.Set(key, result) // Ignore cache set errors
	}

	return result
}

// transliterate is the cache-free core transform.
func (e *Engine) transliterate(trimmed string, capitalize bool) string {
	words := e.mapping.FullWordMap()
	letters := e.mapping.LetterMap()

	tokens := tokenize(trimmed)
	if len(tokens) == 0 {
		return ""
	}

	// Multi-word dictionary phrases are matched against the whole
	// normalized input before per-token processing.
	if len(tokens) > 1 {
		if v, ok := words[strings.Join(tokens, " ")]; ok {
			if capitalize {
				return capitalizeWords(v)
			}
			return v
		}
	}

	// Tokens made only of dropped codepoints (lone diacritics) map to "";
	// they are skipped so the join never doubles or trails a space.
	results := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if r := e.transliterateToken(token, words, letters); r != "" {
			results = append(results, r)
		}
	}

	joined := strings.Join(results, " ")
	if capitalize {
		joined = capitalizeWords(joined)
	}
	return joined
}

// transliterateToken applies the per-token decision tree: dictionary hit,
// else letter-by-letter with phonological post-processing. Dictionary
// entries own their casing, assimilation and ending rendering, so the
// phonological rules apply only to the fallback path.
func (e *Engine) transliterateToken(token string, words, letters map[string]string) string {
	if v, ok := words[token]; ok {
		return v
	}

	result := mapLetters(token, letters)

	if e.assimilation {
		if assimilated, ok := assimilate(token, letters); ok {
			result = assimilated
		}
	}

	return applyTaMarbuta(token, result, e.style)
}

// TransliterateBatch transliterates each input independently, using
// parallel cache lookups for large batches (see parallel.go).
func (e *Engine) TransliterateBatch(texts []string, capitalize bool) []string {
	results := make([]string, len(texts))

	if e.cache == nil || len(texts) < parallelThreshold {
		for i, text := range texts {
			results[i] = e.Transliterate(text, capitalize)
		}
		return results
	}

	nodes := make([]TextNode, len(texts))
	for i, text := range texts {
		trimmed := strings.TrimSpace(text)
		nodes[i] = TextNode{Text: trimmed, Hash: HashText(trimmed)}
	}

	fp := e.fingerprint(capitalize)
	found, misses := ParallelCacheLookup(e.cache, nodes, fp)

	for _, node := range misses {
		if node.Text == "" {
			found[node.Hash] = ""
			continue
		}
		v := e.transliterate(node.Text, capitalize)
		found[node.Hash] = v
		_ = e.cache.Set(CacheKey(node.Hash, fp), v)
	}

	for i, node := range nodes {
		results[i] = found[node.Hash]
	}
	return results
}

// Process transliterates the Arabic text inside a document of the given
// content type using a registered processor.
func (e *Engine) Process(content string, contentType string) (*ProcessedContent, error) {
	processor, ok := e.processors[contentType]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: contentType,
		}
	}

	parsed, nodes, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return &ProcessedContent{Content: content}, nil
	}

	results, cachedCount, computedCount := e.transliterateNodes(nodes)

	result, err := processor.Apply(parsed, nodes, results)
	if err != nil {
		return nil, err
	}

	return &ProcessedContent{
		Content:             result,
		TransliteratedCount: computedCount,
		CachedCount:         cachedCount,
		TotalNodes:          len(nodes),
	}, nil
}

// ProcessHTML is a convenience method for processing HTML content.
func (e *Engine) ProcessHTML(html string) (*ProcessedContent, error) {
	return e.Process(html, "html")
}

// transliterateNodes computes results keyed by node hash, consulting the
// cache where possible. Document nodes are always capitalized.
func (e *Engine) transliterateNodes(nodes []TextNode) (map[string]string, int, int) {
	results := make(map[string]string)
	fp := e.fingerprint(true)
	cachedCount := 0
	computedCount := 0

	for _, node := range nodes {
		if _, done := results[node.Hash]; done {
			continue
		}

		key := CacheKey(node.Hash, fp)
		if e.cache != nil {
			if v, ok := e.cache.Get(key); ok {
				results[node.Hash] = v
				cachedCount++
				continue
			}
		}

		v := e.transliterate(node.Text, true)
		results[node.Hash] = v
		if e.cache != nil {
			_ = e.cache.Set(key, v) // Ignore cache set errors
		}
		computedCount++
	}

	return results, cachedCount, computedCount
}

// fingerprint encodes the configuration affecting output for cache keys.
func (e *Engine) fingerprint(capitalize bool) string {
	return Fingerprint(e.mapping.Name(), e.style, e.assimilation, capitalize)
}

// SetMapping replaces the active mapping variant and returns the engine
// for chaining.
func (e *Engine) SetMapping(m mapping.Mapping) *Engine {
	e.mapping = m
	return e
}

// SetSunLetterAssimilation toggles assimilation and returns the engine
// for chaining.
func (e *Engine) SetSunLetterAssimilation(enabled bool) *Engine {
	e.assimilation = enabled
	return e
}

// SetTaMarbutaStyle sets the tāʼ marbūṭa style and returns the engine for
// chaining. Any value is accepted; an unrecognized style simply never
// matches, leaving fallback words with their plain "h" ending.
func (e *Engine) SetTaMarbutaStyle(style TaMarbutaStyle) *Engine {
	e.style = style
	return e
}

// Mapping returns the active mapping variant.
func (e *Engine) Mapping() mapping.Mapping {
	return e.mapping
}

// SunLetterAssimilation reports whether assimilation is enabled.
func (e *Engine) SunLetterAssimilation() bool {
	return e.assimilation
}

// TaMarbutaStyle returns the configured tāʼ marbūṭa style.
func (e *Engine) TaMarbutaStyle() TaMarbutaStyle {
	return e.style
}
