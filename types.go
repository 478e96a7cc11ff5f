package arlatin

// TaMarbutaStyle controls how a word-final tāʼ marbūṭa (ة) is rendered.
type TaMarbutaStyle string

const (
	// StyleAH renders a final tāʼ marbūṭa as "ah" (e.g. jamilah). Default.
	StyleAH TaMarbutaStyle = "ah"
	// StyleA renders a final tāʼ marbūṭa as "a" (e.g. jamila).
	StyleA TaMarbutaStyle = "a"
	// StyleAT renders a final tāʼ marbūṭa as "at", the construct-state
	// reading (e.g. jamilat).
	StyleAT TaMarbutaStyle = "at"
)

// Arabic codepoints the phonological rules key on.
const (
	// Alef (ا), first letter of the definite article.
	Alef = 'ا'
	// Lam (ل), second letter of the definite article.
	Lam = 'ل'
	// TaMarbuta (ة), the feminine ending.
	TaMarbuta = 'ة'
)

// sunLetters is the fixed set of 14 consonants that assimilate the
// preceding definite article: ت ث د ذ ر ز س ش ص ض ط ظ ل ن.
var sunLetters = map[rune]bool{
	'ت': true, // ت
	'ث': true, // ث
	'د': true, // د
	'ذ': true, // ذ
	'ر': true, // ر
	'ز': true, // ز
	'س': true, // س
	'ش': true, // ش
	'ص': true, // ص
	'ض': true, // ض
	'ط': true, // ط
	'ظ': true, // ظ
	'ل': true, // ل
	'ن': true, // ن
}

// IsSunLetter reports whether r is one of the 14 sun letters.
func IsSunLetter(r rune) bool {
	return sunLetters[r]
}

// TextNode represents a transliterable unit of content extracted from a
// document by a ContentProcessor.
type TextNode struct {
	ID       string            // Unique identifier within the document
	Text     string            // Original text content (trimmed)
	Hash     string            // SHA-256 hash of Text
	NodeType string            // Content type: "html_text", "plain_text", etc.
	Metadata map[string]string // Additional info (parent tag, line number, etc.)
}

// ProcessedContent is the result of a document processing operation.
type ProcessedContent struct {
	Content             string // Content with Arabic text transliterated
	TransliteratedCount int    // Number of newly computed transliterations
	CachedCount         int    // Number of cache hits
	TotalNodes          int    // Total Arabic-bearing nodes found
}

// IgnoredTags contains HTML tags whose content is never transliterated.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
