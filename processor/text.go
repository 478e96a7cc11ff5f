package processor

import (
	"fmt"
	"strings"

	"github.com/qalamlabs/arlatin"
)

// TextProcessor extracts Arabic-bearing lines from plain text, e.g. name
// lists exported from registry systems (one name per line).
type TextProcessor struct{}

// NewTextProcessor creates a new plain-text processor.
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

// parsedText holds the split lines of the input.
type parsedText struct {
	lines []string
}

// Extract splits the content into lines and collects those containing
// Arabic codepoints.
func (p *TextProcessor) Extract(content string) (interface{}, []arlatin.TextNode, error) {
	lines := strings.Split(content, "\n")

	var nodes []arlatin.TextNode
	seenHashes := make(map[string]bool)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !arlatin.ContainsArabic(trimmed) {
			continue
		}

		hash := arlatin.HashText(trimmed)
		if seenHashes[hash] {
			continue
		}
		seenHashes[hash] = true

		nodes = append(nodes, arlatin.TextNode{
			ID:       fmt.Sprintf("line-%d", i),
			Text:     trimmed,
			Hash:     hash,
			NodeType: "plain_text",
			Metadata: map[string]string{
				"line": fmt.Sprintf("%d", i+1),
				"dir":  arlatin.Direction(trimmed),
			},
		})
	}

	return &parsedText{lines: lines}, nodes, nil
}

// Apply replaces each Arabic-bearing line with its transliteration,
// preserving the line's leading and trailing whitespace.
func (p *TextProcessor) Apply(parsed interface{}, nodes []arlatin.TextNode, results map[string]string) (string, error) {
	pt, ok := parsed.(*parsedText)
	if !ok {
		return "", &arlatin.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "text",
		}
	}

	out := make([]string, len(pt.lines))
	for i, line := range pt.lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && arlatin.ContainsArabic(trimmed) {
			if latin, ok := results[arlatin.HashText(trimmed)]; ok {
				out[i] = preserveWhitespace(line, latin)
				continue
			}
		}
		out[i] = line
	}

	return strings.Join(out, "\n"), nil
}

// ContentType returns "text".
func (p *TextProcessor) ContentType() string {
	return "text"
}

// Verify TextProcessor implements ContentProcessor
var _ ContentProcessor = (*TextProcessor)(nil)
