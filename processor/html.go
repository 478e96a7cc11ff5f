package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/qalamlabs/arlatin"
	"golang.org/x/net/html"
)

// HTMLProcessor extracts Arabic-bearing text nodes from HTML content and
// applies transliterations back. Text nodes without Arabic codepoints are
// left strictly alone.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: arlatin.IgnoredTags,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
	}
}

// parsedHTML holds the parsed document.
type parsedHTML struct {
	doc *goquery.Document
}

// skip reports whether an element subtree is excluded from processing:
// ignored tags and anything carrying data-no-transliterate.
func (p *HTMLProcessor) skip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if p.ignoredTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "data-no-transliterate" {
			return true
		}
	}
	return false
}

// Extract parses HTML and collects the text nodes containing Arabic.
func (p *HTMLProcessor) Extract(content string) (interface{}, []arlatin.TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &arlatin.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var nodes []arlatin.TextNode
	seenHashes := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)

			if trimmed != "" && arlatin.ContainsArabic(trimmed) {
				hash := arlatin.HashText(trimmed)

				// Deduplicate by hash
				if !seenHashes[hash] {
					seenHashes[hash] = true

					node := arlatin.TextNode{
						ID:       fmt.Sprintf("node-%d", len(nodes)),
						Text:     trimmed,
						Hash:     hash,
						NodeType: "html_text",
						Metadata: map[string]string{
							"dir": arlatin.Direction(trimmed),
						},
					}

					if n.Parent != nil {
						node.Metadata["parent_tag"] = n.Parent.Data
					}

					nodes = append(nodes, node)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return &parsedHTML{doc: doc}, nodes, nil
}

// Apply writes transliterations back into the document, preserving each
// text node's surrounding whitespace.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []arlatin.TextNode, results map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &arlatin.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)

			if trimmed != "" && arlatin.ContainsArabic(trimmed) {
				if latin, ok := results[arlatin.HashText(trimmed)]; ok {
					n.Data = preserveWhitespace(n.Data, latin)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	ph.doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	out, err := ph.doc.Html()
	if err != nil {
		return "", &arlatin.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

// preserveWhitespace preserves the original leading/trailing whitespace.
func preserveWhitespace(original, replacement string) string {
	leadingLen := len(original) - len(strings.TrimLeft(original, " \t\n\r"))
	leading := original[:leadingLen]

	trailingLen := len(original) - len(strings.TrimRight(original, " \t\n\r"))
	trailing := ""
	if trailingLen > 0 {
		trailing = original[len(original)-trailingLen:]
	}

	return leading + replacement + trailing
}

// Verify HTMLProcessor implements ContentProcessor
var _ ContentProcessor = (*HTMLProcessor)(nil)
