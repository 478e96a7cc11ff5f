// Package processor provides content processing implementations that locate
// Arabic text inside structured documents and write transliterations back.
package processor

import "github.com/qalamlabs/arlatin"

// ContentProcessor is an alias to the main package interface.
type ContentProcessor = arlatin.ContentProcessor

// TextNode is an alias to the main package type.
type TextNode = arlatin.TextNode
