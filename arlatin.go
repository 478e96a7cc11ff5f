// Package arlatin transliterates Arabic-script personal names into
// Latin script suitable for identity documents.
//
// Arlatin uses a two-tier strategy: an exact full-word dictionary of known
// names and name segments, falling back to letter-by-letter mapping with
// Arabic-specific phonological rules (definite-article sun-letter
// assimilation and configurable rendering of the final tāʼ marbūṭa).
// Regional mapping variants are selected through a permissive registry.
//
// Basic usage:
//
//	import (
//	    "github.com/qalamlabs/arlatin"
//	    "github.com/qalamlabs/arlatin/mapping"
//	)
//
//	func main() {
//	    e := arlatin.NewFromSelector(mapping.Default)
//
//	    fmt.Println(e.Transliterate("عبدالله", true))   // Abdullah
//	    fmt.Println(e.Transliterate("عبد الرحمن", true)) // Abd Al-Rahman
//	}
//
// HTML documents can be processed in bulk through a registered content
// processor, optionally backed by an in-memory or Redis result cache:
//
//	e := arlatin.NewFromSelector(mapping.Default,
//	    arlatin.WithCache(cache.NewInMemoryCache(3600)),
//	    arlatin.WithProcessor(processor.NewHTMLProcessor()),
//	)
//	result, err := e.ProcessHTML("<p>محمد علي</p>")
package arlatin
