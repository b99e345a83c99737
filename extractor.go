package zipindex

// ExtractResult holds the visible text and hyperlinks of one HTML
// document.
type ExtractResult struct {
	// Text is the document's visible text with markup removed.
	Text string

	// Links holds the href attribute values of the document's anchors,
	// in document order.
	Links []string
}

// Extractor extracts visible text from HTML. Markup is removed and the
// textual content of script, style and noscript elements is discarded;
// all other text is kept.
type Extractor interface {
	// ExtractText processes raw HTML and returns the visible text and
	// links.
	ExtractText(html string) (*ExtractResult, error)
}
