// Package regexp provides a regex-based fallback HTML text extractor.
package regexp

import (
	"html"
	"regexp"
	"strings"

	"github.com/fwojciec/zipindex"
)

var (
	scriptRE   = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleRE    = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	noscriptRE = regexp.MustCompile(`(?is)<noscript\b[^>]*>.*?</noscript>`)
	commentRE  = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRE      = regexp.MustCompile(`<[^>]+>`)
	hrefRE     = regexp.MustCompile(`(?is)<a\b[^>]*\bhref\s*=\s*["']([^"']*)["']`)
	spaceRE    = regexp.MustCompile(`\s+`)
)

// Ensure Extractor implements zipindex.Extractor at compile time.
var _ zipindex.Extractor = (*Extractor)(nil)

// Extractor strips markup with regular expressions instead of parsing.
// It exists so the system degrades gracefully without a full HTML
// parser; for well-formed documents it yields the same visible text as
// the structural extractor in the goquery package.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText strips script, style and noscript blocks, comments and
// then all remaining tags, replacing each with a space. Entities are
// unescaped after stripping so encoded markup never re-enters the text.
func (e *Extractor) ExtractText(rawHTML string) (*zipindex.ExtractResult, error) {
	var links []string
	for _, m := range hrefRE.FindAllStringSubmatch(rawHTML, -1) {
		if m[1] != "" {
			links = append(links, m[1])
		}
	}

	text := scriptRE.ReplaceAllString(rawHTML, " ")
	text = styleRE.ReplaceAllString(text, " ")
	text = noscriptRE.ReplaceAllString(text, " ")
	text = commentRE.ReplaceAllString(text, " ")
	text = tagRE.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = spaceRE.ReplaceAllString(text, " ")

	return &zipindex.ExtractResult{
		Text:  strings.TrimSpace(text),
		Links: links,
	}, nil
}
