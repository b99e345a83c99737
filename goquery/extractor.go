// Package goquery provides structural HTML text extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/zipindex"
	"golang.org/x/net/html"
)

// Ensure Extractor implements zipindex.Extractor at compile time.
var _ zipindex.Extractor = (*Extractor)(nil)

// Extractor extracts visible text and links from HTML using a real HTML
// parser.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the visible text and
// links. The subtrees of script, style and noscript elements are
// removed before text extraction; all other text is kept. Text nodes
// are joined with spaces so words in adjacent elements never merge.
func (e *Extractor) ExtractText(rawHTML string) (*zipindex.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, zipindex.Errorf(zipindex.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})

	var b strings.Builder
	for _, node := range doc.Selection.Nodes {
		appendText(&b, node)
	}

	return &zipindex.ExtractResult{
		Text:  strings.TrimSpace(b.String()),
		Links: links,
	}, nil
}

func appendText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}
