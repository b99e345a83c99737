package mock

import "github.com/fwojciec/zipindex"

var _ zipindex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of zipindex.Extractor.
type Extractor struct {
	ExtractTextFn func(html string) (*zipindex.ExtractResult, error)
}

func (e *Extractor) ExtractText(html string) (*zipindex.ExtractResult, error) {
	return e.ExtractTextFn(html)
}
