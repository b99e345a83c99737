// Package indexer builds word indexes from archives of HTML documents.
package indexer

import (
	"context"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/zipindex"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel entry processing when Concurrency
// is unset.
const DefaultConcurrency = 8

// Ensure Indexer implements zipindex.IndexBuilder at compile time.
var _ zipindex.IndexBuilder = (*Indexer)(nil)

// Indexer builds an Index from an archive of HTML documents. Entries
// are processed concurrently; the completed Index is not returned until
// every entry has been processed, so callers never observe a partial
// index.
type Indexer struct {
	Opener    zipindex.ArchiveOpener
	Extractor zipindex.Extractor
	Locator   zipindex.Locator

	// Concurrency limits parallel entry processing. Defaults to
	// DefaultConcurrency when zero or negative.
	Concurrency int

	// NewTokenFilter, when set, supplies a token pre-filter sized for n
	// expected tokens. The populated filter is attached to the Index.
	NewTokenFilter func(n uint) zipindex.TokenFilter

	// OnEntryError, when set, is invoked for entries whose content
	// could not be read or parsed. Such entries are recorded with an
	// empty token set; they never fail the build.
	OnEntryError func(name string, err error)
}

// LocateAndBuild resolves the archive location via the Locator and
// builds the index from it. explicit may be empty.
func (ix *Indexer) LocateAndBuild(ctx context.Context, explicit string) (*zipindex.Index, error) {
	path, err := ix.Locator.Locate(explicit)
	if err != nil {
		return nil, err
	}
	return ix.Build(ctx, path)
}

// Build reads the archive at path and returns the completed Index.
// Entries whose name does not end in ".html" (case-insensitive) are
// skipped. An archive with no qualifying entries yields an empty Index,
// not an error. Returns EUNREADABLE if the archive itself cannot be
// opened.
func (ix *Indexer) Build(ctx context.Context, path string) (*zipindex.Index, error) {
	archive, err := ix.Opener.OpenArchive(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	var entries []zipindex.Entry
	for _, e := range archive.Entries() {
		if strings.HasSuffix(strings.ToLower(e.Name()), ".html") {
			entries = append(entries, e)
		}
	}

	docs := make([]*zipindex.Document, len(entries))

	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i] = ix.processEntry(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var filter zipindex.TokenFilter
	if ix.NewTokenFilter != nil {
		var n uint
		for _, doc := range docs {
			n += uint(doc.Tokens.Len())
		}
		if n == 0 {
			n = 1
		}
		filter = ix.NewTokenFilter(n)
		for _, doc := range docs {
			for tok := range doc.Tokens {
				filter.Add(tok)
			}
		}
	}

	return zipindex.NewIndex(docs, filter), nil
}

// processEntry reads, extracts and tokenizes one entry. Failures are
// contained: the entry is recorded with an empty token set and the
// build continues.
func (ix *Indexer) processEntry(e zipindex.Entry) *zipindex.Document {
	doc := &zipindex.Document{Name: e.Name(), Tokens: zipindex.TokenSet{}}

	rc, err := e.Open()
	if err != nil {
		ix.entryError(e.Name(), err)
		return doc
	}
	raw, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		ix.entryError(e.Name(), err)
		return doc
	}

	doc.ContentHash = xxhash.Sum64(raw)

	res, err := ix.Extractor.ExtractText(string(raw))
	if err != nil {
		ix.entryError(e.Name(), err)
		return doc
	}

	doc.Tokens = zipindex.NewTokenSet(zipindex.Tokenize(res.Text))
	doc.Links = res.Links
	return doc
}

func (ix *Indexer) entryError(name string, err error) {
	if ix.OnEntryError != nil {
		ix.OnEntryError(name, err)
	}
}
