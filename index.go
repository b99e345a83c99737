package zipindex

import (
	"context"
	"sort"
)

// TokenSet is the set of distinct lowercase alphabetic words extracted
// from one document's visible text.
type TokenSet map[string]struct{}

// NewTokenSet builds a TokenSet from a token slice, collapsing
// duplicates.
func NewTokenSet(tokens []string) TokenSet {
	set := make(TokenSet, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Contains reports whether token is a member of the set.
func (s TokenSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of distinct tokens in the set.
func (s TokenSet) Len() int { return len(s) }

// Equal reports whether both sets contain exactly the same tokens.
func (s TokenSet) Equal(other TokenSet) bool {
	if len(s) != len(other) {
		return false
	}
	for tok := range s {
		if _, ok := other[tok]; !ok {
			return false
		}
	}
	return true
}

// Document is one indexed HTML entry from the source archive.
type Document struct {
	// Name is the entry's relative path inside the archive.
	Name string

	// Tokens is the document's distinct lowercase word set.
	Tokens TokenSet

	// Links holds the href values found in the document, in document
	// order.
	Links []string

	// ContentHash is an xxhash digest of the entry's raw bytes.
	ContentHash uint64
}

// Index is an immutable mapping from document identifier to token set,
// built from one archive. A rebuild produces a fresh Index; the old one
// stays valid for queries already holding it.
type Index struct {
	docs   map[string]*Document
	names  []string
	filter TokenFilter
}

// NewIndex assembles an Index from fully processed documents. Document
// order exposed by the Index is lexicographic by name regardless of the
// order in which documents were produced. The filter, when non-nil, must
// already contain every token of every document; it is consulted by
// Search to short-circuit guaranteed misses.
func NewIndex(docs []*Document, filter TokenFilter) *Index {
	byName := make(map[string]*Document, len(docs))
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		byName[doc.Name] = doc
		names = append(names, doc.Name)
	}
	sort.Strings(names)
	return &Index{docs: byName, names: names, filter: filter}
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int { return len(idx.names) }

// Documents returns the document identifiers in lexicographic order.
// The returned slice is a copy.
func (idx *Index) Documents() []string {
	names := make([]string, len(idx.names))
	copy(names, idx.names)
	return names
}

// Doc returns the document with the given identifier.
func (idx *Index) Doc(name string) (*Document, bool) {
	doc, ok := idx.docs[name]
	return doc, ok
}

// TokenFilter is a probabilistic membership pre-filter over every token
// in an index. Test may report false positives, never false negatives.
type TokenFilter interface {
	Add(token string)
	Test(token string) bool
}

// IndexBuilder builds an Index from an archive on disk.
type IndexBuilder interface {
	// Build reads the archive at path and returns the completed Index.
	// Returns EUNREADABLE if the archive cannot be opened or read.
	// An archive with no .html entries yields an empty Index, not an
	// error.
	Build(ctx context.Context, path string) (*Index, error)
}
