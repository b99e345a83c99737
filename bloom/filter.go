// Package bloom provides token membership pre-filtering using Bloom
// filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/fwojciec/zipindex"
)

// DefaultFalsePositiveRate is the acceptable false positive rate for
// the token pre-filter. A false positive only costs one full index
// scan; a false negative would lose a match, which the filter never
// produces.
const DefaultFalsePositiveRate = 0.01

// Ensure Filter implements zipindex.TokenFilter at compile time.
var _ zipindex.TokenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter over every token in an index.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected tokens
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewTokenFilter creates a filter sized for n expected tokens with
// DefaultFalsePositiveRate. Its signature matches the indexer's
// NewTokenFilter hook.
func NewTokenFilter(n uint) zipindex.TokenFilter {
	return NewFilter(n, DefaultFalsePositiveRate)
}

// Add adds a token to the filter.
func (f *Filter) Add(token string) {
	f.f.AddString(token)
}

// Test returns true if the token might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(token string) bool {
	return f.f.TestString(token)
}

// EstimatedCount returns the approximate number of tokens in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
