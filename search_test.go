package zipindex_test

import (
	"testing"

	"github.com/fwojciec/zipindex"
	"github.com/fwojciec/zipindex/mock"
	"github.com/stretchr/testify/assert"
)

func testIndex(filter zipindex.TokenFilter) *zipindex.Index {
	return zipindex.NewIndex([]*zipindex.Document{
		{Name: "Jan/x.html", Tokens: zipindex.NewTokenSet([]string{"penguin", "weather"})},
		{Name: "Jan/aol.html", Tokens: zipindex.NewTokenSet([]string{"the", "subject", "of"})},
		{Name: "Jan/bbc.html", Tokens: zipindex.NewTokenSet([]string{"subject", "weather"})},
	}, filter)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	t.Run("returns matches in lexicographic order", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t, []string{"Jan/aol.html", "Jan/bbc.html"}, zipindex.Search(idx, "subject"))
	})

	t.Run("membership holds iff the token is in the document set", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)
		matches := zipindex.Search(idx, "subject")

		assert.Contains(t, matches, "Jan/aol.html")
		assert.NotContains(t, matches, "Jan/x.html")
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t, zipindex.Search(idx, "subject"), zipindex.Search(idx, "Subject"))
	})

	t.Run("empty term matches nothing", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Empty(t, zipindex.Search(idx, ""))
	})

	t.Run("no match is an empty result, not an error", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Empty(t, zipindex.Search(idx, "zebra"))
	})

	t.Run("repeated calls return identical sequences", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)
		first := zipindex.Search(idx, "weather")
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, zipindex.Search(idx, "weather"))
		}
	})

	t.Run("consults the token filter to short-circuit misses", func(t *testing.T) {
		t.Parallel()

		var tested []string
		filter := &mock.TokenFilter{
			TestFn: func(token string) bool {
				tested = append(tested, token)
				return token != "zebra"
			},
		}
		idx := testIndex(filter)

		assert.Empty(t, zipindex.Search(idx, "zebra"))
		assert.Equal(t, []string{"Jan/aol.html", "Jan/bbc.html"}, zipindex.Search(idx, "subject"))
		assert.Equal(t, []string{"zebra", "subject"}, tested)
	})
}

func TestSearchQuery(t *testing.T) {
	t.Parallel()

	t.Run("plain term behaves like Search", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t, zipindex.Search(idx, "subject"), zipindex.SearchQuery(idx, "subject"))
	})

	t.Run("or is union", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t,
			[]string{"Jan/aol.html", "Jan/bbc.html", "Jan/x.html"},
			zipindex.SearchQuery(idx, "subject or penguin"))
	})

	t.Run("and is intersection", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t,
			[]string{"Jan/bbc.html"},
			zipindex.SearchQuery(idx, "subject and weather"))
	})

	t.Run("but is difference", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t,
			[]string{"Jan/aol.html"},
			zipindex.SearchQuery(idx, "subject but weather"))
	})

	t.Run("connectives are case-insensitive", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t,
			zipindex.SearchQuery(idx, "subject and weather"),
			zipindex.SearchQuery(idx, "Subject AND Weather"))
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Empty(t, zipindex.SearchQuery(idx, ""))
		assert.Empty(t, zipindex.SearchQuery(idx, "   "))
	})
}

func TestIndex(t *testing.T) {
	t.Parallel()

	t.Run("documents are ordered lexicographically regardless of input order", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		assert.Equal(t, []string{"Jan/aol.html", "Jan/bbc.html", "Jan/x.html"}, idx.Documents())
		assert.Equal(t, 3, idx.Len())
	})

	t.Run("documents returns a copy", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)
		names := idx.Documents()
		names[0] = "mutated"

		assert.Equal(t, "Jan/aol.html", idx.Documents()[0])
	})

	t.Run("doc lookup", func(t *testing.T) {
		t.Parallel()

		idx := testIndex(nil)

		doc, ok := idx.Doc("Jan/aol.html")
		assert.True(t, ok)
		assert.True(t, doc.Tokens.Contains("subject"))

		_, ok = idx.Doc("Jan/missing.html")
		assert.False(t, ok)
	})
}
