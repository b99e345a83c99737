package regexp_test

import (
	"testing"

	"github.com/fwojciec/zipindex"
	"github.com/fwojciec/zipindex/goquery"
	ziregexp "github.com/fwojciec/zipindex/regexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("keeps visible text and strips tags", func(t *testing.T) {
		t.Parallel()

		res, err := ziregexp.NewExtractor().ExtractText("<h1>Inbox</h1><p>the subject of the message</p>")

		require.NoError(t, err)
		tokens := zipindex.NewTokenSet(zipindex.Tokenize(res.Text))
		assert.True(t, tokens.Contains("inbox"))
		assert.True(t, tokens.Contains("subject"))
	})

	t.Run("discards script style and noscript content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>visible</p>
<SCRIPT type="text/javascript">var scriptsecret = 1;
function f() {}</SCRIPT>
<style media="screen">.stylesecret { color: red }</style>
<noscript>noscriptsecret</noscript>
</body></html>`

		res, err := ziregexp.NewExtractor().ExtractText(html)

		require.NoError(t, err)
		tokens := zipindex.NewTokenSet(zipindex.Tokenize(res.Text))
		assert.True(t, tokens.Contains("visible"))
		assert.False(t, tokens.Contains("scriptsecret"))
		assert.False(t, tokens.Contains("stylesecret"))
		assert.False(t, tokens.Contains("noscriptsecret"))
	})

	t.Run("discards comments and entity names", func(t *testing.T) {
		t.Parallel()

		res, err := ziregexp.NewExtractor().ExtractText("<p>a &amp; b</p><!-- commentsecret -->")

		require.NoError(t, err)
		tokens := zipindex.NewTokenSet(zipindex.Tokenize(res.Text))
		assert.False(t, tokens.Contains("amp"))
		assert.False(t, tokens.Contains("commentsecret"))
	})

	t.Run("collects hrefs", func(t *testing.T) {
		t.Parallel()

		res, err := ziregexp.NewExtractor().ExtractText(
			`<a href="first.html">one</a> <A HREF='second.html'>two</A>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"first.html", "second.html"}, res.Links)
	})

	t.Run("produces the same token set as the structural extractor for well-formed HTML", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Weather Report</title>
<style>.hidden { display: none }</style>
<script>trackPageView();</script>
</head>
<body>
<h1>Forecast</h1>
<p>Cold air moves in, with snow expected by morning.</p>
<a href="tomorrow.html">tomorrow</a>
<noscript>Enable scripts for the radar map.</noscript>
</body>
</html>`

		structural, err := goquery.NewExtractor().ExtractText(html)
		require.NoError(t, err)
		fallback, err := ziregexp.NewExtractor().ExtractText(html)
		require.NoError(t, err)

		want := zipindex.NewTokenSet(zipindex.Tokenize(structural.Text))
		got := zipindex.NewTokenSet(zipindex.Tokenize(fallback.Text))
		assert.True(t, want.Equal(got), "structural %v != fallback %v", want, got)
		assert.Equal(t, structural.Links, fallback.Links)
	})
}
