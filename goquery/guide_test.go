package goquery_test

import (
	"testing"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/goquery"
	"github.com/jkowalczyk/swdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the main content container", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Doc Title</title></head><body>
<span id="pagetitle">Getting Started</span>
<div id="mainbody"><h2>Overview</h2><p>Guide content.</p></div>
<div class="footer">ignored</div>
</body></html>`

		e := goquery.NewGuideExtractor(nil)
		result, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "Getting Started", result.Title)
		assert.Contains(t, result.ContentHTML, "Guide content.")
		assert.NotContains(t, result.ContentHTML, "ignored")
	})

	t.Run("falls back to the document title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Doc Title</title></head><body>
<div class="MCPageBody"><p>Body.</p></div>
</body></html>`

		e := goquery.NewGuideExtractor(nil)
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Equal(t, "Doc Title", result.Title)
	})

	t.Run("skips empty containers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="mainbody">   </div>
<div class="content"><p>Real content.</p></div>
</body></html>`

		e := goquery.NewGuideExtractor(nil)
		result, err := e.Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Real content.")
	})

	t.Run("delegates to the fallback when no selector matches", func(t *testing.T) {
		t.Parallel()

		fallback := &mock.Extractor{
			ExtractFn: func(html string) (*swdoc.ExtractResult, error) {
				return &swdoc.ExtractResult{ContentHTML: "<p>from fallback</p>"}, nil
			},
		}

		// goquery wraps bare fragments in html/body, so body always matches;
		// an empty body falls through every selector.
		e := goquery.NewGuideExtractor(fallback)
		result, err := e.Extract(`<html><head><title>Bare</title></head><body></body></html>`)
		require.NoError(t, err)

		assert.Equal(t, "<p>from fallback</p>", result.ContentHTML)
		// The missing fallback title is filled from the page.
		assert.Equal(t, "Bare", result.Title)
	})

	t.Run("returns ENOTFOUND without content or fallback", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewGuideExtractor(nil)
		_, err := e.Extract(`<html><body></body></html>`)
		assert.Equal(t, swdoc.ENOTFOUND, swdoc.ErrorCode(err))
	})
}
