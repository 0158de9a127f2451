// Package goquery implements CSS-selector based content extraction for
// programming-guide pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jkowalczyk/swdoc"
)

// Ensure GuideExtractor implements swdoc.Extractor at compile time.
var _ swdoc.Extractor = (*GuideExtractor)(nil)

// contentSelectors are tried in order; the first match wins. Guide pages
// share a fixed layout, so the list is short and ordered from the most
// specific container to the page body.
var contentSelectors = []string{
	"#mainbody",
	"div.MCPageBody",
	"div#contentwrapper",
	"div.content",
	"body",
}

// GuideExtractor isolates the main content of a guide page. When no
// selector matches, extraction falls through to the optional Fallback.
type GuideExtractor struct {
	Fallback swdoc.Extractor
}

// NewGuideExtractor creates a new GuideExtractor.
func NewGuideExtractor(fallback swdoc.Extractor) *GuideExtractor {
	return &GuideExtractor{Fallback: fallback}
}

// Extract returns the page title and the main content HTML.
func (e *GuideExtractor) Extract(html string) (*swdoc.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, swdoc.Errorf(swdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("span#pagetitle").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}
		return &swdoc.ExtractResult{Title: title, ContentHTML: content}, nil
	}

	if e.Fallback != nil {
		result, err := e.Fallback.Extract(html)
		if err != nil {
			return nil, err
		}
		if result.Title == "" {
			result.Title = title
		}
		return result, nil
	}

	return nil, swdoc.Errorf(swdoc.ENOTFOUND, "no content found in guide page")
}
