package mock

import "github.com/jkowalczyk/swdoc"

var _ swdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of swdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*swdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*swdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
