package mock

import "github.com/jkowalczyk/swdoc"

var _ swdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of swdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
