package mock

import "github.com/jkowalczyk/swdoc"

var _ swdoc.Parser = (*Parser)(nil)

// Parser is a mock implementation of swdoc.Parser.
type Parser struct {
	ParseFn func(content string, key swdoc.FileKey, urlPrefix string) (swdoc.Record, error)
}

func (p *Parser) Parse(content string, key swdoc.FileKey, urlPrefix string) (swdoc.Record, error) {
	return p.ParseFn(content, key, urlPrefix)
}
