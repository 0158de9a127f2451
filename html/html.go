// Package html implements swdoc.Parser for the four vendor page layouts
// (type, member, enum, member list) using the golang.org/x/net/html
// tokenizer. Each parser is a small state machine driven over the token
// stream; sections of the page are captured as raw HTML and rewritten to
// <see> markup afterwards.
package html

import (
	"strings"

	"golang.org/x/net/html"
)

// tokenHandler receives the token stream from drive. Self-closing tags are
// delivered as a start tag immediately followed by an end tag. Text arrives
// with entities already unescaped.
type tokenHandler interface {
	handleStartTag(tag string, attrs map[string]string, raw string)
	handleEndTag(tag string)
	handleText(data string)
}

// drive tokenizes content and feeds every token to h. Tokenizer errors end
// the stream silently; vendor pages are routinely malformed and the state
// machines are written to tolerate truncation.
func drive(content string, h tokenHandler) {
	z := html.NewTokenizer(strings.NewReader(content))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				attrs[a.Key] = a.Val
			}
			h.handleStartTag(t.Data, attrs, t.String())
			if t.Type == html.SelfClosingTagToken {
				h.handleEndTag(t.Data)
			}
		case html.EndTagToken:
			t := z.Token()
			h.handleEndTag(t.Data)
		case html.TextToken:
			h.handleText(string(z.Text()))
		}
	}
}
