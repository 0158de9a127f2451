package xmldoc

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	// anchorRe matches <a href="...">text</a> where the target is an .htm
	// or .html page and the text contains no nested tags.
	anchorRe = regexp.MustCompile(`<a\s+[^>]*?href="([^"]+?\.html?)"[^>]*?>([^<]+?)</a>`)

	tagRe = regexp.MustCompile(`<[^>]+>`)
)

// ConvertLinks rewrites every anchor in an HTML fragment to a
// <see cref="...">/<see href="..."> tag, unescapes common entities, strips
// every remaining tag, and trims the result. Whitespace at the edges of
// the anchor text is hoisted outside the <see> tag so word spacing in the
// reconstructed sentence survives. The visible link text is preserved
// verbatim, including "::" member notation; only the cref attribute uses
// dots.
//
// The function is idempotent on text already free of anchors and never
// produces nested <see> tags.
func (r Resolver) ConvertLinks(fragment string) string {
	result := anchorRe.ReplaceAllStringFunc(fragment, func(m string) string {
		sub := anchorRe.FindStringSubmatch(m)
		href, text := sub[1], sub[2]

		clean := strings.TrimSpace(text)
		prefix := text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))]
		suffix := text[len(strings.TrimRightFunc(text, unicode.IsSpace)):]

		ref := r.Resolve(href)
		if ref.IsTypeRef() {
			return fmt.Sprintf("%s<see cref=%q>%s</see>%s", prefix, ref.Cref, clean, suffix)
		}
		return fmt.Sprintf("%s<see href=%q>%s</see>%s", prefix, ref.URL, clean, suffix)
	})

	// Replacements run in order: &amp;lt; unescapes all the way to "<",
	// matching how the source corpus is encoded.
	result = strings.ReplaceAll(result, "&nbsp;", " ")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")

	result = tagRe.ReplaceAllStringFunc(result, func(tag string) string {
		if isSeeTag(tag) {
			return tag
		}
		return ""
	})

	return strings.TrimSpace(result)
}

// isSeeTag reports whether tag is <see ...>, <see>, or </see>.
func isSeeTag(tag string) bool {
	inner := strings.TrimPrefix(tag[1:len(tag)-1], "/")
	if inner == "see" {
		return true
	}
	if rest, ok := strings.CutPrefix(inner, "see"); ok {
		return len(rest) > 0 && unicode.IsSpace(rune(rest[0]))
	}
	return false
}
