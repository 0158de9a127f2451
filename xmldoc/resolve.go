// Package xmldoc implements the XMLDoc identifier grammar: cross-reference
// resolution from vendor hrefs, anchor-to-<see> rewriting, and ID string
// generation per Microsoft's documentation-comment rules.
package xmldoc

import "strings"

// CrossRef is a resolved link target: either a typed identifier (Cref) or
// an absolute URL. Exactly one field is set.
type CrossRef struct {
	Cref string
	URL  string
}

// IsTypeRef reports whether the reference resolved to an identifier.
func (c CrossRef) IsTypeRef() bool { return c.Cref != "" }

// Resolver classifies raw hrefs found in vendor markup. The base URLs are
// injected configuration, never computed, so the resolver stays
// URL-prefix-agnostic.
type Resolver struct {
	// DocRootURL is the documentation root one level above the API
	// reference directory; "../" links resolve against it.
	DocRootURL string

	// BaseURL is the current-directory base for plain relative links.
	BaseURL string
}

// Resolve maps a raw href to a CrossRef. It never fails: anything that is
// not a type reference degrades to an external link.
func (r Resolver) Resolve(href string) CrossRef {
	if cref, ok := parseCref(href); ok {
		return CrossRef{Cref: cref}
	}
	return CrossRef{URL: r.absoluteURL(href)}
}

// parseCref extracts an XMLDoc identifier from hrefs of the form
// Assembly~Namespace.Type[~Member].html, or from a bare dotted
// Namespace.Type token with no path components. The assembly segment is
// dropped: XMLDoc identifiers never include assembly names.
func parseCref(href string) (string, bool) {
	filename := href
	if i := strings.LastIndexAny(href, `/\`); i >= 0 {
		filename = href[i+1:]
	}
	filename = strings.ReplaceAll(filename, ".html", "")
	filename = strings.ReplaceAll(filename, ".htm", "")

	if !strings.Contains(filename, "~") && !strings.Contains(filename, ".") {
		return "", false
	}

	parts := strings.Split(filename, "~")
	if len(parts) >= 2 {
		return strings.Join(parts[1:], "."), true
	}
	if strings.Contains(parts[0], ".") &&
		!strings.ContainsAny(href, `/\`) &&
		!strings.Contains(href, "..") {
		return parts[0], true
	}
	return "", false
}

func (r Resolver) absoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "../") {
		return r.DocRootURL + strings.TrimPrefix(href, "../")
	}
	return r.BaseURL + href
}
