package html

import (
	"regexp"
	"strings"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/xmldoc"
)

// Ensure TypeParser implements swdoc.Parser at compile time.
var _ swdoc.Parser = (*TypeParser)(nil)

// TypeParser extracts type pages: the page title, the prose between the
// title and the first h1 (description), the Remarks section, and the list
// of example links.
type TypeParser struct {
	resolver xmldoc.Resolver
}

// NewTypeParser creates a new TypeParser.
func NewTypeParser(resolver xmldoc.Resolver) *TypeParser {
	return &TypeParser{resolver: resolver}
}

// Parse extracts a TypeRecord from a type page.
func (p *TypeParser) Parse(content string, key swdoc.FileKey, urlPrefix string) (swdoc.Record, error) {
	ex := &typeExtractor{urlPrefix: urlPrefix}
	ex.remarks.divCloses = true
	drive(content, ex)

	if ex.title == "" {
		return nil, swdoc.Errorf(swdoc.ENOTFOUND, "page title not found for %q", key.FullTypeName())
	}

	return &swdoc.TypeRecord{
		FileKey:     key,
		Name:        ex.title,
		Description: p.resolver.ConvertLinks(ex.desc.html()),
		Remarks:     p.resolver.ConvertLinks(ex.remarks.html()),
		Examples:    ex.examples,
	}, nil
}

// exampleLinkRe splits "Create Advanced Hole Feature (VBA)" into a name and
// a language.
var exampleLinkRe = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)

type typeExtractor struct {
	urlPrefix string

	title string

	inPagetitle   bool
	seenPagetitle bool
	seenFirstH1   bool

	inH1   bool
	h1Text strings.Builder

	desc    capture
	remarks capture

	inExamples bool

	inLink   bool
	linkHref string
	linkText strings.Builder

	examples []swdoc.Example
}

func (ex *typeExtractor) handleStartTag(tag string, attrs map[string]string, raw string) {
	if tag == "span" && attrs["id"] == "pagetitle" {
		ex.inPagetitle = true
		return
	}

	if tag == "h1" {
		// The first h1 after the title ends the description.
		if ex.seenPagetitle && !ex.seenFirstH1 {
			ex.seenFirstH1 = true
			ex.desc.stop()
		}
		ex.inH1 = true
		ex.h1Text.Reset()
		return
	}

	ex.desc.startTag(raw)
	ex.remarks.startTag(raw)

	if ex.inExamples && tag == "a" {
		href := attrs["href"]
		if href != "" && !strings.HasPrefix(href, "#") && isExampleLink(href) {
			ex.inLink = true
			ex.linkHref = href
			ex.linkText.Reset()
		}
	}
}

func (ex *typeExtractor) handleEndTag(tag string) {
	if tag == "span" && ex.inPagetitle {
		ex.inPagetitle = false
		ex.seenPagetitle = true
		ex.desc.start()
		return
	}

	if tag == "h1" {
		ex.inH1 = false
		ex.applySection(strings.TrimSpace(ex.h1Text.String()))
		return
	}

	if tag == "a" && ex.inLink {
		ex.inLink = false
		if ex.linkHref != "" && ex.linkText.Len() > 0 {
			if e, ok := parseExampleLink(ex.linkText.String(), ex.linkHref, ex.urlPrefix); ok {
				ex.examples = append(ex.examples, e)
			}
		}
		ex.linkHref = ""
	}

	ex.desc.endTag(tag)
	ex.remarks.endTag(tag)
}

func (ex *typeExtractor) handleText(data string) {
	text := strings.TrimSpace(data)

	if ex.inPagetitle && text != "" {
		name := strings.ReplaceAll(text, " Interface", "")
		name = strings.ReplaceAll(name, " Class", "")
		name = strings.ReplaceAll(name, " Enumeration", "")
		ex.title = strings.TrimSpace(name)
		return
	}

	if ex.inH1 {
		ex.h1Text.WriteString(data)
		return
	}

	ex.desc.text(data)
	ex.remarks.text(data)

	if ex.inLink {
		ex.linkText.WriteString(data)
	}
}

// applySection routes an h1 heading to the section it opens. Headings
// outside the known set leave the current section running.
func (ex *typeExtractor) applySection(heading string) {
	switch heading {
	case "Example", "Examples":
		ex.inExamples = true
		ex.remarks.stop()
	case "Remarks":
		ex.inExamples = false
		ex.remarks.start()
	case "See Also", "Accessors", "Access Diagram", ".NET Syntax":
		ex.inExamples = false
		ex.remarks.stop()
	}
}

// isExampleLink reports whether href points at an example page rather than
// a type reference. Example pages end in .htm, type pages in .html.
func isExampleLink(href string) bool {
	return strings.Contains(href, "Example") && strings.HasSuffix(href, ".htm")
}

// parseExampleLink splits a link text like "Create Advanced Hole Feature
// (VBA)" into a name and a language. When the text carries no parenthesized
// language the language is inferred from the filename.
func parseExampleLink(text, href, urlPrefix string) (swdoc.Example, bool) {
	var name, language string
	if m := exampleLinkRe.FindStringSubmatch(text); m != nil {
		name = strings.TrimSpace(m[1])
		language = strings.TrimSpace(m[2])
	} else {
		name = strings.TrimSpace(text)
		language = inferLanguage(href)
	}
	if name == "" {
		return swdoc.Example{}, false
	}
	return swdoc.Example{
		Name:     name,
		Language: language,
		URL:      urlPrefix + href,
	}, true
}

func inferLanguage(filename string) string {
	f := strings.ToLower(filename)
	switch {
	case strings.Contains(f, "vbnet") || strings.Contains(f, "_net.htm"):
		return "VB.NET"
	case strings.Contains(f, "_vb.htm") || strings.Contains(f, "vba"):
		return "VBA"
	case strings.Contains(f, "csharp") || strings.Contains(f, "_cs.htm"):
		return "C#"
	case strings.Contains(f, "cpp"):
		return "C++"
	default:
		return "Unknown"
	}
}
