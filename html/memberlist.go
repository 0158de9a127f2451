package html

import (
	"strings"

	"github.com/jkowalczyk/swdoc"
)

// Ensure MemberListParser implements swdoc.Parser at compile time.
var _ swdoc.Parser = (*MemberListParser)(nil)

// MemberListParser extracts the *_members_* index pages: the owning type
// name from the title and the links under the "Public Properties" and
// "Public Methods" headings.
type MemberListParser struct{}

// NewMemberListParser creates a new MemberListParser.
func NewMemberListParser() *MemberListParser {
	return &MemberListParser{}
}

// Parse extracts a MemberListRecord from a members index page.
func (p *MemberListParser) Parse(content string, key swdoc.FileKey, urlPrefix string) (swdoc.Record, error) {
	ex := &memberListExtractor{urlPrefix: urlPrefix}
	drive(content, ex)

	if ex.title == "" {
		return nil, swdoc.Errorf(swdoc.ENOTFOUND, "page title not found for %q", key.FullTypeName())
	}

	return &swdoc.MemberListRecord{
		FileKey:    key,
		Name:       ex.title,
		Properties: ex.properties,
		Methods:    ex.methods,
	}, nil
}

type memberListExtractor struct {
	urlPrefix string

	title string

	inTitle    bool
	section    string
	inLinkCell bool

	inLink   bool
	linkHref string
	linkText strings.Builder

	properties []swdoc.MemberLink
	methods    []swdoc.MemberLink
}

func (ex *memberListExtractor) handleStartTag(tag string, attrs map[string]string, raw string) {
	if tag == "span" && attrs["id"] == "pagetitle" {
		ex.inTitle = true
		return
	}

	// A new heading resets the section until its text is seen.
	if tag == "h1" {
		ex.section = ""
		return
	}

	if tag == "td" && attrs["class"] == "MembersLinkCell" {
		ex.inLinkCell = true
		return
	}

	if tag == "a" && ex.inLinkCell {
		href := attrs["href"]
		// Skip in-page links like the "Top" anchor.
		if href != "" && !strings.HasPrefix(href, "#") {
			ex.inLink = true
			ex.linkHref = href
			ex.linkText.Reset()
		}
	}
}

func (ex *memberListExtractor) handleEndTag(tag string) {
	if tag == "span" && ex.inTitle {
		ex.inTitle = false
		return
	}

	if tag == "td" && ex.inLinkCell {
		ex.inLinkCell = false
		return
	}

	if tag == "a" && ex.inLink {
		ex.inLink = false
		text := strings.TrimSpace(ex.linkText.String())
		if ex.linkHref != "" && text != "" {
			link := swdoc.MemberLink{Name: text, URL: ex.urlPrefix + ex.linkHref}
			switch ex.section {
			case "properties":
				ex.properties = append(ex.properties, link)
			case "methods":
				ex.methods = append(ex.methods, link)
			}
		}
		ex.linkHref = ""
	}
}

func (ex *memberListExtractor) handleText(data string) {
	text := strings.TrimSpace(data)

	if ex.inTitle && text != "" {
		switch {
		case strings.Contains(text, " Interface Members"):
			ex.title = strings.TrimSpace(strings.ReplaceAll(text, " Interface Members", ""))
		case strings.Contains(text, " Class Members"):
			ex.title = strings.TrimSpace(strings.ReplaceAll(text, " Class Members", ""))
		}
		return
	}

	switch text {
	case "Public Properties":
		ex.section = "properties"
	case "Public Methods":
		ex.section = "methods"
	case "See Also", "Events":
		ex.section = ""
	}

	if ex.inLink {
		ex.linkText.WriteString(data)
	}
}
