package html

import (
	"strings"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/xmldoc"
)

// Ensure EnumParser implements swdoc.Parser at compile time.
var _ swdoc.Parser = (*EnumParser)(nil)

// EnumParser extracts enumeration pages: the enum name from the page title
// and the name/description rows of the Members table.
type EnumParser struct {
	resolver xmldoc.Resolver
}

// NewEnumParser creates a new EnumParser.
func NewEnumParser(resolver xmldoc.Resolver) *EnumParser {
	return &EnumParser{resolver: resolver}
}

// Parse extracts an EnumRecord from an enumeration page.
func (p *EnumParser) Parse(content string, key swdoc.FileKey, urlPrefix string) (swdoc.Record, error) {
	ex := &enumExtractor{resolver: p.resolver}
	drive(content, ex)

	if ex.title == "" {
		return nil, swdoc.Errorf(swdoc.ENOTFOUND, "page title not found for %q", key.FullTypeName())
	}

	return &swdoc.EnumRecord{
		FileKey: key,
		Name:    ex.title,
		Members: ex.members,
	}, nil
}

type enumExtractor struct {
	resolver xmldoc.Resolver

	title string

	inPagetitle bool
	inMembers   bool
	inTable     bool
	inRow       bool
	inNameCell  bool
	inDescCell  bool

	memberName    string
	memberDescParts []string

	members []swdoc.EnumMember
}

func (ex *enumExtractor) handleStartTag(tag string, attrs map[string]string, raw string) {
	if tag == "span" && attrs["id"] == "pagetitle" {
		ex.inPagetitle = true
		return
	}

	if ex.inMembers && tag == "table" && attrs["class"] == "FilteredItemListTable" {
		ex.inTable = true
		return
	}

	if ex.inTable && tag == "tr" {
		ex.inRow = true
		ex.memberName = ""
		ex.memberDescParts = nil
		return
	}

	if ex.inRow && tag == "td" {
		switch attrs["class"] {
		case "MemberNameCell":
			ex.inNameCell = true
		case "DescriptionCell":
			ex.inDescCell = true
		}
		return
	}

	if ex.inDescCell {
		ex.memberDescParts = append(ex.memberDescParts, raw)
	}
}

func (ex *enumExtractor) handleEndTag(tag string) {
	if tag == "span" && ex.inPagetitle {
		ex.inPagetitle = false
		return
	}

	if tag == "td" {
		if ex.inDescCell {
			ex.inDescCell = false
			return
		}
		if ex.inNameCell {
			ex.inNameCell = false
			return
		}
	}

	// The header row has no name cell and is skipped.
	if tag == "tr" && ex.inRow {
		ex.inRow = false
		if ex.memberName != "" && len(ex.memberDescParts) > 0 {
			desc := strings.TrimSpace(strings.Join(ex.memberDescParts, ""))
			ex.members = append(ex.members, swdoc.EnumMember{
				Name:        ex.memberName,
				Description: ex.resolver.ConvertLinks(desc),
			})
		}
		return
	}

	if tag == "table" && ex.inTable {
		ex.inTable = false
		return
	}

	if ex.inDescCell {
		ex.memberDescParts = append(ex.memberDescParts, "</"+tag+">")
	}
}

func (ex *enumExtractor) handleText(data string) {
	text := strings.TrimSpace(data)

	if ex.inPagetitle && text != "" {
		ex.title = strings.TrimSpace(strings.ReplaceAll(text, " Enumeration", ""))
		return
	}

	if text == "Members" {
		ex.inMembers = true
	}

	if ex.inNameCell && text != "" && ex.memberName == "" {
		ex.memberName = text
	}

	if ex.inDescCell {
		ex.memberDescParts = append(ex.memberDescParts, data)
	}
}
