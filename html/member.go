package html

import (
	"regexp"
	"strings"

	"github.com/jkowalczyk/swdoc"
	"github.com/jkowalczyk/swdoc/xmldoc"
)

// Ensure MemberParser implements swdoc.Parser at compile time.
var _ swdoc.Parser = (*MemberParser)(nil)

// MemberParser extracts method and property pages: the member name and kind
// from the page title, the description, the C# signature from the .NET
// Syntax section, the parameter list, the return value, and the Remarks
// section.
type MemberParser struct {
	resolver xmldoc.Resolver
}

// NewMemberParser creates a new MemberParser.
func NewMemberParser(resolver xmldoc.Resolver) *MemberParser {
	return &MemberParser{resolver: resolver}
}

// Parse extracts a MemberRecord from a member page.
func (p *MemberParser) Parse(content string, key swdoc.FileKey, urlPrefix string) (swdoc.Record, error) {
	ex := &memberExtractor{resolver: p.resolver}
	ex.returns.divCloses = true
	ex.remarks.divCloses = true
	drive(content, ex)

	if ex.memberName == "" {
		return nil, swdoc.Errorf(swdoc.ENOTFOUND, "page title not found for %q", key.FullTypeName())
	}

	return &swdoc.MemberRecord{
		FileKey:     key,
		Name:        ex.memberName,
		MemberKind:  ex.memberKind,
		OwnerType:   ex.ownerType,
		Signature:   CleanSignature(strings.Join(ex.signatureParts, "")),
		Description: p.resolver.ConvertLinks(ex.desc.html()),
		Parameters:  ex.parameters,
		Returns:     p.resolver.ConvertLinks(ex.returns.html()),
		Remarks:     p.resolver.ConvertLinks(ex.remarks.html()),
	}, nil
}

var (
	// memberTitleRe parses page titles like
	// "InsertCavity3 Method (IAssemblyDoc)".
	memberTitleRe = regexp.MustCompile(`^(.+?)\s+(Method|Property)\s+\((.+?)\)`)

	// returnTypeRe matches the leading return type of a C# signature so it
	// can be stripped, leaving "Name(params)".
	returnTypeRe = regexp.MustCompile(`^[\w\.\[\]<>,\s]+?\s+(.+)$`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanSignature collapses whitespace and strips the leading return type.
func CleanSignature(signature string) string {
	signature = strings.TrimSpace(signature)
	signature = whitespaceRe.ReplaceAllString(signature, " ")
	if m := returnTypeRe.FindStringSubmatch(signature); m != nil {
		signature = m[1]
	}
	return signature
}

type memberExtractor struct {
	resolver xmldoc.Resolver

	memberName string
	memberKind string
	ownerType  string

	inPagetitle   bool
	seenPagetitle bool
	seenFirstH1   bool

	inH1   bool
	h1Text strings.Builder
	inH4   bool
	h4Text strings.Builder

	desc    capture
	returns capture
	remarks capture

	inCSSyntax    bool
	inSyntaxTable bool
	preDepth      int
	signatureParts []string

	inParams      bool
	inParamDT     bool
	inParamDD     bool
	paramName     string
	paramDescParts []string
	parameters    []swdoc.Parameter
}

func (ex *memberExtractor) handleStartTag(tag string, attrs map[string]string, raw string) {
	if tag == "span" && attrs["id"] == "pagetitle" {
		ex.inPagetitle = true
		return
	}

	if tag == "h1" {
		if ex.seenPagetitle && !ex.seenFirstH1 {
			ex.seenFirstH1 = true
			ex.desc.stop()
		}
		ex.inH1 = true
		ex.h1Text.Reset()
		return
	}

	if tag == "h4" {
		ex.inH4 = true
		ex.h4Text.Reset()
		return
	}

	if tag == "div" && attrs["id"] == "Syntax_CS" {
		ex.inCSSyntax = true
		return
	}

	if ex.inCSSyntax && tag == "table" && strings.Contains(attrs["class"], "syntaxtable") {
		ex.inSyntaxTable = true
		ex.preDepth = 0
		return
	}

	if ex.inSyntaxTable && tag == "pre" {
		ex.preDepth++
	}

	ex.desc.startTag(raw)
	ex.returns.startTag(raw)
	ex.remarks.startTag(raw)

	if ex.inParams {
		switch tag {
		case "dt":
			ex.finalizeParam()
			ex.inParamDT = true
		case "dd":
			ex.inParamDD = true
		default:
			if ex.inParamDD {
				ex.paramDescParts = append(ex.paramDescParts, raw)
			}
		}
	}
}

func (ex *memberExtractor) handleEndTag(tag string) {
	if tag == "span" && ex.inPagetitle {
		ex.inPagetitle = false
		ex.seenPagetitle = true
		ex.desc.start()
		return
	}

	if tag == "h1" {
		ex.inH1 = false
		ex.applyH1(strings.TrimSpace(ex.h1Text.String()))
		return
	}

	if tag == "h4" {
		ex.inH4 = false
		ex.applyH4(strings.TrimSpace(ex.h4Text.String()))
		return
	}

	if tag == "div" && ex.inCSSyntax {
		ex.inCSSyntax = false
		ex.inSyntaxTable = false
		return
	}

	if ex.inSyntaxTable && tag == "pre" {
		ex.preDepth--
	}

	ex.desc.endTag(tag)
	ex.returns.endTag(tag)
	ex.remarks.endTag(tag)

	if ex.inParams {
		switch tag {
		case "dt":
			ex.inParamDT = false
		case "dd":
			ex.inParamDD = false
		case "dl":
			ex.finalizeParam()
		default:
			if ex.inParamDD {
				ex.paramDescParts = append(ex.paramDescParts, "</"+tag+">")
			}
		}
	}
}

func (ex *memberExtractor) handleText(data string) {
	text := strings.TrimSpace(data)

	if ex.inPagetitle && text != "" {
		if m := memberTitleRe.FindStringSubmatch(text); m != nil {
			ex.memberName = strings.TrimSpace(m[1])
			ex.memberKind = m[2]
			ex.ownerType = strings.TrimSpace(m[3])
		}
		return
	}

	if ex.inH1 {
		ex.h1Text.WriteString(data)
		return
	}
	if ex.inH4 {
		ex.h4Text.WriteString(data)
		return
	}

	if ex.inSyntaxTable && ex.preDepth > 0 {
		ex.signatureParts = append(ex.signatureParts, data)
	}

	ex.desc.text(data)
	ex.returns.text(data)
	ex.remarks.text(data)

	if ex.inParamDT && text != "" {
		ex.paramName = text
	}
	if ex.inParamDD {
		ex.paramDescParts = append(ex.paramDescParts, data)
	}
}

// applyH1 routes an h1 heading. Unknown headings leave the current section
// running.
func (ex *memberExtractor) applyH1(heading string) {
	switch heading {
	case ".NET Syntax":
		ex.inParams = false
		ex.returns.stop()
		ex.remarks.stop()
	case "Remarks":
		ex.inParams = false
		ex.returns.stop()
		ex.remarks.start()
	case "Example", "Examples", "See Also", "Availability":
		ex.inParams = false
		ex.returns.stop()
		ex.remarks.stop()
	}
}

// applyH4 routes the subsection headings inside the .NET Syntax section.
func (ex *memberExtractor) applyH4(heading string) {
	switch heading {
	case "Parameters":
		ex.inParams = true
		ex.returns.stop()
	case "Return Value":
		ex.inParams = false
		ex.finalizeParam()
		ex.returns.start()
	}
}

// finalizeParam flushes the parameter being collected, converting anchors in
// its description.
func (ex *memberExtractor) finalizeParam() {
	if ex.paramName == "" {
		return
	}
	desc := strings.TrimSpace(strings.Join(ex.paramDescParts, ""))
	ex.parameters = append(ex.parameters, swdoc.Parameter{
		Name:        ex.paramName,
		Description: ex.resolver.ConvertLinks(desc),
	})
	ex.paramName = ""
	ex.paramDescParts = nil
}
