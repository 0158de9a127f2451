// Package etree serializes documentation records to the phase-output XML
// files consumed by downstream generation steps.
package etree

import (
	"github.com/beevik/etree"
	"github.com/jkowalczyk/swdoc"
)

// Ensure Writer implements swdoc.RecordWriter at compile time.
var _ swdoc.RecordWriter = (*Writer)(nil)

// Writer writes a batch of records of a single kind as an indented XML
// document. Prose fields (descriptions, remarks, return values) carry <see>
// markup and are wrapped in CDATA so they survive round-tripping.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteRecords serializes records to path. All records must share one kind;
// the kind picks the document layout.
func (w *Writer) WriteRecords(path string, records []swdoc.Record) error {
	if len(records) == 0 {
		return swdoc.Errorf(swdoc.EINVALID, "no records to write")
	}
	kind := records[0].Kind()
	for _, rec := range records {
		if rec.Kind() != kind {
			return swdoc.Errorf(swdoc.EINVALID, "mixed record kinds: %s and %s", kind, rec.Kind())
		}
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	switch kind {
	case swdoc.KindType:
		root := doc.CreateElement("Types")
		for _, rec := range records {
			writeType(root, rec.(*swdoc.TypeRecord))
		}
	case swdoc.KindMember:
		root := doc.CreateElement("Members")
		for _, rec := range records {
			writeMember(root, rec.(*swdoc.MemberRecord))
		}
	case swdoc.KindEnum:
		root := doc.CreateElement("EnumMembers")
		for _, rec := range records {
			writeEnum(root, rec.(*swdoc.EnumRecord))
		}
	case swdoc.KindMemberList:
		root := doc.CreateElement("Types")
		for _, rec := range records {
			writeMemberList(root, rec.(*swdoc.MemberListRecord))
		}
	default:
		return swdoc.Errorf(swdoc.EINVALID, "unknown record kind %q", kind)
	}

	doc.Indent(4)
	return doc.WriteToFile(path)
}

func writeType(root *etree.Element, t *swdoc.TypeRecord) {
	e := root.CreateElement("Type")
	e.CreateElement("Name").SetText(t.Name)
	if t.Assembly != "" {
		e.CreateElement("Assembly").SetText(t.Assembly)
	}
	if t.Namespace != "" {
		e.CreateElement("Namespace").SetText(t.Namespace)
	}
	if t.Description != "" {
		e.CreateElement("Description").CreateCData(t.Description)
	}
	if len(t.Examples) > 0 {
		examples := e.CreateElement("Examples")
		for _, ex := range t.Examples {
			exElem := examples.CreateElement("Example")
			exElem.CreateElement("Name").SetText(ex.Name)
			exElem.CreateElement("Language").SetText(ex.Language)
			exElem.CreateElement("Url").SetText(ex.URL)
		}
	}
	if t.Remarks != "" {
		e.CreateElement("Remarks").CreateCData(t.Remarks)
	}
}

func writeMember(root *etree.Element, m *swdoc.MemberRecord) {
	e := root.CreateElement("Member")
	if m.Assembly != "" {
		e.CreateElement("Assembly").SetText(m.Assembly)
	}
	if full := m.FullTypeName(); full != "" {
		e.CreateElement("Type").SetText(full)
	}
	e.CreateElement("Name").SetText(m.Name)
	if m.Signature != "" {
		e.CreateElement("Signature").SetText(m.Signature)
	}
	if m.Description != "" {
		e.CreateElement("Description").CreateCData(m.Description)
	}
	if len(m.Parameters) > 0 {
		params := e.CreateElement("Parameters")
		for _, p := range m.Parameters {
			pElem := params.CreateElement("Parameter")
			pElem.CreateElement("Name").SetText(p.Name)
			if p.Description != "" {
				pElem.CreateElement("Description").CreateCData(p.Description)
			}
		}
	}
	if m.Returns != "" {
		e.CreateElement("Returns").CreateCData(m.Returns)
	}
	if m.Remarks != "" {
		e.CreateElement("Remarks").CreateCData(m.Remarks)
	}
}

func writeEnum(root *etree.Element, en *swdoc.EnumRecord) {
	e := root.CreateElement("Enum")
	e.CreateElement("Name").SetText(en.Name)
	if en.Assembly != "" {
		e.CreateElement("Assembly").SetText(en.Assembly)
	}
	if en.Namespace != "" {
		e.CreateElement("Namespace").SetText(en.Namespace)
	}
	if len(en.Members) > 0 {
		members := e.CreateElement("Members")
		for _, m := range en.Members {
			mElem := members.CreateElement("Member")
			mElem.CreateElement("Name").SetText(m.Name)
			if m.Description != "" {
				mElem.CreateElement("Description").CreateCData(m.Description)
			}
		}
	}
}

func writeMemberList(root *etree.Element, l *swdoc.MemberListRecord) {
	e := root.CreateElement("Type")
	e.CreateElement("Name").SetText(l.Name)
	if l.Assembly != "" {
		e.CreateElement("Assembly").SetText(l.Assembly)
	}
	if l.Namespace != "" {
		e.CreateElement("Namespace").SetText(l.Namespace)
	}
	if len(l.Properties) > 0 {
		props := e.CreateElement("PublicProperties")
		for _, p := range l.Properties {
			pElem := props.CreateElement("Property")
			pElem.CreateElement("Name").SetText(p.Name)
			pElem.CreateElement("Url").SetText(p.URL)
		}
	}
	if len(l.Methods) > 0 {
		methods := e.CreateElement("PublicMethods")
		for _, m := range l.Methods {
			mElem := methods.CreateElement("Method")
			mElem.CreateElement("Name").SetText(m.Name)
			mElem.CreateElement("Url").SetText(m.URL)
		}
	}
}
