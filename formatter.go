package swdoc

import "strings"

// FormatTypeDoc renders one type, its members, and its enum values as a
// single Markdown document for LLM consumption. Description, Remarks and
// Returns strings already carry <see> markup, which is left intact: the
// identifiers inside are exactly what a model needs to cross-reference.
func FormatTypeDoc(t *TypeRecord, members []*MemberRecord, enum *EnumRecord) string {
	var b strings.Builder

	b.WriteString("# " + t.Name + "\n\n")
	if t.Namespace != "" {
		b.WriteString("Namespace: " + t.Namespace + "\n")
	}
	if t.Assembly != "" {
		b.WriteString("Assembly: " + t.Assembly + "\n")
	}
	b.WriteString("\n")

	if t.Description != "" {
		b.WriteString(t.Description + "\n\n")
	}

	if t.Remarks != "" {
		b.WriteString("## Remarks\n\n" + t.Remarks + "\n\n")
	}

	if enum != nil && len(enum.Members) > 0 {
		b.WriteString("## Values\n\n")
		for _, m := range enum.Members {
			b.WriteString("- `" + m.Name + "`")
			if m.Description != "" {
				b.WriteString(": " + m.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(members) > 0 {
		b.WriteString("## Members\n\n")
		for _, m := range members {
			header := m.Name
			if m.MemberKind != "" {
				header += " " + m.MemberKind
			}
			b.WriteString("### " + header + "\n\n")
			if m.Signature != "" {
				b.WriteString("```csharp\n" + m.Signature + "\n```\n\n")
			}
			if m.Description != "" {
				b.WriteString(m.Description + "\n\n")
			}
			if len(m.Parameters) > 0 {
				b.WriteString("Parameters:\n\n")
				for _, p := range m.Parameters {
					b.WriteString("- `" + p.Name + "`")
					if p.Description != "" {
						b.WriteString(": " + p.Description)
					}
					b.WriteString("\n")
				}
				b.WriteString("\n")
			}
			if m.Returns != "" {
				b.WriteString("Returns: " + m.Returns + "\n\n")
			}
			if m.Remarks != "" {
				b.WriteString("Remarks: " + m.Remarks + "\n\n")
			}
		}
	}

	if len(t.Examples) > 0 {
		b.WriteString("## Examples\n\n")
		for _, ex := range t.Examples {
			b.WriteString("- " + ex.Name + " (" + ex.Language + "): " + ex.URL + "\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
