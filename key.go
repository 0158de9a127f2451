package swdoc

import (
	"regexp"
	"strings"
)

// FileKey identifies the API entity a crawled file documents. The crawler
// encodes identity in the filename as
//
//	Assembly~Namespace.Type[~Member]_hash[_hash].ext[.ext]
//
// and the HTML body is never consulted: the key is derived from the
// filename alone and attached to every record produced from that file.
type FileKey struct {
	Assembly   string `json:"Assembly,omitempty"`
	Namespace  string `json:"Namespace,omitempty"`
	TypeName   string `json:"TypeName,omitempty"`
	MemberName string `json:"MemberName,omitempty"`
}

// FullTypeName returns Namespace.TypeName, or just TypeName when the
// namespace is unknown.
func (k FileKey) FullTypeName() string {
	if k.Namespace == "" {
		return k.TypeName
	}
	return k.Namespace + "." + k.TypeName
}

// hashSuffixRe matches the content-hash suffixes the crawler appends to
// filenames: an underscore followed by exactly 8 lowercase hex digits.
var hashSuffixRe = regexp.MustCompile(`_[0-9a-f]{8}$`)

// ParseFileKey derives the identity key from a crawled filename.
//
// Extensions are stripped first (there may be several stacked, e.g.
// ".htmll.html"), then hash suffixes (there may be one or two), then the
// "_members" marker of member-list pages. What remains is split on "~":
// the first segment is the assembly, the second is the dotted
// namespace-plus-type, and a third segment, if present, is the member
// name. A type segment with no dot inherits the assembly as its
// namespace. A filename with no "~" at all yields a bare type name, the
// last-resort fallback.
func ParseFileKey(filename string) FileKey {
	name := stripExtensions(filename)
	for hashSuffixRe.MatchString(name) {
		name = name[:strings.LastIndex(name, "_")]
	}
	name = strings.TrimSuffix(name, "_members")

	if !strings.Contains(name, "~") {
		return FileKey{TypeName: name}
	}

	parts := strings.Split(name, "~")
	key := FileKey{Assembly: parts[0]}

	typePart := parts[1]
	if i := strings.LastIndex(typePart, "."); i >= 0 {
		key.Namespace = typePart[:i]
		key.TypeName = typePart[i+1:]
	} else {
		key.Namespace = key.Assembly
		key.TypeName = typePart
	}

	if len(parts) >= 3 {
		key.MemberName = parts[2]
	}
	return key
}

func stripExtensions(name string) string {
	for {
		switch {
		case strings.HasSuffix(name, ".html"):
			name = strings.TrimSuffix(name, ".html")
		case strings.HasSuffix(name, ".htmll"):
			name = strings.TrimSuffix(name, ".htmll")
		case strings.HasSuffix(name, ".htm"):
			name = strings.TrimSuffix(name, ".htm")
		default:
			return name
		}
	}
}

// Filenames the crawler produces that are not API reference pages.
var specialFilePrefixes = []string{"functionalcategories", "releasenotes", "help_list"}

func isSpecialFile(lower string) bool {
	for _, prefix := range specialFilePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// IsTypeFile reports whether filename names a type page (interface, class
// or enumeration). Type pages carry exactly one "~" separator; member
// pages carry two, and member-list pages carry the "_members_" marker.
func IsTypeFile(filename string) bool {
	lower := strings.ToLower(filename)
	if strings.Contains(lower, "_members_") || strings.Contains(lower, "_namespace_") {
		return false
	}
	if isSpecialFile(lower) {
		return false
	}
	if !strings.Contains(lower, ".html") {
		return false
	}
	return strings.Count(lower, "~") == 1
}

// IsMemberFile reports whether filename names an individual member page
// (Assembly~Namespace.Type~Member.html).
func IsMemberFile(filename string) bool {
	lower := strings.ToLower(filename)
	if strings.Contains(lower, "_members_") {
		return false
	}
	if isSpecialFile(lower) {
		return false
	}
	if !strings.Contains(lower, ".html") {
		return false
	}
	return strings.Count(lower, "~") == 2
}

// IsEnumFile reports whether filename names an enumeration page. Enum
// types follow the vendor's "_e" naming suffix.
func IsEnumFile(filename string) bool {
	if !IsTypeFile(filename) {
		return false
	}
	return strings.HasSuffix(ParseFileKey(filename).TypeName, "_e")
}

// IsMemberListFile reports whether filename names a type's member-index
// page (Assembly~Namespace.Type_members_hash.html).
func IsMemberListFile(filename string) bool {
	lower := strings.ToLower(filename)
	if isSpecialFile(lower) {
		return false
	}
	if !strings.Contains(lower, ".html") {
		return false
	}
	return strings.Contains(lower, "_members_") && strings.Contains(lower, "~")
}
