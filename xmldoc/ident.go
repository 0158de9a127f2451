package xmldoc

import (
	"regexp"
	"strings"
)

// intrinsicTypes maps C# intrinsic type keywords to their CLR names.
var intrinsicTypes = map[string]string{
	"int":     "System.Int32",
	"uint":    "System.UInt32",
	"short":   "System.Int16",
	"ushort":  "System.UInt16",
	"long":    "System.Int64",
	"ulong":   "System.UInt64",
	"byte":    "System.Byte",
	"sbyte":   "System.SByte",
	"bool":    "System.Boolean",
	"char":    "System.Char",
	"float":   "System.Single",
	"double":  "System.Double",
	"decimal": "System.Decimal",
	"string":  "System.String",
	"object":  "System.Object",
	"void":    "System.Void",
}

// TypeID returns the XMLDoc ID of a type: T:Namespace.TypeName.
func TypeID(namespace, typeName string) string {
	return "T:" + namespace + "." + typeName
}

// PropertyID returns the XMLDoc ID of a property. Indexed properties carry
// a parenthesized parameter-type list.
func PropertyID(namespace, typeName, name string, params []string) string {
	return memberID("P:", namespace, typeName, name, params)
}

// MethodID returns the XMLDoc ID of a method. name may be the literal
// token "#ctor" for constructors.
func MethodID(namespace, typeName, name string, params []string) string {
	return memberID("M:", namespace, typeName, name, params)
}

// FieldID returns the XMLDoc ID of a field; enum members are fields.
func FieldID(namespace, typeName, name string) string {
	return "F:" + namespace + "." + typeName + "." + name
}

// EventID returns the XMLDoc ID of an event.
func EventID(namespace, typeName, name string) string {
	return "E:" + namespace + "." + typeName + "." + name
}

func memberID(prefix, namespace, typeName, name string, params []string) string {
	id := prefix + namespace + "." + typeName + "." + name
	if len(params) > 0 {
		id += "(" + strings.Join(params, ",") + ")"
	}
	return id
}

var (
	byrefPrefixRe = regexp.MustCompile(`^(ref|out|in)\s+`)
	rankSuffixRe  = regexp.MustCompile(`\[[,\d:]*\]$`)
)

// EncodeParameterType encodes a C# parameter type per the XMLDoc ID rules:
// ref/out/in become a trailing "@", arrays keep their bracket suffix,
// pointers keep "*", and intrinsic keywords expand to CLR names. The
// suffix order is fixed: base, pointer, array, byref.
func EncodeParameterType(t string) string {
	t = strings.TrimSpace(t)

	byref := false
	if byrefPrefixRe.MatchString(t) {
		byref = true
		t = byrefPrefixRe.ReplaceAllString(t, "")
	}

	array := ""
	if strings.HasSuffix(t, "[]") {
		array = "[]"
		t = strings.TrimSuffix(t, "[]")
	} else if loc := rankSuffixRe.FindStringIndex(t); loc != nil {
		array = t[loc[0]:]
		t = t[:loc[0]]
	}

	pointer := ""
	if strings.HasSuffix(t, "*") {
		pointer = "*"
		t = strings.TrimSpace(strings.TrimSuffix(t, "*"))
	}

	if full, ok := intrinsicTypes[t]; ok {
		t = full
	}

	result := t + pointer + array
	if byref {
		result += "@"
	}
	return result
}
