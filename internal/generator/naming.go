package generator

import (
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// camelCase turns a field name into a tag name: the name is split on
// underscores and every part gets an upper-case first rune.
func camelCase(name string) string {
	var b strings.Builder
	for part := range strings.SplitSeq(name, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// namespaceName returns the name of the tag namespace of a record. An
// explicit name is camel-cased and follows the record's export state.
func namespaceName(record, explicit string) string {
	if explicit == "" {
		return record + "Field"
	}
	ns := camelCase(explicit)
	if !token.IsExported(record) {
		ns = lowerFirst(ns)
	}
	return ns
}

// isTagName reports whether s can name a member of a namespace value.
func isTagName(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}
