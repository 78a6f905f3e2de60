package generator

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

const directivePrefix = "//fieldtag:"

// directive is the merged content of the //fieldtag: lines attached to a
// type declaration.
//
//	//fieldtag:generate
//	//fieldtag:ns=dog_field
type directive struct {
	Pos       token.Pos
	Namespace string
}

// parseDirective reads the //fieldtag: lines of a doc comment. It returns
// nil when the comment carries none.
func parseDirective(doc *ast.CommentGroup) (*directive, error) {
	if doc == nil {
		return nil, nil
	}
	var d *directive
	for _, c := range doc.List {
		text, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}
		if d == nil {
			d = &directive{Pos: c.Slash}
		}
		for item := range strings.FieldsSeq(text) {
			key, value, hasValue := strings.Cut(item, "=")
			switch key {
			case "generate":
				if hasValue {
					return nil, fmt.Errorf("directive %q takes no value", key)
				}
			case "ns":
				if value == "" {
					return nil, fmt.Errorf("directive %q requires a value", key)
				}
				if d.Namespace != "" && d.Namespace != value {
					return nil, fmt.Errorf("conflicting namespaces %q and %q", d.Namespace, value)
				}
				d.Namespace = value
			default:
				return nil, fmt.Errorf("unknown directive %q", key)
			}
		}
	}
	return d, nil
}

// typeSpecDoc returns the doc comment of spec, falling back to the doc of an
// ungrouped declaration.
func typeSpecDoc(decl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}
	if decl.Lparen == token.NoPos {
		return decl.Doc
	}
	return nil
}
