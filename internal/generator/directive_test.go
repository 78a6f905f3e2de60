package generator

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
)

func comments(lines ...string) *ast.CommentGroup {
	g := &ast.CommentGroup{}
	for _, l := range lines {
		g.List = append(g.List, &ast.Comment{Text: l})
	}
	return g
}

func TestParseDirective(t *testing.T) {
	t.Run("no comment", func(t *testing.T) {
		d, err := parseDirective(nil)
		require.NoError(t, err)
		require.Nil(t, d)
	})

	t.Run("plain doc comment", func(t *testing.T) {
		d, err := parseDirective(comments("// Person is a person.", "// fieldtag:generate"))
		require.NoError(t, err)
		require.Nil(t, d)
	})

	t.Run("generate", func(t *testing.T) {
		d, err := parseDirective(comments("// Person is a person.", "//", "//fieldtag:generate"))
		require.NoError(t, err)
		require.NotNil(t, d)
		require.Empty(t, d.Namespace)
	})

	t.Run("namespace implies generate", func(t *testing.T) {
		d, err := parseDirective(comments("//fieldtag:ns=dog_tag"))
		require.NoError(t, err)
		require.Equal(t, "dog_tag", d.Namespace)
	})

	t.Run("items on one line and across lines merge", func(t *testing.T) {
		d, err := parseDirective(comments("//fieldtag:generate ns=keys", "//fieldtag:ns=keys"))
		require.NoError(t, err)
		require.Equal(t, "keys", d.Namespace)
	})

	for name, tc := range map[string]struct {
		lines []string
		want  string
	}{
		"unknown key":       {[]string{"//fieldtag:bogus"}, `unknown directive "bogus"`},
		"generate value":    {[]string{"//fieldtag:generate=yes"}, `directive "generate" takes no value`},
		"empty namespace":   {[]string{"//fieldtag:ns="}, `directive "ns" requires a value`},
		"namespace no '='":  {[]string{"//fieldtag:ns"}, `directive "ns" requires a value`},
		"namespace clashes": {[]string{"//fieldtag:ns=a", "//fieldtag:ns=b"}, `conflicting namespaces "a" and "b"`},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseDirective(comments(tc.lines...))
			require.EqualError(t, err, tc.want)
		})
	}
}

func TestTypeSpecDoc(t *testing.T) {
	src := `package p

// A doc.
type A struct{}

type (
	// B doc.
	B struct{}

	C struct{}
)
`
	f, err := parser.ParseFile(token.NewFileSet(), "p.go", src, parser.ParseComments)
	require.NoError(t, err)

	docs := map[string]string{}
	for _, decl := range f.Decls {
		gd := decl.(*ast.GenDecl)
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			docs[ts.Name.Name] = typeSpecDoc(gd, ts).Text()
		}
	}
	require.Equal(t, map[string]string{"A": "A doc.\n", "B": "B doc.\n", "C": ""}, docs)
}
