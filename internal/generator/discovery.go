package generator

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// loadDir loads the Go package in dir. The declarations of its output file
// are dropped while parsing so a stale generated file can neither collide
// with nor break regeneration; dependencies are parsed in full. Type errors
// are tolerated because other files of the package usually reference the
// tags being regenerated.
//
// NeedDeps is required: without it the go command compiles the package for
// export data and reports its syntax and type errors as list errors.
func loadDir(dir, output string) (*packages.Package, error) {
	dirInfo, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	isOutput := func(filename string) bool {
		if filepath.Base(filename) != filepath.Base(output) {
			return false
		}
		info, err := os.Stat(filepath.Dir(filename))
		return err == nil && os.SameFile(info, dirInfo)
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedImports | packages.NeedDeps | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			mode := parser.AllErrors | parser.ParseComments
			if isOutput(filename) {
				mode = parser.PackageClauseOnly
			}
			return parser.ParseFile(fset, filename, src, mode)
		},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", dir)
	}
	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		if e.Kind != packages.TypeError {
			return nil, e
		}
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("package in %s has no type information", dir)
	}
	return pkg, nil
}

// selection is a type chosen for generation, with the declaration it came
// from when one was found in the parsed files.
type selection struct {
	obj  types.Object
	spec *ast.TypeSpec
	dir  *directive
}

func (s selection) pos() token.Pos {
	if s.spec != nil {
		return s.spec.Name.Pos()
	}
	return s.obj.Pos()
}

// selectRecords collects the directive-annotated types of the package plus
// the types named in cfg.Types, sorted by name. The selections that could be
// resolved are returned even when others failed.
func (g *generator) selectRecords() ([]selection, error) {
	var errs []error
	byName := map[string]*selection{}
	declared := map[string]*ast.TypeSpec{}
	for _, file := range g.files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				declared[ts.Name.Name] = ts
				d, err := parseDirective(typeSpecDoc(gd, ts))
				if err != nil {
					errs = append(errs, g.errorAt(ts.Name.Pos(), "%s: %v", ts.Name.Name, err))
					continue
				}
				if d == nil {
					continue
				}
				obj := g.pkg.Scope().Lookup(ts.Name.Name)
				if obj == nil {
					continue
				}
				byName[ts.Name.Name] = &selection{obj: obj, spec: ts, dir: d}
			}
		}
	}
	for _, name := range g.cfg.Types {
		if _, ok := byName[name]; ok {
			continue
		}
		obj := g.pkg.Scope().Lookup(name)
		if obj == nil {
			errs = append(errs, fmt.Errorf("type %s not found in package %s", name, g.pkg.Path()))
			continue
		}
		if _, ok := obj.(*types.TypeName); !ok {
			errs = append(errs, g.errorAt(obj.Pos(), "%s is not a type", name))
			continue
		}
		byName[name] = &selection{obj: obj, spec: declared[name]}
	}

	var out []selection
	for _, s := range byName {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b selection) int { return strings.Compare(a.obj.Name(), b.obj.Name()) })
	return out, errors.Join(errs...)
}

// buildRecordModel models the tags of one selected type, rejecting anything
// that is not a plain struct type.
func (g *generator) buildRecordModel(sel selection) (*recordModel, error) {
	obj := sel.obj.(*types.TypeName)
	name := obj.Name()
	if obj.IsAlias() {
		return nil, g.errorAt(sel.pos(), "%s is an alias; generate tags for the aliased type instead", name)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, g.errorAt(sel.pos(), "%s is not a named type", name)
	}
	if named.TypeParams().Len() > 0 {
		return nil, g.errorAt(sel.pos(), "%s is generic; generic struct types are not supported", name)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, g.errorAt(sel.pos(), "%s is %s, not a struct type", name, describeShape(named.Underlying()))
	}

	explicitNS := ""
	if sel.dir != nil {
		explicitNS = sel.dir.Namespace
	}
	rm := &recordModel{Name: name, Namespace: namespaceName(name, explicitNS), pos: sel.pos()}
	if !token.IsIdentifier(rm.Namespace) {
		return nil, g.errorAt(sel.pos(), "%s: namespace %q is not a valid identifier", name, rm.Namespace)
	}

	var errs []error
	owner := map[string]string{} // tag name -> field name
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Name() == "_" {
			continue
		}
		tag := camelCase(f.Name())
		if v, ok := reflect.StructTag(st.Tag(i)).Lookup("fieldtag"); ok {
			if v == "-" {
				continue
			}
			if v != "" {
				tag = v
			}
		}
		if !isTagName(tag) {
			errs = append(errs, g.errorAt(f.Pos(), "%s.%s: tag name %q is not an exported identifier", name, f.Name(), tag))
			continue
		}
		if prev, ok := owner[tag]; ok {
			errs = append(errs, g.errorAt(f.Pos(), "%s: fields %s and %s both map to tag %s", name, prev, f.Name(), tag))
			continue
		}
		owner[tag] = f.Name()
		rm.Fields = append(rm.Fields, fieldModel{
			Name:    f.Name(),
			Tag:     tag,
			TagType: rm.Namespace + tag,
			typ:     f.Type(),
			pos:     f.Pos(),
		})
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rm, nil
}

// checkCollisions rejects generated names that are declared twice, either
// by two records or by the package itself outside the output file.
func (g *generator) checkCollisions(records []recordModel) error {
	var errs []error
	generated := map[string]string{}
	imported := g.fileImports()
	claim := func(name, owner string, pos token.Pos) {
		if prev, ok := generated[name]; ok {
			errs = append(errs, g.errorAt(pos, "%s: generated name %s is also generated for %s", owner, name, prev))
			return
		}
		generated[name] = owner
		if obj := g.pkg.Scope().Lookup(name); obj != nil && !g.inOutput(obj.Pos()) {
			errs = append(errs, g.errorAt(pos, "%s: generated name %s collides with %s declared at %s",
				owner, name, name, formatPosition(g.fset.Position(obj.Pos()))))
		}
		if spec, ok := imported[name]; ok {
			errs = append(errs, g.errorAt(pos, "%s: generated name %s collides with the import of %s at %s",
				owner, name, spec.Path.Value, formatPosition(g.fset.Position(spec.Pos()))))
		}
	}
	for _, rm := range records {
		claim(rm.Namespace, rm.Name, rm.pos)
		for _, f := range rm.Fields {
			claim(f.TagType, rm.Name+"."+f.Name, f.pos)
		}
	}
	return errors.Join(errs...)
}

// fileImports maps the names imported by the package's files, other than
// the output file, to the first import spec declaring them.
func (g *generator) fileImports() map[string]*ast.ImportSpec {
	names := map[string]*ast.ImportSpec{}
	for _, file := range g.files {
		if g.inOutput(file.Package) {
			continue
		}
		for _, spec := range file.Imports {
			name := g.importName(spec)
			if name == "" || name == "_" || name == "." {
				continue
			}
			if _, ok := names[name]; !ok {
				names[name] = spec
			}
		}
	}
	return names
}

// importName returns the name an import spec binds in its file.
func (g *generator) importName(spec *ast.ImportSpec) string {
	if spec.Name != nil {
		return spec.Name.Name
	}
	ipath, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return ""
	}
	for _, p := range g.pkg.Imports() {
		if p.Path() == ipath {
			return p.Name()
		}
	}
	return path.Base(ipath)
}

// inOutput reports whether pos lies in the generated file.
func (g *generator) inOutput(pos token.Pos) bool {
	if !pos.IsValid() {
		return false
	}
	return filepath.Base(g.fset.Position(pos).Filename) == filepath.Base(g.cfg.output())
}

// describeShape names the kind of a non-struct type for diagnostics.
func describeShape(t types.Type) string {
	switch t := t.(type) {
	case *types.Basic:
		return t.Name()
	case *types.Interface:
		return "an interface type"
	case *types.Map:
		return "a map type"
	case *types.Slice:
		return "a slice type"
	case *types.Array:
		return "an array type"
	case *types.Pointer:
		return "a pointer type"
	case *types.Signature:
		return "a func type"
	case *types.Chan:
		return "a channel type"
	}
	return t.String()
}
