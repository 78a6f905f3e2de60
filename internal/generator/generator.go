// Package generator implements fieldtaggen: it loads a Go package, selects
// struct types and renders one tag type per field together with the
// accessors satisfying fieldtag.Field.
package generator

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"os"
	"path/filepath"
)

// generator holds transient state while building models.
type generator struct {
	cfg     Config
	fset    *token.FileSet
	pkg     *types.Package
	files   []*ast.File
	imports *importSet
	log     *slog.Logger
}

func newGenerator(cfg Config, fset *token.FileSet, files []*ast.File, pkg *types.Package) *generator {
	g := &generator{
		cfg:   cfg,
		fset:  fset,
		pkg:   pkg,
		files: files,
		log:   cfg.Logger,
	}
	if g.log == nil {
		g.log = slog.New(slog.DiscardHandler)
	}
	g.imports = newImportSet(pkg, func(name string) bool {
		obj := pkg.Scope().Lookup(name)
		return obj != nil && !g.inOutput(obj.Pos())
	})
	return g
}

// Run generates the tags of the configured package and writes them to the
// output file. In check mode the file is compared instead and an error
// carrying a diff is returned when it is stale. Nothing is written when any
// error occurs.
func Run(cfg Config) error {
	path, out, err := generate(cfg)
	if err != nil {
		return err
	}
	if cfg.Check {
		return checkOutput(path, out)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}
	if cfg.Logger != nil {
		cfg.Logger.Info("generated", "file", path)
	}
	return nil
}

// Generate returns the content of the output file without writing it.
func Generate(cfg Config) ([]byte, error) {
	_, out, err := generate(cfg)
	return out, err
}

// Diagnose validates the directive-annotated types of an already loaded
// package. Every problem is returned, joined; those with a known position
// are *CodeError.
func Diagnose(fset *token.FileSet, files []*ast.File, pkg *types.Package, cfg Config) error {
	_, err := newGenerator(cfg, fset, files, pkg).model()
	return err
}

func generate(cfg Config) (string, []byte, error) {
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return "", nil, err
	}
	pkg, err := loadDir(absDir, cfg.output())
	if err != nil {
		return "", nil, err
	}
	g := newGenerator(cfg, pkg.Fset, pkg.Syntax, pkg.Types)
	g.log.Debug("loaded package", "path", pkg.PkgPath, "files", len(pkg.Syntax))

	fm, err := g.model()
	if err != nil {
		return "", nil, err
	}
	if len(fm.Records) == 0 {
		return "", nil, errors.New("no record types selected: pass -type or annotate a struct with //fieldtag:generate")
	}
	outPath := filepath.Join(absDir, cfg.output())
	out, err := render(outPath, *fm)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", cfg.output(), err)
	}
	return outPath, out, nil
}

// model selects and models every record of the package. All problems found
// are reported together.
func (g *generator) model() (*fileModel, error) {
	sels, err := g.selectRecords()
	errs := []error{err}

	var records []recordModel
	for _, sel := range sels {
		rm, err := g.buildRecordModel(sel)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, *rm)
	}
	errs = append(errs, g.checkCollisions(records))
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// Generated names share the file scope with the imports.
	for _, rm := range records {
		g.imports.reserve(rm.Namespace)
		for _, f := range rm.Fields {
			g.imports.reserve(f.TagType)
		}
	}
	runtime := g.imports.local(RuntimePath, "fieldtag")
	for i := range records {
		rm := &records[i]
		rm.Runtime = runtime
		if len(rm.Fields) > 0 {
			g.imports.use(RuntimePath)
		}
		for j := range rm.Fields {
			rm.Fields[j].Type = types.TypeString(rm.Fields[j].typ, g.imports.qualifier)
		}
		g.log.Debug("record", "name", rm.Name, "namespace", rm.Namespace, "fields", len(rm.Fields))
	}
	return &fileModel{
		Package: g.pkg.Name(),
		Command: g.cfg.Command,
		Version: g.cfg.Version,
		Imports: g.imports.list(),
		Records: records,
	}, nil
}
