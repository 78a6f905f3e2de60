// Package fieldtaganalysis reports fieldtaggen problems as analysis
// diagnostics: //fieldtag: directives on types that cannot get tags,
// malformed directives and generated names that would collide.
package fieldtaganalysis

import (
	"golang.org/x/tools/go/analysis"

	"github.com/calumari/fieldtag/internal/generator"
)

// Analyzer validates the //fieldtag: annotated types of a package.
var Analyzer = &analysis.Analyzer{
	Name: "fieldtag",
	Doc:  "check types annotated with //fieldtag: directives",
	Run:  run,
}

var output string

func init() {
	Analyzer.Flags.StringVar(&output, "output", generator.DefaultOutput, "name of the generated file, whose declarations are not treated as collisions")
}

func run(pass *analysis.Pass) (any, error) {
	err := generator.Diagnose(pass.Fset, pass.Files, pass.Pkg, generator.Config{Output: output})
	if err == nil {
		return nil, nil
	}

	// Unroll all errors and report them
	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		if codeErr, ok := err.(*generator.CodeError); ok {
			pass.Report(analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				Message: codeErr.Unwrap().Error(),
			})
			continue
		}

		if u, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, u.Unwrap()...)
			continue
		}

		return nil, err
	}
	return nil, nil
}
