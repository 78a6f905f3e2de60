package generator

import (
	"embed"
	"fmt"
	"sync"
	"text/template"
)

const (
	tmplFile   = "file"
	tmplRecord = "record"
	tmplField  = "field"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	fileTmpl     *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// fieldScopeModel gives the field template access to its record.
type fieldScopeModel struct {
	Record recordModel
	Field  fieldModel
}

var tmplFuncs = template.FuncMap{
	"fieldScope": func(r recordModel, f fieldModel) fieldScopeModel {
		return fieldScopeModel{Record: r, Field: f}
	},
}

// validateTemplates ensures all required templates are defined.
func validateTemplates() error {
	for _, name := range []string{tmplFile, tmplRecord, tmplField} {
		if fileTmpl.Lookup(name) == nil {
			return fmt.Errorf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplFile).Funcs(tmplFuncs).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		fileTmpl = t
		tmplInitErr = validateTemplates()
	})
	return tmplInitErr
}
