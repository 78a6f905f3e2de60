package generator

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"
)

// render executes the file template and formats the result.
func render(filename string, data fileModel) ([]byte, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := fileTmpl.ExecuteTemplate(&out, tmplFile, data); err != nil {
		return nil, err
	}
	formatted, err := imports.Process(filename, out.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}
