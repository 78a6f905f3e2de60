package generator

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

// CodeError is an error located in the source of the generated package.
type CodeError struct {
	err  error
	pos  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e *CodeError) Unwrap() error { return e.err }

// Pos returns the position the error refers to. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// Error implements the error interface. A valid position is prepended as
// file:line:col, with the file relative to the working directory when
// possible.
func (e *CodeError) Error() string {
	if e.err == nil {
		return ""
	}
	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", formatPosition(e.fset.Position(e.pos)), e.err.Error())
}

func formatPosition(p token.Position) string {
	p.Filename = relPath(p.Filename)
	return p.String()
}

// relPath shortens path to be relative to the working directory when it
// lies below it.
func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// errorAt formats an error attached to pos.
func (g *generator) errorAt(pos token.Pos, format string, args ...any) error {
	return &CodeError{err: fmt.Errorf(format, args...), pos: pos, fset: g.fset}
}
