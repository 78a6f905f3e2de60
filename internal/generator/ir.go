package generator

import (
	"go/token"
	"go/types"
	"log/slog"
)

// DefaultOutput is the file written next to the records when Config.Output
// is empty.
const DefaultOutput = "fieldtag_gen.go"

// Config holds generation settings.
type Config struct {
	Dir     string       // package directory to load
	Types   []string     // record type names; directive-annotated types are always included
	Output  string       // output file name inside Dir
	Check   bool         // compare with the existing output instead of writing it
	Command string       // canonical invocation recorded in the file header
	Version string       // fieldtaggen release recorded in the file header, if any
	Logger  *slog.Logger // nil discards logs
}

func (c Config) output() string {
	if c.Output == "" {
		return DefaultOutput
	}
	return c.Output
}

// fileModel is the root template model for a generated file.
type fileModel struct {
	Package string
	Command string
	Version string
	Imports []importModel
	Records []recordModel
}

// importModel is one import spec of the generated file.
type importModel struct {
	Path  string
	Alias string // empty when the local name is the package name
}

// recordModel describes the tags generated for one struct type.
type recordModel struct {
	Name      string
	Namespace string
	Runtime   string // local name of the fieldtag package
	Fields    []fieldModel
	pos       token.Pos
}

// fieldModel describes the tag generated for one struct field.
type fieldModel struct {
	Name    string // Go field name
	Tag     string // member of the namespace value
	TagType string
	Type    string // field type as written in the generated file
	typ     types.Type
	pos     token.Pos
}
