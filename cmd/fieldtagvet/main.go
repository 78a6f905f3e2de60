// Command fieldtagvet checks //fieldtag: annotated types without generating
// code. It can run standalone or as go vet -vettool=$(which fieldtagvet).
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/calumari/fieldtag/pkg/fieldtaganalysis"
)

func main() { singlechecker.Main(fieldtaganalysis.Analyzer) }
