package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/calumari/fieldtag/internal/generator"
)

// useColor resolves the -color option against the diagnostics writer. In
// auto mode only terminals get colors.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "", "auto":
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("%w: invalid -color value %q", cli.ErrUsage, mode)
}

type palette struct {
	pos, msg, added, removed *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		pos:     color.New(color.Bold),
		msg:     color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.pos, p.msg, p.added, p.removed} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// report writes one line per diagnostic. Joined errors are unrolled and
// check-mode diffs are colored line by line.
func report(w io.Writer, err error, colorize bool) {
	p := newPalette(colorize)
	for _, e := range flatten(err) {
		msg := e.Error()
		var ce *generator.CodeError
		if errors.As(e, &ce) && ce.Pos().IsValid() {
			inner := ce.Unwrap().Error()
			prefix := strings.TrimSuffix(msg, ": "+inner)
			fmt.Fprintf(w, "%s: %s\n", p.pos.Sprint(prefix), p.msg.Sprint(inner))
			continue
		}
		first, rest, _ := strings.Cut(msg, "\n")
		fmt.Fprintf(w, "%s %s\n", p.pos.Sprint("fieldtaggen:"), p.msg.Sprint(first))
		for line := range strings.Lines(rest) {
			line = strings.TrimSuffix(line, "\n")
			switch {
			case strings.HasPrefix(line, "+"):
				fmt.Fprintln(w, p.added.Sprint(line))
			case strings.HasPrefix(line, "-"):
				fmt.Fprintln(w, p.removed.Sprint(line))
			default:
				fmt.Fprintln(w, line)
			}
		}
	}
}

// flatten unrolls errors joined with errors.Join.
func flatten(err error) []error {
	var out []error
	errs := []error{err}
	for len(errs) != 0 {
		e := errs[0]
		errs = errs[1:]
		if u, ok := e.(interface{ Unwrap() []error }); ok {
			errs = slices.Concat(u.Unwrap(), errs)
			continue
		}
		out = append(out, e)
	}
	return out
}
