package main

import (
	"context"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/scott-cotton/cli"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"

	"github.com/calumari/fieldtag/internal/generator"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("fieldtaggen").
		WithSynopsis("fieldtaggen [opts]").
		WithDescription("Generate one zero-size tag type per struct field, with Get/Set/Ptr accessors implementing fieldtag.Field.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cc, cfg)
		})
}

type Config struct {
	Types   string `cli:"name=type desc='comma-separated struct type names (optional for types annotated with //fieldtag:generate)'"`
	Output  string `cli:"name=output desc='output file name (default: fieldtag_gen.go)'"`
	Dir     string `cli:"name=dir desc='package directory (default: current directory)'"`
	Check   bool   `cli:"name=check desc='fail when the output file is missing or out of date instead of writing it'"`
	Color   string `cli:"name=color desc='colorize diagnostics: auto, always or never (default: auto)'"`
	Verbose bool   `cli:"name=v desc='log progress to stderr'"`
}

// run generates or checks the output file. Generator diagnostics are
// reported to cc.Err and turned into exit status 1.
func run(cc *cli.Context, cfg *Config) error {
	colorize, err := useColor(cfg.Color, cc.Err)
	if err != nil {
		return err
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	logger := newLogger(cc.Err, cfg.Verbose)
	version := deriveVersion()
	logger.Debug("starting", "version", version, "dir", dir)

	types := splitList(cfg.Types)
	gcfg := generator.Config{
		Dir:     dir,
		Types:   types,
		Output:  cfg.Output,
		Check:   cfg.Check,
		Command: displayCommand(types, cfg.Output, cfg.Dir),
		Version: headerVersion(version),
		Logger:  logger,
	}
	if err := generator.Run(gcfg); err != nil {
		report(cc.Err, err, colorize)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// displayCommand builds a canonical command line for the file header
// instead of raw argv, which may include build cache paths.
func displayCommand(types []string, output, dir string) string {
	parts := []string{"fieldtaggen"}
	if len(types) > 0 {
		parts = append(parts, "-type "+strings.Join(types, ","))
	}
	if output != "" && output != generator.DefaultOutput {
		parts = append(parts, "-output "+output)
	}
	if dir != "" && dir != "." {
		parts = append(parts, "-dir "+dir)
	}
	return strings.Join(parts, " ")
}

func splitList(csv string) []string {
	var out []string
	for p := range strings.SplitSeq(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 {
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

// headerVersion keeps only release versions for the file header, so
// development builds leave generated files unchanged between commits.
func headerVersion(v string) string {
	if !semver.IsValid(v) || semver.Build(v) != "" || module.IsPseudoVersion(v) {
		return ""
	}
	return v
}
