// Command protoplot draws the bit layout of a protocol description.
//
// Usage:
//
//	protoplot [flags] FILE
//
// FILE is a JSON, JSONC, YAML or TOML description. The diagram is written
// to standard output as SVG unless -o or --format say otherwise.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/gogpu/protoplot"
	"github.com/gogpu/protoplot/describe"
	"github.com/gogpu/protoplot/recording"
	_ "github.com/gogpu/protoplot/recording/backends/raster"
	_ "github.com/gogpu/protoplot/recording/backends/svg"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// errUsage marks command-line mistakes.
var errUsage = errors.New("usage")

func main() {
	os.Exit(report(os.Stderr, run(os.Args[1:], os.Stdout, os.Stderr)))
}

// report prints err and returns the process exit code. Library errors
// already carry their package prefix.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(w, err)
	return 1
}

type options struct {
	format   string
	output   string
	noRuler  bool
	noHints  bool
	logLevel string
	help     bool
	version  bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("protoplot", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.format, "format", "svg", "output format: "+formats())
	flagSet.StringVarP(&opts.output, "output", "o", "", "write the diagram to `path` instead of standard output")
	flagSet.BoolVar(&opts.noRuler, "no-ruler", false, "omit the bit ruler")
	flagSet.BoolVar(&opts.noHints, "no-hints", false, "omit row lines inside multi-row fields")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flagSet.BoolVarP(&opts.help, "help", "h", false, "show help")
	flagSet.BoolVar(&opts.version, "version", false, "print the version and exit")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if opts.help {
		printHelp(stdout, flagSet)
		return nil
	}
	if opts.version {
		fmt.Fprintf(stdout, "protoplot %s\n", version)
		return nil
	}

	if flagSet.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one description file, got %d arguments", errUsage, flagSet.NArg())
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("%w: --log-level: %w", errUsage, err)
	}
	protoplot.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer protoplot.SetLogger(nil)

	format := opts.format
	if opts.output != "" && !flagSet.Changed("format") {
		if name, ok := recording.ForExtension(filepath.Ext(opts.output)); ok {
			format = name
		}
	}
	if !recording.IsRegistered(format) {
		return fmt.Errorf("%w: unknown format %q (available: %s)", errUsage, format, formats())
	}

	desc, err := describe.Load(flagSet.Arg(0))
	if err != nil {
		return err
	}

	r, err := protoplot.Render(desc,
		protoplot.WithRuler(!opts.noRuler),
		protoplot.WithHints(!opts.noHints),
	)
	if err != nil {
		return err
	}

	// Render fully before touching the destination so that failures leave
	// no partial output.
	var buf bytes.Buffer
	if err := protoplot.Export(&buf, r, format); err != nil {
		return err
	}

	if opts.output == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	return writeFile(opts.output, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func formats() string {
	var out string
	for i, name := range recording.Backends() {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `protoplot draws the bit layout of a protocol description.

Usage:
  protoplot [flags] FILE

FILE is a JSON, JSONC, YAML or TOML document with a "fields" list of
{label, size} entries and optional "width", "large_mark_every" and
"medium_mark_every" keys.

Flags:
%s`, flagSet.FlagUsages())
}
