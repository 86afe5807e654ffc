// Command unireader decodes UTF-8 input and prints one line per grapheme
// cluster or code point, reporting invalid byte runs in place.
//
// Usage:
//
//	unireader [flags] [file ...]
//
// With no files and no -glob, standard input is read. A file named "-" also
// means standard input.
//
// Flags:
//
//	-mode string       Unit to report: graphemes, codepoints (default graphemes)
//	-segmenter string  Boundary rules: uniseg, uax29 (default $UNIREADER_SEGMENTER or uniseg)
//	-format string     Output format: text, json (default text)
//	-color             Colorize text output (default on unless NO_COLOR is set)
//	-glob string       Also read files under -dir matching this pattern (supports **)
//	-dir string        Base directory for -glob (default ".")
//	-q                 Do not print the summary line
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/unireader"
	"github.com/fwojciec/unireader/fs"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "unireader: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, getenv func(string) string) error {
	// Parse flags.
	flags := flag.NewFlagSet("unireader", flag.ContinueOnError)
	var (
		modeFlag      = flags.String("mode", modeGraphemes, "Unit to report: graphemes, codepoints")
		segmenterFlag = flags.String("segmenter", "", "Boundary rules: uniseg, uax29 (default $UNIREADER_SEGMENTER or uniseg)")
		formatFlag    = flags.String("format", formatText, "Output format: text, json")
		color         = flags.Bool("color", getenv("NO_COLOR") == "", "Colorize text output")
		glob          = flags.String("glob", "", "Also read files under -dir matching this pattern")
		dir           = flags.String("dir", ".", "Base directory for -glob")
		quiet         = flags.Bool("q", false, "Do not print the summary line")
	)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// Resolve configuration. Env vars are read here and passed as values.
	mode, err := resolveMode(*modeFlag)
	if err != nil {
		return err
	}
	seg, err := resolveSegmenter(*segmenterFlag, getenv("UNIREADER_SEGMENTER"))
	if err != nil {
		return err
	}
	rep, err := newReport(*formatFlag, stdout, *color)
	if err != nil {
		return err
	}

	inputs := flags.Args()
	if *glob != "" {
		matches, err := fs.Glob(*dir, *glob)
		if err != nil {
			return fmt.Errorf("glob: %w", err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("glob: no files match %s under %s", *glob, *dir)
		}
		inputs = append(inputs, matches...)
	}
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	var total unireader.Summary
	for _, name := range inputs {
		if len(inputs) > 1 {
			if err := rep.WriteHeader(name); err != nil {
				return err
			}
		}
		sum, err := scanInput(name, stdin, mode, seg, rep)
		total = total.Add(sum)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if *quiet {
		return nil
	}
	return rep.WriteSummary(total)
}

const stdinName = "-"

// scanInput opens one input and scans it into rep.
func scanInput(name string, stdin io.Reader, mode string, seg unireader.Segmenter, rep report) (unireader.Summary, error) {
	r := stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return unireader.Summary{}, err
		}
		defer f.Close()
		r = f
	}
	return unireader.Scan(newSource(r, mode, seg), rep)
}
