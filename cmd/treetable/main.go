// Command treetable prints JSON, YAML or TOML documents as nested text
// tables.
//
// Usage:
//
//	treetable [flags] [file ...]
//
// With no files it reads standard input. Flag defaults can be set with
// TREETABLE_* environment variables.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bjaus/treetable"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass a file or pipe a document on stdin")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "treetable: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, lookup func(string) (string, bool)) error {
	s := loadEnv(defaultSettings(), lookup)

	fs := flag.NewFlagSet("treetable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&s.format, "f", s.format, "input format: json, yaml or toml (default: from extension or content)")
	fs.StringVar(&s.seq, "seq", s.seq, "sequence layout: row or column")
	fs.StringVar(&s.mapping, "map", s.mapping, "map layout: row or column")
	fs.StringVar(&s.border, "border", s.border, "border style: ascii, rounded, heavy, double or none")
	fs.StringVar(&s.align, "align", s.align, "horizontal alignment: left, center or right")
	fs.StringVar(&s.valign, "valign", s.valign, "vertical alignment: top, middle or bottom")
	fs.StringVar(&s.width, "width", s.width, "width function: rune, east-asian, grapheme, ansi or char")
	fs.StringVar(&s.tab, "tab", s.tab, "spaces per tab, 0 keeps tabs")
	fs.BoolVar(&s.debug, "debug", false, "trace the layout to stderr")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: treetable [flags] [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts, err := buildOptions(s, stderr)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fs.Usage()
			return errNoInput
		}
		return render(stdout, stdin, s.format, "", opts)
	}

	out := &separatedWriter{w: stdout}
	for _, path := range fs.Args() {
		out.next()
		if err := renderFile(out, path, s.format, opts); err != nil {
			return err
		}
	}
	return nil
}

// separatedWriter puts a blank line between the output of consecutive
// files. Files that write nothing get no separator.
type separatedWriter struct {
	w       io.Writer
	wrote   bool
	pending bool
}

// next marks the start of another file.
func (s *separatedWriter) next() {
	s.pending = s.wrote
}

func (s *separatedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.pending {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return 0, err
		}
		s.pending = false
	}
	s.wrote = true
	return s.w.Write(p)
}

func renderFile(w io.Writer, path, format string, opts []treetable.Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render(w, f, format, path, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func render(w io.Writer, r io.Reader, format, path string, opts []treetable.Option) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f, err := resolveFormat(format, path, data)
	if err != nil {
		return err
	}
	return treetable.WriteDocuments(w, bytes.NewReader(data), f, opts...)
}

// resolveFormat picks the explicit format, then the file extension, then
// sniffs the content: JSON starts with an object or array, anything else is
// read as YAML.
func resolveFormat(format, path string, data []byte) (treetable.Format, error) {
	if format != "" {
		return treetable.ParseFormat(format)
	}
	if path != "" {
		if f, err := treetable.FormatFromPath(path); err == nil {
			return f, nil
		}
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return treetable.JSON, nil
	}
	return treetable.YAML, nil
}

func buildOptions(s settings, stderr io.Writer) ([]treetable.Option, error) {
	seq, err := treetable.ParseOrientation(s.seq)
	if err != nil {
		return nil, err
	}
	mapping, err := treetable.ParseOrientation(s.mapping)
	if err != nil {
		return nil, err
	}
	border, err := treetable.ParseBorderStyle(s.border)
	if err != nil {
		return nil, err
	}
	align, err := treetable.ParseAlignment(s.align)
	if err != nil {
		return nil, err
	}
	valign, err := treetable.ParseVerticalAlignment(s.valign)
	if err != nil {
		return nil, err
	}
	measurer, err := treetable.ParseMeasurer(s.width)
	if err != nil {
		return nil, err
	}
	tab, err := strconv.Atoi(s.tab)
	if err != nil || tab < 0 {
		return nil, fmt.Errorf("%w: tab size %q", treetable.ErrInvalidOption, s.tab)
	}

	opts := []treetable.Option{
		treetable.WithSeqOrientation(seq),
		treetable.WithMapOrientation(mapping),
		treetable.WithBorder(border),
		treetable.WithAlignment(align),
		treetable.WithVerticalAlignment(valign),
		treetable.WithMeasurer(measurer),
		treetable.WithTabSize(tab),
	}
	if s.debug {
		opts = append(opts, treetable.WithTrace(stderr))
	}
	return opts, nil
}
