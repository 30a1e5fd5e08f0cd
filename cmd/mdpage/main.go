package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdpage"
	"pkt.systems/mdpage/pager"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/mdpage")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	width            int
	boring           bool
	osc8             string
	stripFrontMatter bool
	noPager          bool
	showVersion      bool
}

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type fileError struct {
	path string
	err  error
}

func (e *fileError) Error() string {
	return fmt.Sprintf("cannot read %q: %v", e.path, e.err)
}

func (e *fileError) Unwrap() error { return e.err }

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("mdpage", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVarP(&opts.width, "width", "w", 0, "Render width override (0 uses terminal width)")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Render without ANSI styling")
	flags.StringVarP(&opts.osc8, "osc8", "8", "off", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&opts.stripFrontMatter, "strip-front-matter", false, "Drop a leading YAML/TOML/JSON front-matter block")
	flags.BoolVar(&opts.noPager, "no-pager", false, "Print rendered lines instead of paging")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: mdpage [flags] <file.md>\n")
		fmt.Fprintln(stderr, "\nKeys: q quit, n/Down next line, p/Up previous line, f/Space next page, b previous page.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	return flags
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts, stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return usageFailure(flags, stderr, &usageError{err: err})
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if flags.NArg() != 1 {
		return usageFailure(flags, stderr, &usageError{
			err: fmt.Errorf("expected exactly one markdown file, got %d arguments", flags.NArg()),
		})
	}
	osc8, err := resolveOSC8(opts.osc8)
	if err != nil {
		return usageFailure(flags, stderr, &usageError{err: fmt.Errorf("invalid --osc8 %q: %w", opts.osc8, err)})
	}

	doc, err := readDocument(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	width, height := terminalSize(stdout)
	if opts.width > 0 {
		width = opts.width
	}
	renderOpts := []mdpage.RenderOption{
		mdpage.WithOSC8(osc8),
		mdpage.WithStripFrontMatter(opts.stripFrontMatter),
	}
	if opts.boring {
		renderOpts = append(renderOpts, mdpage.WithStyles(mdpage.PlainStyles()))
	}
	lines, err := mdpage.Render(doc, width, renderOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	if opts.noPager || !isTerminal(stdout) {
		if err := mdpage.WriteLines(stdout, lines); err != nil {
			fmt.Fprintf(stderr, "write output: %v\n", err)
			return 1
		}
		return 0
	}
	p := pager.New(lines, pager.Config{
		In:     stdin,
		Out:    stdout,
		Width:  width,
		Height: height,
	})
	if err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "pager: %v\n", err)
		return 1
	}
	return 0
}

func usageFailure(flags *pflag.FlagSet, stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "%v\n\n", err)
	flags.Usage()
	return 1
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		return "", &fileError{path: path, err: err}
	}
	return string(data), nil
}

func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return pager.DefaultWidth, pager.DefaultHeight
	}
	return pager.Size(f)
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "off", "false", "0", "no":
		return false, nil
	case "on", "true", "1", "yes":
		return true, nil
	case "auto":
		return mdpage.DetectOSC8Support(), nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

// normalizePath expands a leading ~ to the home directory and makes the
// path absolute.
func normalizePath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok && (rest == "" || rest[0] == '/') {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + rest
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
