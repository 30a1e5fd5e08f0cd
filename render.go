package mdpage

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
)

const (
	fenceMarker = "```"
	ruleGlyph   = "─"
	bulletGlyph = "•"
)

var orderedItemPattern = regexp.MustCompile(`^\d+\.\s+`)

// RenderRequest configures RenderLines.
type RenderRequest struct {
	Reader  io.Reader
	Width   int
	Options []RenderOption
}

// RenderLines reads the whole document from req.Reader and renders it.
func RenderLines(req RenderRequest) ([]string, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("render: reader is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, fmt.Errorf("render: read: %w", err)
	}
	return Render(string(src), req.Width, req.Options...)
}

// Render converts a Markdown document into styled display lines, one or more
// per input line, for a terminal width columns wide. Render has no state
// between calls; the same arguments always yield the same lines.
func Render(doc string, width int, opts ...RenderOption) ([]string, error) {
	if width <= 0 {
		return nil, &RenderError{Err: fmt.Errorf("%w: got %d", ErrInvalidWidth, width)}
	}
	if err := ValidateInput([]byte(doc)); err != nil {
		return nil, &RenderError{Err: err}
	}
	cfg := newRenderConfig(opts)
	src := splitLines(doc)
	if cfg.stripFrontMatter {
		src = stripFrontMatter(src)
	}

	r := lineRenderer{width: width, styles: cfg.styles, osc8: cfg.osc8}
	out := make([]string, 0, len(src)+len(src)/4)
	inCodeBlock := false
	for _, line := range src {
		if strings.HasPrefix(line, fenceMarker) {
			inCodeBlock = !inCodeBlock
			out = append(out, r.rule(r.styles.Fence))
			continue
		}
		if inCodeBlock {
			out = append(out, r.codeLine(line))
			continue
		}
		out = r.appendBlock(out, line)
	}
	return out, nil
}

// WriteLines writes display lines to w, one per row.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// splitLines breaks doc on newlines. A final newline does not start another
// line and a trailing carriage return is dropped from every line.
func splitLines(doc string) []string {
	if doc == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

type lineRenderer struct {
	width  int
	styles Styles
	osc8   bool
}

func (r *lineRenderer) appendBlock(out []string, line string) []string {
	if line == "" {
		return append(out, "")
	}
	switch {
	case line[0] == '#':
		level, text := headingParts(line)
		if level == 1 {
			return append(out,
				"",
				r.styles.Heading1.Render(r.center(text)),
				r.center(strings.Repeat("=", ansi.PrintableRuneWidth(text))),
			)
		}
		return append(out, "", r.styles.Heading.Render(text))
	case line == "---" || line == "***" || line == "___":
		return append(out, r.rule(r.styles.ThematicBreak))
	case line[0] == '>':
		return append(out, r.styles.QuoteMarker.Render("|")+" "+line[1:])
	case strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- "):
		return append(out, "  "+bulletGlyph+" "+line[2:])
	case orderedItemPattern.MatchString(line):
		dot := strings.IndexByte(line, '.')
		return append(out, "  "+line[:dot+1]+" "+line[dot+2:])
	default:
		return append(out, r.inline(line))
	}
}

// headingParts returns the number of leading '#' and the text that follows
// them after one separator character.
func headingParts(line string) (int, string) {
	level := len(line) - len(strings.TrimLeft(line, "#"))
	rest := line[level:]
	if rest == "" {
		return level, ""
	}
	_, size := utf8.DecodeRuneInString(rest)
	return level, rest[size:]
}

func (r *lineRenderer) rule(s Style) string {
	return s.Render(strings.Repeat(ruleGlyph, r.width))
}

func (r *lineRenderer) codeLine(line string) string {
	if pad := r.width - ansi.PrintableRuneWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return r.styles.CodeBlock.Render(line)
}

func (r *lineRenderer) center(text string) string {
	pad := (r.width - ansi.PrintableRuneWidth(text)) / 2
	if pad <= 0 {
		return text
	}
	spaces := strings.Repeat(" ", pad)
	return spaces + text + spaces
}
