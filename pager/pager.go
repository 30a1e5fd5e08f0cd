// Package pager displays pre-rendered terminal lines one page at a time and
// scrolls through them with single keypresses.
package pager

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"pkt.systems/mdpage/internal/palette"
)

const (
	keyHint     = "  [q]uit  [n]/Down next  [p]/Up prev  [f]/Space page down  [b] page up"
	emptyStatus = "File is empty  [q]uit"
)

// Config describes the terminal a Pager draws on. Nil In and Out default to
// os.Stdin and os.Stdout; non-positive sizes default to 80x24.
type Config struct {
	In     io.Reader
	Out    io.Writer
	Width  int
	Height int
}

// Pager shows a fixed set of lines in a terminal.
type Pager struct {
	lines []string
	in    *bufio.Reader
	fd    int
	out   *bufio.Writer
	state State
}

// New returns a pager over lines. Raw keyboard mode is used when cfg.In is a
// terminal.
func New(lines []string, cfg Config) *Pager {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	fd := -1
	if f, ok := in.(interface{ Fd() uintptr }); ok && termIsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Pager{
		lines: lines,
		in:    bufio.NewReader(in),
		fd:    fd,
		out:   bufio.NewWriter(out),
		state: NewState(cfg.Width, cfg.Height),
	}
}

// State returns the current scroll state.
func (p *Pager) State() State {
	return p.state
}

// Run draws pages and handles keys until q is pressed or input ends. The
// screen is cleared before Run returns.
func (p *Pager) Run() error {
	p.writeString(palette.HideCursor)
	defer p.cleanup()

	if len(p.lines) == 0 {
		return p.runEmpty()
	}
	for {
		if err := p.draw(); err != nil {
			return err
		}
		key, err := p.readKey()
		if err != nil {
			return endOfInput(err)
		}
		if p.state.apply(key, len(p.lines)) {
			return nil
		}
	}
}

func (p *Pager) runEmpty() error {
	p.writeString(palette.ClearScreen)
	for i := 0; i < p.state.PageSize; i++ {
		p.writeString("\r\n")
	}
	p.drawStatus(emptyStatus)
	if err := p.out.Flush(); err != nil {
		return err
	}
	for {
		key, err := p.readKey()
		if err != nil {
			return endOfInput(err)
		}
		if key == keyQuit {
			return nil
		}
	}
}

func (p *Pager) cleanup() {
	p.writeString(palette.ClearScreen)
	p.writeString(palette.ShowCursor)
	_ = p.out.Flush()
}

func (p *Pager) draw() error {
	p.writeString(palette.ClearScreen)
	for row := 0; row < p.state.PageSize; row++ {
		if idx := p.state.Top + row; idx < len(p.lines) {
			p.writeString(truncate.String(p.lines[idx], uint(p.state.Width)))
			p.writeString(palette.Reset)
		}
		p.writeString("\r\n")
	}
	p.drawStatus(statusText(p.state, len(p.lines)))
	return p.out.Flush()
}

func (p *Pager) drawStatus(text string) {
	text = runewidth.Truncate(text, p.state.Width, "")
	p.writeString(palette.Reverse)
	p.writeString(runewidth.FillRight(text, p.state.Width))
	p.writeString(palette.Reset)
}

func (p *Pager) writeString(s string) {
	_, _ = p.out.WriteString(s)
}

func statusText(s State, lineCount int) string {
	maxTop := s.MaxTop(lineCount)
	var pos string
	switch {
	case maxTop == 0:
		pos = "(TOP/END)"
	case s.Top == 0:
		pos = "(TOP)"
	case s.Top == maxTop:
		pos = "(END)"
	default:
		pos = fmt.Sprintf("Line %d/%d", s.Top+1, lineCount)
	}
	return pos + keyHint
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("read key: %w", err)
}
