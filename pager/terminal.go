package pager

import (
	"os"

	"golang.org/x/term"
)

// Size used when the terminal cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

var (
	termIsTerminal = term.IsTerminal
	termMakeRaw    = term.MakeRaw
	termRestore    = term.Restore
	termGetSize    = term.GetSize
)

// Size returns the width and height of the terminal behind f. It falls back
// to DefaultWidth x DefaultHeight when f is not a terminal or the query fails.
func Size(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	w, h, err := termGetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}

// rawMode switches the input terminal to raw mode and returns the function
// that restores the saved mode. Input that is not a terminal is left alone.
func (p *Pager) rawMode() (func(), error) {
	if p.fd < 0 {
		return func() {}, nil
	}
	saved, err := termMakeRaw(p.fd)
	if err != nil {
		return nil, err
	}
	return func() {
		_ = termRestore(p.fd, saved)
	}, nil
}
