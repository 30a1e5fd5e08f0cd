package pager

type keyKind int

const (
	keyOther keyKind = iota
	keyQuit
	keyDown
	keyUp
	keyPageDown
	keyPageUp
	keyEscape
)

const escByte = 0x1b

// readKey blocks for one keypress. Raw mode is held only for the duration of
// the read and restored on every return.
func (p *Pager) readKey() (keyKind, error) {
	restore, err := p.rawMode()
	if err != nil {
		return keyOther, err
	}
	defer restore()

	b, err := p.in.ReadByte()
	if err != nil {
		return keyOther, err
	}
	switch b {
	case escByte:
		return p.readEscape(), nil
	case 'q':
		return keyQuit, nil
	case 'n':
		return keyDown, nil
	case 'p':
		return keyUp, nil
	case 'f', ' ':
		return keyPageDown, nil
	case 'b':
		return keyPageUp, nil
	default:
		return keyOther, nil
	}
}

// readEscape decodes ESC [ A and ESC [ B. Anything else after ESC is consumed
// and reported as a plain ESC. A lone ESC with nothing buffered behind it
// returns immediately.
func (p *Pager) readEscape() keyKind {
	if p.in.Buffered() == 0 {
		return keyEscape
	}
	next, err := p.in.ReadByte()
	if err != nil || next != '[' {
		return keyEscape
	}
	final, err := p.in.ReadByte()
	if err != nil {
		return keyEscape
	}
	switch final {
	case 'A':
		return keyUp
	case 'B':
		return keyDown
	default:
		return keyEscape
	}
}
