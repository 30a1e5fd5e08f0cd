package mdpage

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 reports input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid utf-8 input")

// ValidateInput returns ErrInvalidUTF8, wrapped with the offset of the first
// bad byte, when src is not valid UTF-8. Control bytes such as NUL or ESC are
// accepted and rendered as they are.
func ValidateInput(src []byte) error {
	if utf8.Valid(src) {
		return nil
	}
	for off := 0; off < len(src); {
		r, size := utf8.DecodeRune(src[off:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, off)
		}
		off += size
	}
	return ErrInvalidUTF8
}
