package mdpage

import (
	"errors"
	"fmt"
)

// ErrInvalidWidth reports a non-positive render width.
var ErrInvalidWidth = errors.New("width must be > 0")

// RenderError reports a failure of the render pass. Nothing is rendered when
// it is returned.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render markdown: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
