package pager

// State is the scroll position of a pager over a fixed number of lines.
// Top always stays within [0, MaxTop].
type State struct {
	Top      int
	PageSize int
	Width    int
	Height   int
}

// NewState returns the initial state for a terminal of the given size. The
// last row is reserved for the status bar.
func NewState(width, height int) State {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return State{
		PageSize: max(1, height-1),
		Width:    width,
		Height:   height,
	}
}

// MaxTop returns the largest valid Top for lineCount lines.
func (s State) MaxTop(lineCount int) int {
	return max(0, lineCount-s.PageSize)
}

// apply moves Top for key k and reports whether the pager should quit.
func (s *State) apply(k keyKind, lineCount int) bool {
	maxTop := s.MaxTop(lineCount)
	switch k {
	case keyQuit:
		return true
	case keyDown:
		s.Top = min(s.Top+1, maxTop)
	case keyUp:
		s.Top = max(s.Top-1, 0)
	case keyPageDown:
		s.Top = min(s.Top+s.PageSize, maxTop)
	case keyPageUp:
		s.Top = max(s.Top-s.PageSize, 0)
	}
	return false
}
