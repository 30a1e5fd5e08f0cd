package mdpage

import (
	"strings"

	"pkt.systems/mdpage/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Render wraps text in the style prefix and a reset. An empty style returns
// text unchanged.
func (s Style) Render(text string) string {
	if s.Prefix == "" {
		return text
	}
	return s.Prefix + text + palette.Reset
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Fence         Style
	CodeBlock     Style
	Heading1      Style
	Heading       Style
	ThematicBreak Style
	QuoteMarker   Style
	Image         Style
	ImageURL      Style
	LinkURL       Style
	Strong        Style
	Emphasis      Style
	CodeInline    Style
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

// DefaultStyles returns the built-in color styles.
func DefaultStyles() Styles {
	return Styles{
		Fence:         style(palette.Green),
		CodeBlock:     style(palette.Reverse),
		Heading1:      style(palette.Bold, palette.Yellow),
		Heading:       style(palette.Bold, palette.Cyan),
		ThematicBreak: style(palette.Bold),
		QuoteMarker:   style(palette.Yellow),
		Image:         style(palette.Bold),
		ImageURL:      style(palette.Underline),
		LinkURL:       style(palette.Underline, palette.Blue),
		Strong:        style(palette.Bold),
		Emphasis:      style(palette.Underline),
		CodeInline:    style(palette.Reverse),
	}
}

// PlainStyles returns styles without any ANSI sequences. Markup is still
// consumed, so the output reads as plain text.
func PlainStyles() Styles {
	return Styles{}
}
