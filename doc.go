// Package mdpage renders Markdown to ANSI-styled lines for terminal display.
//
// Rendering is line oriented: every input line maps to one or more display
// lines, already styled and ready to print. The only state carried between
// lines is whether a fenced code block is open, so Render is a pure function
// of its arguments and never fails on malformed Markdown.
//
// Supported markup:
//   - ATX headings (# centered with a rule, ## and deeper left aligned)
//   - fenced code blocks, padded to the full width in reverse video
//   - thematic breaks, blockquotes, "*"/"-" bullets and numbered items
//   - images, links, strong, emphasis and code spans inside paragraphs
//
// Example:
//
//	lines, err := mdpage.Render("# Hello\n\nMarkdown in, ANSI out.\n", 80)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = mdpage.WriteLines(os.Stdout, lines)
//
// The rendered lines are usually handed to the pager package for display.
package mdpage
