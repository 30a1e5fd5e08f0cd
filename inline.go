package mdpage

import (
	"regexp"
	"strconv"
	"strings"
)

// Span patterns, applied in this order. Each pass scans the output of the
// previous one; styled spans are not tracked, so overlapping markup nests
// escape sequences in whatever order the passes produce.
var (
	imagePattern    = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern     = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
	strongPattern   = regexp.MustCompile(`\*\*(.*?)\*\*|__(.*?)__`)
	emphasisPattern = regexp.MustCompile(`\*(.*?)\*|_(.*?)_`)
	codeSpanPattern = regexp.MustCompile("`(.*?)`")
)

func (r *lineRenderer) inline(line string) string {
	st := r.styles
	links := &linkTargets{src: line}
	url := func(s Style, target string) string {
		styled := s.Render(target)
		if r.osc8 && target != "" {
			return links.hold(target) + styled + osc8End
		}
		return styled
	}
	line = replaceSpans(imagePattern, line, func(g []string) string {
		return st.Image.Render("[Image: "+g[1]+"]") + " (" + url(st.ImageURL, g[2]) + ")"
	})
	line = replaceSpans(linkPattern, line, func(g []string) string {
		return g[1] + " (" + url(st.LinkURL, g[2]) + ")"
	})
	line = replaceSpans(strongPattern, line, func(g []string) string {
		return st.Strong.Render(g[1] + g[2])
	})
	line = replaceSpans(emphasisPattern, line, func(g []string) string {
		return st.Emphasis.Render(g[1] + g[2])
	})
	line = replaceSpans(codeSpanPattern, line, func(g []string) string {
		return st.CodeInline.Render(g[1])
	})
	return links.restore(line)
}

// linkTargets keeps OSC 8 targets out of the line while the span passes run.
// Each target is replaced by a numbered token framed by a private-use rune
// that does not occur in the source line, so tokens cannot collide with text.
type linkTargets struct {
	src     string
	mark    string
	targets []string
}

func (l *linkTargets) token(i int) string {
	return l.mark + strconv.Itoa(i) + l.mark
}

func (l *linkTargets) hold(target string) string {
	if l.mark == "" {
		mark := rune(0xE000)
		for strings.ContainsRune(l.src, mark) {
			mark++
		}
		l.mark = string(mark)
	}
	l.targets = append(l.targets, target)
	return l.token(len(l.targets) - 1)
}

func (l *linkTargets) restore(line string) string {
	if len(l.targets) == 0 {
		return line
	}
	pairs := make([]string, 0, 2*len(l.targets))
	for i, target := range l.targets {
		pairs = append(pairs, l.token(i), osc8Start+target+osc8Term)
	}
	// A target captured by the link pass can itself hold an image token.
	replacer := strings.NewReplacer(pairs...)
	for range l.targets {
		if !strings.Contains(line, l.mark) {
			break
		}
		line = replacer.Replace(line)
	}
	return line
}

// replaceSpans replaces every leftmost non-overlapping match of re in s with
// the result of fn. fn receives the full match followed by each capture
// group; groups that did not participate are empty.
func replaceSpans(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(matches)*8)
	groups := make([]string, re.NumSubexp()+1)
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		for i := range groups {
			if m[2*i] < 0 {
				groups[i] = ""
				continue
			}
			groups[i] = s[m[2*i]:m[2*i+1]]
		}
		b.WriteString(fn(groups))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
