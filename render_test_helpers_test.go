package mdpage

import (
	"os"
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = osc8Regexp.ReplaceAllString(s, "")
	s = ansiRegexp.ReplaceAllString(s, "")
	return s
}

func renderLines(t *testing.T, src string, width int, opts ...RenderOption) []string {
	t.Helper()
	lines, err := Render(src, width, opts...)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return lines
}

func readSample(tb testing.TB) string {
	tb.Helper()
	data, err := os.ReadFile("testdata/sample.md")
	if err != nil {
		tb.Fatalf("read sample.md: %v", err)
	}
	return string(data)
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("line count mismatch: got %d want %d\n got: %q\nwant: %q", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d mismatch\nwant: %q\n got: %q", i+1, want[i], got[i])
		}
	}
}
