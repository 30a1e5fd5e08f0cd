package mdpage

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8Term  = "\x1b\\"
	osc8End   = "\x1b]8;;\x1b\\"
)

// osc8Terminals lists environment checks that identify terminals known to
// render OSC 8 hyperlinks.
var osc8Terminals = []struct {
	env   string
	match func(value string) bool
}{
	{"DOMTERM", nonEmpty},
	{"WT_SESSION", nonEmpty},
	{"TERM_PROGRAM", oneOf("iTerm.app", "WezTerm", "vscode")},
	{"TERM", func(v string) bool { return strings.Contains(strings.ToLower(v), "kitty") }},
	{"VTE_VERSION", func(v string) bool {
		n, err := strconv.Atoi(v)
		return err == nil && n >= 5000
	}},
}

// DetectOSC8Support reports whether the environment names a terminal that
// renders OSC 8 hyperlinks. OSC8=0 turns detection off.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	for _, check := range osc8Terminals {
		if check.match(os.Getenv(check.env)) {
			return true
		}
	}
	return false
}

func nonEmpty(v string) bool { return v != "" }

func oneOf(values ...string) func(string) bool {
	return func(v string) bool {
		for _, want := range values {
			if v == want {
				return true
			}
		}
		return false
	}
}
