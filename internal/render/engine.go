package render

import (
	"strings"

	"github.com/abhisek/worksheet/internal/printprofile"
)

// Engine names a PDF backend.
type Engine string

const (
	EngineBrowser Engine = "browser"
	EngineLatex   Engine = "latex"
)

// ParseEngine parses an engine name. Empty and unknown names report false.
func ParseEngine(s string) (Engine, bool) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case EngineBrowser, EngineLatex:
		return e, true
	}
	return "", false
}

// SelectEngine picks the backend for a request. An explicit query override
// wins, then the process-wide env override, then the layout preference:
// two-up sheets go to LaTeX, whose measured columns keep the two halves
// aligned, and single-column pages go to the browser. Unrecognised
// overrides are ignored.
func SelectEngine(layout printprofile.Layout, envOverride, queryOverride string) Engine {
	if e, ok := ParseEngine(queryOverride); ok {
		return e
	}
	if e, ok := ParseEngine(envOverride); ok {
		return e
	}
	if layout.TwoUp() {
		return EngineLatex
	}
	return EngineBrowser
}
