package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how table output is presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text, for pipes, CI and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is lipgloss-styled text on a terminal.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// ResolveOutputMode picks a mode from terminal state and environment. Plain wins
// whenever output is not a terminal, plain is forced, NO_COLOR or CI is set, or
// TERM is "dumb". Interactive additionally requires the caller to ask for it.
func ResolveOutputMode(isTerminal, wantInteractive, forcePlain bool, getenv func(string) string) OutputMode {
	if !isTerminal || forcePlain {
		return OutputModePlain
	}
	if getenv("NO_COLOR") != "" || getenv("CI") != "" || getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if wantInteractive {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// DetectOutputMode resolves the mode for the process's stdout.
func DetectOutputMode(wantInteractive, forcePlain bool) OutputMode {
	return ResolveOutputMode(IsTerminal(os.Stdout), wantInteractive, forcePlain, os.Getenv)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}
