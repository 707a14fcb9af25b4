// Package tui renders greenevent reports for terminals: lipgloss-styled
// summaries for non-interactive output and a Bubble Tea browser for
// recommendations.
package tui

// ViewState is the screen an interactive model is showing.
type ViewState int

const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)

// Key bindings shared by the interactive models.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keySlash  = "/"
	keySort   = "s"
	keyFilter = "f"
)

// Layout defaults, used until the first WindowSizeMsg arrives.
const (
	defaultWidth         = 100
	defaultHeight        = 30
	minHeight            = 5
	filterInputCharLimit = 64
	filterInputWidth     = 40
)
