// Package screen declares the contract every Parlo screen implements.
// It sits below router and app so screens can be built and tested
// without either.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/parlolabs/parlo/internal/ui/layout"
)

// Screen is one full-window view: the welcome flow, the home menu, a
// running lesson, and so on. Update follows the bubbletea convention of
// returning the screen value to keep, which may be the receiver or a
// brand-new screen.
type Screen interface {
	// Init fires once, when the router places the screen on the stack.
	Init() tea.Cmd

	// Update reacts to a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the content area only; the app frame adds the header
	// with the learner's stats and the footer with key hints.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen override the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeHandler marks screens that want Esc delivered to them rather
// than treated as "go back". A lesson in progress implements this to
// show its own quit confirmation instead of silently dropping the run.
type EscapeHandler interface {
	HandlesEscape() bool
}
