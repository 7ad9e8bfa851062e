// Package theme is Parlo's single source of color and type styling.
// Screens and components never hard-code lipgloss colors; they pick a
// named style here so the palette stays coherent.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Bright greens and golds over a deep teal background, loud
// enough to feel like a game while keeping body text readable.
var (
	Primary   = lipgloss.Color("#58CC02") // leaf green
	Secondary = lipgloss.Color("#1CB0F6") // sky blue
	Accent    = lipgloss.Color("#FFC800") // gold
	Heart     = lipgloss.Color("#FF4B4B") // heart red
	Success   = lipgloss.Color("#58CC02")
	Error     = lipgloss.Color("#FF4B4B")
	Text      = lipgloss.Color("#F7F7F7")
	TextDim   = lipgloss.Color("#8B9BB4")
	BgDark    = lipgloss.Color("#131F24")
	BgCard    = lipgloss.Color("#1F2B33")
	Border    = lipgloss.Color("#37464F")
)

// Text styles.
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Spanish marks target-language text so learners can always tell
	// prompt from answer.
	Spanish = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Feedback and state styles.
var (
	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Locked = lipgloss.NewStyle().Foreground(TextDim)

	Toast = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 1)
)
