package home

import (
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default green
	MascotCelebrating                      // Gold, star eyes — daily goal met
	MascotAlert                            // Red tint — hearts running low
)

const mascotIdle = ` ╭─────╮
 │ ◉ ◉ │
 │  ◡  │
 ╰┬───┬╯
  │¡HOLA!`

const mascotCelebrating = ` ╭─────╮
 │ ★ ★ │
 │  ◡  │
 ╰┬───┬╯
  │¡OLÉ!`

const mascotAlert = ` ╭─────╮
 │ ◉ ◉ │ !
 │  ⌓  │
 ╰┬───┬╯
  │¡AY!`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	var art string
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotAlert:
		art = mascotAlert
		fg = theme.Heart
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
