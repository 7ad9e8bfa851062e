// Package layout renders the chrome shared by every screen: the header
// with the learner status strip, the key-hint footer, and the frame that
// stacks them around screen content.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats feeds the status strip on the right of the header.
type HeaderStats struct {
	Hearts  int
	Gems    int
	Streak  int
	DailyXP int
	Goal    int
}

// IsTooSmall reports whether the terminal cannot fit the UI at all.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the window with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// chromeBox is the shared bordered bar used by header and footer.
func chromeBox(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// statStrip renders hearts, gems, streak and daily-goal progress.
func statStrip(s HeaderStats) string {
	segs := []string{
		lipgloss.NewStyle().Foreground(theme.Heart).Render(fmt.Sprintf("♥ %d", s.Hearts)),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("◆ %d", s.Gems)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("⚡%d", s.Streak)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d XP", s.DailyXP, s.Goal)),
	}
	sep := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ")
	return strings.Join(segs, sep)
}

// RenderHeader draws the top bar: app name on the left, the screen title
// centered, and the learner status strip on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Parlo")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := statStrip(stats)

	inner := width - 4 // border padding
	if inner < 0 {
		inner = 0
	}

	gapL := (inner-lipgloss.Width(center))/2 - lipgloss.Width(left)
	if gapL < 1 {
		gapL = 1
	}
	gapR := inner - lipgloss.Width(left) - gapL - lipgloss.Width(center) - lipgloss.Width(right)
	if gapR < 1 {
		gapR = 1
	}

	row := left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
	return chromeBox(row, width)
}

// RenderFooter draws the bottom bar listing the active key bindings.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return chromeBox("  "+strings.Join(parts, "   "), width)
}

// RenderFrame stacks header, content and footer, stretching the content
// area so the footer stays pinned to the bottom row.
func RenderFrame(header, content, footer string, width, height int) string {
	body := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if body < 0 {
		body = 0
	}
	mid := lipgloss.NewStyle().Width(width).Height(body).Render(content)
	return header + "\n" + mid + "\n" + footer
}
