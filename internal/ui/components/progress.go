package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/ui/theme"
)

// ProgressBar is the horizontal fill bar used for the daily goal and
// mission progress. A complete bar switches from blue to green.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar returns a bar sized to the given total width, label
// and percent suffix included.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := 0
	if p.ShowPercent {
		suffix = 6 // " 100%"
	}
	track := p.Width - lipgloss.Width(b.String()) - suffix
	if track < 4 {
		track = 4
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(float64(track) * pct)

	fillColor := theme.Secondary
	if pct >= 1 {
		fillColor = theme.Primary
	}
	b.WriteString(lipgloss.NewStyle().Background(fillColor).Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", track-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100))))
	}

	return b.String()
}
