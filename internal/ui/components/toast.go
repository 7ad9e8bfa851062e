package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/notify"
	"github.com/parlolabs/parlo/internal/ui/theme"
)

// RenderToasts renders the active notifications as a stacked column of
// toast boxes, newest at the bottom. Returns "" when there are none.
func RenderToasts(ns []notify.Notification, width int) string {
	if len(ns) == 0 {
		return ""
	}
	boxW := width - 8
	if boxW > 44 {
		boxW = 44
	}
	if boxW < 24 {
		boxW = 24
	}
	var boxes []string
	for _, n := range ns {
		title := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(n.Icon + " " + n.Title)
		body := lipgloss.NewStyle().Foreground(theme.TextDim).Render(n.Message)
		boxes = append(boxes, theme.Toast.Width(boxW).Render(title+"\n"+body))
	}
	return strings.Join(boxes, "\n")
}
