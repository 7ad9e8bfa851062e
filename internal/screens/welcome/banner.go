package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/parlolabs/parlo/internal/ui/theme"
)

const bannerArt = `
 ██████╗  █████╗ ██████╗ ██╗      ██████╗
 ██╔══██╗██╔══██╗██╔══██╗██║     ██╔═══██╗
 ██████╔╝███████║██████╔╝██║     ██║   ██║
 ██╔═══╝ ██╔══██║██╔══██╗██║     ██║   ██║
 ██║     ██║  ██║██║  ██║███████╗╚██████╔╝
 ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝ ╚═════╝`

const bannerCompact = "P A R L O"

// RenderBanner returns the PARLO wordmark in the primary color. Terminals
// narrower than 46 columns get a spaced-out plain-text fallback.
func RenderBanner(width int) string {
	art := bannerArt
	if width < 46 {
		art = bannerCompact
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(art)
}
