package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kosakata/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗ ██████╗ ███████╗ █████╗ ██╗  ██╗ █████╗ ████████╗ █████╗
 ██║ ██╔╝██╔═══██╗██╔════╝██╔══██╗██║ ██╔╝██╔══██╗╚══██╔══╝██╔══██╗
 █████╔╝ ██║   ██║███████╗███████║█████╔╝ ███████║   ██║   ███████║
 ██╔═██╗ ██║   ██║╚════██║██╔══██║██╔═██╗ ██╔══██║   ██║   ██╔══██║
 ██║  ██╗╚██████╔╝███████║██║  ██║██║  ██╗██║  ██║   ██║   ██║  ██║
 ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "K O S A K A T A"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 67

// RenderBanner returns the KOSAKATA banner styled in the primary color.
// Uses a compact fallback for narrower terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
