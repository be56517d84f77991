package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/learnloop/learnloop/internal/ui/theme"
)

const bannerArt = `
 ██╗     ███████╗ █████╗ ██████╗ ███╗   ██╗██╗      ██████╗  ██████╗ ██████╗
 ██║     ██╔════╝██╔══██╗██╔══██╗████╗  ██║██║     ██╔═══██╗██╔═══██╗██╔══██╗
 ██║     █████╗  ███████║██████╔╝██╔██╗ ██║██║     ██║   ██║██║   ██║██████╔╝
 ██║     ██╔══╝  ██╔══██║██╔══██╗██║╚██╗██║██║     ██║   ██║██║   ██║██╔═══╝
 ███████╗███████╗██║  ██║██║  ██║██║ ╚████║███████╗╚██████╔╝╚██████╔╝██║
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚══════╝ ╚═════╝  ╚═════╝ ╚═╝`

const (
	appName       = "LEARNLOOP"
	bannerCompact = "L E A R N L O O P"
)

// RenderBanner returns the LEARNLOOP banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 78 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 78 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
