package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/pokedex/internal/core/styles"
)

// Styles are built per render so a theme picked at startup is honored; the
// package would otherwise capture the default palette at init.

func paneBorder(focused bool) lipgloss.Style {
	border := styles.ColorSurface
	if focused {
		border = styles.ColorPrimary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func statusBar() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.ColorForeground).
		Background(styles.ColorSurface)
}
