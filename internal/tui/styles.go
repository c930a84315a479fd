package tui

import (
	"github.com/charmbracelet/lipgloss"

	"georaster/internal/config"
)

// styles is the chrome around the map, tinted from the map palette so the
// frame matches whatever config the user loaded.
type styles struct {
	app, box, title, dim lipgloss.Style
}

var dimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

func newStyles(cfg config.Config) styles {
	return styles{
		app:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Label.Color)),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(cfg.Map.Line)).Padding(0, 1),
		title: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Viewer.HoverColor)).Bold(true),
		dim:   lipgloss.NewStyle().Foreground(dimFg),
	}
}
