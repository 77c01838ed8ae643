package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// Colour palette.
var (
	ColorWhite  = lipgloss.Color("#FFFFFF")
	ColorOrange = lipgloss.Color("#FF8800")
	ColorRed    = lipgloss.Color("#FF2222")
	ColorGray   = lipgloss.Color("240")
	ColorGreen  = lipgloss.Color("#44FF44")
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(1, 3).
			Align(lipgloss.Center)

	runningPanelStyle = panelStyle.BorderForeground(ColorGreen)

	titleStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	statusStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			MarginTop(1)

	activeStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)
)

// hintStyle returns the text style for a colour hint.
func hintStyle(h timer.ColorHint) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch h {
	case timer.HintWarning:
		return s.Foreground(ColorOrange)
	case timer.HintExpired:
		return s.Foreground(ColorRed)
	default:
		return s.Foreground(ColorWhite)
	}
}
