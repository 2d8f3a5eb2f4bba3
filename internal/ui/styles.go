package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/preflight-terminal/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // NO-GO
	colorWarning = lipgloss.Color("#FFD93D") // CAUTION
	colorSuccess = lipgloss.Color("#6BCF7F") // GO
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	focusMarkerStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	reportStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	pillStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#000000"))
)

// statusColor maps an advisory status to its display color
func statusColor(s models.Status) lipgloss.Color {
	switch s {
	case models.StatusGo:
		return colorSuccess
	case models.StatusCaution:
		return colorWarning
	default:
		return colorDanger
	}
}

// renderPill renders a status as a colored badge
func renderPill(s models.Status) string {
	return pillStyle.Background(statusColor(s)).Render(string(s))
}
