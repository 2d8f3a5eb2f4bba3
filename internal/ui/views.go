package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/preflight-terminal/internal/history"
)

const crosswindNote = "Note: crosswind is approximated from wind speed, not computed against a runway heading."

// viewHome renders the landing screen
func (m Model) viewHome() string {
	title := titleStyle.Render("✈ Am I safe to fly today?")
	blurb := mutedStyle.Render("I’ll help you decide based on your experience and personal minimums.")

	var help string
	if m.profile.IsConfigured() {
		help = helpStyle.Render(fmt.Sprintf("Welcome back, %s • N: New flight check • P: Edit my profile • Q: Quit", m.profile.Greeting()))
	} else {
		help = helpStyle.Render("N: Set up my pilot profile • Q: Quit")
	}

	var sections []string
	sections = append(sections, title)
	sections = append(sections, blurb)
	sections = append(sections, help)

	sections = append(sections, sectionHeaderStyle.Render("Recent checks"))
	sections = append(sections, renderRecent(m.recent))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderRecent(entries []history.Entry) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No flight checks yet")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(10).Render(renderPill(e.Status)),
			lipgloss.NewStyle().Width(16).Render(e.Route()),
			mutedStyle.Width(12).Render(fmt.Sprintf("score %d", e.Score)),
			mutedStyle.Render(e.CreatedAt.Local().Format("Jan 2 15:04")),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewProfile renders the profile form
func (m Model) viewProfile() string {
	title := titleStyle.Render("Let’s get to know you")

	box := sectionBoxStyle.Render(m.profileForm.View())

	help := helpStyle.Render("Tab/↑/↓: Move • ←/→: Certificate • Space: Toggle • Ctrl+S: Save & continue • Ctrl+R: Reset • Esc: Back")

	var sections []string
	sections = append(sections, title, "", box)
	if m.formErr != "" {
		sections = append(sections, errorStyle.Render("✗ "+m.formErr))
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewFlight renders the flight form and any fetched reports
func (m Model) viewFlight() string {
	title := titleStyle.Render("Tell me about your flight")
	subtitle := mutedStyle.Render("Enter the conditions you’re expecting, or pull them from the latest METAR.")

	box := sectionBoxStyle.Render(m.flightForm.View())

	var sections []string
	sections = append(sections, title, subtitle, "", box)

	if m.wxErr != "" {
		sections = append(sections, errorStyle.Render("✗ "+m.wxErr))
	}
	if m.formErr != "" {
		sections = append(sections, errorStyle.Render("✗ "+m.formErr))
	}

	if wx := m.renderBriefing(); wx != "" {
		sections = append(sections, wx)
	}

	help := helpStyle.Render("Tab/↑/↓: Move • Space: Toggle • Ctrl+W: Auto-fill from METAR/TAF • Enter: Check this flight • Ctrl+P: Edit profile • Esc: Home")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBriefing shows the raw reports from the last weather fetch
func (m Model) renderBriefing() string {
	b := m.briefing
	if b.Empty() {
		return ""
	}

	var lines []string
	add := func(label, text string) {
		if text == "" {
			return
		}
		lines = append(lines, labelStyle.Render(label), reportStyle.Render(text))
	}

	add("Departure METAR", b.DepartureMetar)
	add("Destination METAR", b.DestinationMetar)
	add("Departure TAF", b.DepartureTaf)
	add("Destination TAF", b.DestinationTaf)
	lines = append(lines, mutedStyle.Render(crosswindNote))

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Weather"),
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	route := fmt.Sprintf("%s → %s", m.flightForm.text(keyDeparture), m.flightForm.text(keyDestination))
	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		fmt.Sprintf("%s Fetching weather for %s…", m.spinner.View(), route),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to return home • Q: Quit")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, "")
	sections = append(sections, errorMsg)
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
