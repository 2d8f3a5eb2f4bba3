package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/preflight-terminal/internal/models"
)

// viewResult renders the decision
func (m Model) viewResult() string {
	if m.decision == nil {
		return "No decision yet"
	}
	d := m.decision

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("My call  "),
		renderPill(d.Status),
	)

	headline := valueStyle.Bold(true).Render(d.TitleLine)

	bullets := make([]string, len(d.Bullets))
	for i, b := range d.Bullets {
		bullets[i] = "• " + b
	}

	var sections []string
	sections = append(sections, header, "", headline, "")
	sections = append(sections, strings.Join(bullets, "\n"))

	toggle := "T: Show technical details"
	if m.showTech {
		toggle = "T: Hide technical details"
		sections = append(sections, renderTech(*d))
	}

	help := helpStyle.Render(toggle + " • N: New check • H: Home • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTech renders the score, every triggered rule and the exact inputs
func renderTech(d models.Decision) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s %d", labelStyle.Render("Score:"), d.Score))
	lines = append(lines, "", labelStyle.Render("Triggered rules"))

	if len(d.Tech.RulesTriggered) == 0 {
		lines = append(lines, "  No rules triggered.")
	}
	for _, r := range d.Tech.RulesTriggered {
		lines = append(lines, fmt.Sprintf("  %s (+%d): %s", r.Rule, r.Points, r.Note))
	}

	lines = append(lines, "", labelStyle.Render("Inputs"))
	inputs, err := json.MarshalIndent(struct {
		Profile models.PilotProfile `json:"profile"`
		Flight  models.FlightInput  `json:"flight"`
	}{d.Tech.Profile, d.Tech.Inputs}, "", "  ")
	if err != nil {
		lines = append(lines, mutedStyle.Render(err.Error()))
	} else {
		lines = append(lines, string(inputs))
	}

	return sectionBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.MarginTop(0).Render("Technical details"),
		strings.Join(lines, "\n"),
	))
}
