// Package scoring turns a pilot profile and planned flight conditions into
// an explained GO / CAUTION / NO-GO advisory.
package scoring

import (
	"sort"
	"strings"

	"github.com/ngmaloney/preflight-terminal/internal/models"
)

const (
	// Score cut points. Fixed, not per-profile.
	noGoScore    = 6
	cautionScore = 3

	maxBullets = 6

	fallbackBullet = "Nothing here jumps out as a problem based on what you entered."
)

// Decide scores a flight against the pilot's personal minimums.
// It never fails: numeric input is used exactly as given.
func Decide(profile models.PilotProfile, flight models.FlightInput) models.Decision {
	var triggered []models.TriggeredRule
	for _, c := range categories {
		if r, ok := c.Evaluate(profile, flight); ok {
			triggered = append(triggered, r)
		}
	}

	// Most severe first; ties keep evaluation order.
	sort.SliceStable(triggered, func(i, j int) bool {
		return triggered[i].Points > triggered[j].Points
	})

	score := 0
	for _, r := range triggered {
		score += r.Points
	}

	status := StatusForScore(score)

	inputs := flight
	inputs.Departure = NormalizeIdentifier(flight.Departure)
	inputs.Destination = NormalizeIdentifier(flight.Destination)

	return models.Decision{
		Status:    status,
		Score:     score,
		TitleLine: titleLine(status, profile.Greeting()),
		Bullets:   bullets(triggered),
		Tech: models.Audit{
			Inputs:         inputs,
			Profile:        profile,
			RulesTriggered: triggered,
		},
	}
}

// StatusForScore maps a total score onto the advisory status
func StatusForScore(score int) models.Status {
	switch {
	case score >= noGoScore:
		return models.StatusNoGo
	case score >= cautionScore:
		return models.StatusCaution
	default:
		return models.StatusGo
	}
}

// bullets takes the notes of the first maxBullets rules, which arrive
// sorted by severity
func bullets(rules []models.TriggeredRule) []string {
	if len(rules) == 0 {
		return []string{fallbackBullet}
	}
	if len(rules) > maxBullets {
		rules = rules[:maxBullets]
	}

	notes := make([]string, len(rules))
	for i, r := range rules {
		notes[i] = r.Note
	}
	return notes
}

func titleLine(status models.Status, name string) string {
	switch status {
	case models.StatusNoGo:
		return name + ", I’d call this a no-go based on your limits."
	case models.StatusCaution:
		return name + ", this one’s flyable, but it’s pushing your usual comfort zone."
	default:
		return name + ", I like this one."
	}
}

// NormalizeIdentifier cleans an airport identifier: trimmed, uppercased,
// stripped to A-Z and 0-9, and cut to 6 characters.
func NormalizeIdentifier(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))

	var b strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	return b.String()
}
