package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/preflight-terminal/internal/aviationweather"
	"github.com/ngmaloney/preflight-terminal/internal/history"
	"github.com/ngmaloney/preflight-terminal/internal/metar"
	"github.com/ngmaloney/preflight-terminal/internal/models"
	"github.com/ngmaloney/preflight-terminal/internal/scoring"
	"github.com/ngmaloney/preflight-terminal/internal/ui"
)

// This demo shows the UI with mock data
func main() {
	m := ui.NewModel(ui.Dependencies{})

	// Set up mock profile
	pilot := models.DefaultProfile()
	pilot.FullName = "Jason Denisyuk"
	pilot.Nickname = "Captain J"
	pilot.TotalHours = 142
	pilot.Hours90 = 4
	m.SetProfile(pilot)

	// Set up mock weather
	briefing := aviationweather.Briefing{
		DepartureMetar:   "KCGF 181753Z 21014G24KT 4SM -RA BKN018 OVC030 11/08 A2992",
		DestinationMetar: "KAKR 181751Z 22012KT 6SM BR BKN025 11/07 A2993",
		DepartureTaf:     "TAF KCGF 181720Z 1818/1918 21012G22KT 5SM -RA BKN020 FM190000 24008KT P6SM BKN035",
		DestinationTaf:   "TAF KAKR 181720Z 1818/1918 22010KT P6SM SCT035 FM190000 24006KT P6SM BKN050",
	}
	m.SetBriefing(briefing)

	flight := models.DefaultFlight()
	flight.Departure = "KCGF"
	flight.Destination = "KAKR"
	flight.When = time.Now().Add(2 * time.Hour).Format("2006-01-02 15:04")
	flight = flight.WithMetar(metar.Parse(briefing.DepartureMetar))
	m.SetFlight(flight)

	// Set up mock history
	now := time.Now()
	earlier := flight
	earlier.WindCross, earlier.GustSpread, earlier.Ceiling, earlier.Visibility = 6, 2, 4500, 10
	calm := scoring.Decide(pilot, earlier)
	m.SetRecent([]history.Entry{
		{
			ID:          1,
			Status:      calm.Status,
			Score:       calm.Score,
			Departure:   "KCGF",
			Destination: "KAKR",
			TitleLine:   calm.TitleLine,
			CreatedAt:   now.Add(-26 * time.Hour),
			Decision:    calm,
		},
	})

	m.SetDecision(scoring.Decide(pilot, flight))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
