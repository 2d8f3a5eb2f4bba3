package models

import "math"

// FlightInput holds the planned conditions for a single flight check
type FlightInput struct {
	Departure   string  `json:"departure"`
	Destination string  `json:"destination"`
	When        string  `json:"when"` // free text, not parsed
	IsNight     bool    `json:"isNight"`
	WindCross   float64 `json:"windCross"`  // knots, approximated from wind speed
	Ceiling     float64 `json:"ceiling"`    // feet
	Visibility  float64 `json:"visibility"` // statute miles
	GustSpread  float64 `json:"gustSpread"` // knots
}

// DefaultFlight returns the starting values for a new flight check
func DefaultFlight() FlightInput {
	return FlightInput{
		WindCross:  6,
		Ceiling:    3500,
		Visibility: 10,
		GustSpread: 4,
	}
}

// WithMetar returns a copy of f with every field the report could determine
// overlaid. Fields the parser left unknown keep their current value.
func (f FlightInput) WithMetar(m MetarParse) FlightInput {
	windSpeed := f.WindCross
	if m.WindSpeed != nil {
		windSpeed = float64(*m.WindSpeed)
	}
	f.WindCross = windSpeed

	if m.Gust != nil {
		f.GustSpread = math.Max(0, float64(*m.Gust)-windSpeed)
	}
	if m.CeilingFT != nil {
		f.Ceiling = float64(*m.CeilingFT)
	}
	if m.VisibilitySM != nil {
		f.Visibility = *m.VisibilitySM
	}
	return f
}
