package models

// MetarParse holds the fields extracted from one raw METAR line.
// A nil pointer means the field could not be determined.
type MetarParse struct {
	Raw          string   `json:"raw" yaml:"raw"`
	Station      string   `json:"station,omitempty" yaml:"station,omitempty"`
	WindDir      *int     `json:"windDir" yaml:"wind_dir"`             // degrees true
	WindVariable bool     `json:"windVariable" yaml:"wind_variable"`   // direction reported as VRB
	WindSpeed    *int     `json:"windSpeed" yaml:"wind_speed"`         // knots
	Gust         *int     `json:"gust" yaml:"gust"`                    // knots
	VisibilitySM *float64 `json:"visibilitySM" yaml:"visibility_sm"`   // statute miles
	CeilingFT    *int     `json:"ceilingFT" yaml:"ceiling_ft"`         // lowest BKN/OVC/VV layer
}

// HasAny reports whether any structured field was extracted
func (m MetarParse) HasAny() bool {
	return m.Station != "" ||
		m.WindDir != nil ||
		m.WindVariable ||
		m.WindSpeed != nil ||
		m.Gust != nil ||
		m.VisibilitySM != nil ||
		m.CeilingFT != nil
}
