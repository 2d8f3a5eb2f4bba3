package models

import "strings"

// Certificate is the pilot certificate level
type Certificate string

const (
	CertificateStudent Certificate = "Student"
	CertificatePPL     Certificate = "PPL"
	CertificateIR      Certificate = "IR"
	CertificateCPL     Certificate = "CPL"
)

// Certificates lists every certificate level in display order
var Certificates = []Certificate{
	CertificateStudent,
	CertificatePPL,
	CertificateIR,
	CertificateCPL,
}

// ParseCertificate matches a certificate level case-insensitively
func ParseCertificate(s string) (Certificate, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Certificates {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Minimums are the pilot's own weather limits
type Minimums struct {
	MaxCrosswind  float64 `json:"maxCrosswind" yaml:"max_crosswind"`    // knots
	MinCeiling    float64 `json:"minCeiling" yaml:"min_ceiling"`        // feet
	MinVisibility float64 `json:"minVis" yaml:"min_visibility"`         // statute miles
	MaxGustSpread float64 `json:"maxGustSpread" yaml:"max_gust_spread"` // knots
}

// Currency is a lightweight recency/currency record
type Currency struct {
	NightPassengerCurrent bool `json:"nightPassengerCurrent" yaml:"night_passenger_current"`
	LastFlightDaysAgo     int  `json:"lastFlightDaysAgo" yaml:"last_flight_days_ago"`
}

// PilotProfile describes the pilot's experience and risk tolerance.
// It is always replaced as a whole value; scoring consumes a snapshot.
type PilotProfile struct {
	FullName        string      `json:"fullName" yaml:"full_name"`
	Nickname        string      `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	Certificate     Certificate `json:"certificate" yaml:"certificate"`
	TotalHours      float64     `json:"totalHours" yaml:"total_hours"`
	Hours90         float64     `json:"hours90" yaml:"hours_90"` // hours in the last 90 days
	TypicalAircraft string      `json:"typicalAircraft" yaml:"typical_aircraft"`
	Mins            Minimums    `json:"mins" yaml:"mins"`
	Currency        Currency    `json:"currency" yaml:"currency"`
}

// DefaultProfile returns the profile used on first launch and after a reset
func DefaultProfile() PilotProfile {
	return PilotProfile{
		Certificate:     CertificatePPL,
		TotalHours:      80,
		Hours90:         6,
		TypicalAircraft: "C172",
		Mins: Minimums{
			MaxCrosswind:  10,
			MinCeiling:    2000,
			MinVisibility: 5,
			MaxGustSpread: 8,
		},
		Currency: Currency{
			NightPassengerCurrent: true,
			LastFlightDaysAgo:     14,
		},
	}
}

// IsConfigured reports whether the pilot has entered a usable name
func (p PilotProfile) IsConfigured() bool {
	return len(strings.TrimSpace(p.FullName)) >= 2
}

// Greeting returns the name used to address the pilot
func (p PilotProfile) Greeting() string {
	if nick := strings.TrimSpace(p.Nickname); nick != "" {
		return nick
	}
	if fields := strings.Fields(p.FullName); len(fields) > 0 {
		return fields[0]
	}
	return "Friend"
}
