package models

// Status is the advisory outcome of a flight check
type Status string

const (
	StatusGo      Status = "GO"
	StatusCaution Status = "CAUTION"
	StatusNoGo    Status = "NO-GO"
)

// TriggeredRule is one rule that fired during scoring
type TriggeredRule struct {
	Rule   string `json:"rule"`
	Points int    `json:"points"`
	Note   string `json:"note"`
}

// Audit records exactly what the engine saw
type Audit struct {
	Inputs         FlightInput     `json:"inputs"` // route identifiers normalized
	Profile        PilotProfile    `json:"profile"`
	RulesTriggered []TriggeredRule `json:"rulesTriggered"` // evaluation order, untruncated
}

// Decision is the scored, explained result of a flight check
type Decision struct {
	Status    Status   `json:"status"`
	Score     int      `json:"score"`
	TitleLine string   `json:"titleLine"`
	Bullets   []string `json:"bullets"` // most severe first, at most 6
	Tech      Audit    `json:"tech"`
}
