package scoring

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ngmaloney/preflight-terminal/internal/models"
)

// tier is one severity level within a category
type tier struct {
	rule    string
	points  int
	applies func(p models.PilotProfile, f models.FlightInput) bool
	note    func(p models.PilotProfile, f models.FlightInput) string
}

// Category groups mutually exclusive tiers, most severe first.
// At most one tier fires per category.
type Category struct {
	Name  string
	tiers []tier
}

// Evaluate returns the first tier of the category whose condition holds
func (c Category) Evaluate(p models.PilotProfile, f models.FlightInput) (models.TriggeredRule, bool) {
	for _, t := range c.tiers {
		if t.applies(p, f) {
			return models.TriggeredRule{
				Rule:   t.rule,
				Points: t.points,
				Note:   t.note(p, f),
			}, true
		}
	}
	return models.TriggeredRule{}, false
}

// Categories returns a copy of the rule table in evaluation order
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// num formats a value the way a pilot would write it: 10, 0.5, 2500
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// floor0 keeps derived lower bounds from going negative for small limits
func floor0(v float64) float64 {
	return math.Max(0, v)
}

var categories = []Category{
	{
		Name: "crosswind",
		tiers: []tier{
			{
				rule:   "Crosswind above your max",
				points: 3,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.WindCross > p.Mins.MaxCrosswind
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Crosswind %skt > your max %skt.", num(f.WindCross), num(p.Mins.MaxCrosswind))
				},
			},
			{
				rule:   "Crosswind near your max",
				points: 2,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.WindCross >= floor0(p.Mins.MaxCrosswind-3)
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Crosswind %skt is close to your max %skt.", num(f.WindCross), num(p.Mins.MaxCrosswind))
				},
			},
			{
				rule:   "Crosswind worth a second look",
				points: 1,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.WindCross >= floor0(p.Mins.MaxCrosswind-5)
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Crosswind %skt is getting sporty for your limit %skt.", num(f.WindCross), num(p.Mins.MaxCrosswind))
				},
			},
		},
	},
	{
		Name: "ceiling",
		tiers: []tier{
			{
				rule:   "Ceiling below your min",
				points: 3,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.Ceiling < p.Mins.MinCeiling
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Ceiling %sft < your min %sft.", num(f.Ceiling), num(p.Mins.MinCeiling))
				},
			},
			{
				rule:   "Ceiling close to your min",
				points: 2,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.Ceiling <= p.Mins.MinCeiling+500
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Ceiling %sft is close to your min %sft.", num(f.Ceiling), num(p.Mins.MinCeiling))
				},
			},
			{
				rule:   "Ceiling: mild caution",
				points: 1,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.Ceiling <= p.Mins.MinCeiling+1000
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Ceiling %sft is within 1000ft of your min %sft.", num(f.Ceiling), num(p.Mins.MinCeiling))
				},
			},
		},
	},
	{
		Name: "visibility",
		tiers: []tier{
			{
				rule:   "Visibility below your min",
				points: 3,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.Visibility < p.Mins.MinVisibility
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Visibility %ssm < your min %ssm.", num(f.Visibility), num(p.Mins.MinVisibility))
				},
			},
			{
				rule:   "Visibility close to your min",
				points: 2,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.Visibility <= p.Mins.MinVisibility+1
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Visibility %ssm is close to your min %ssm.", num(f.Visibility), num(p.Mins.MinVisibility))
				},
			},
			{
				rule:   "Visibility: mild caution",
				points: 1,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.Visibility <= p.Mins.MinVisibility+2
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Visibility %ssm is within 2sm of your min %ssm.", num(f.Visibility), num(p.Mins.MinVisibility))
				},
			},
		},
	},
	{
		Name: "gust spread",
		tiers: []tier{
			{
				rule:   "Gust spread above your max",
				points: 2,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.GustSpread > p.Mins.MaxGustSpread
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Gust spread %skt > your max %skt.", num(f.GustSpread), num(p.Mins.MaxGustSpread))
				},
			},
			{
				rule:   "Gust spread near your max",
				points: 1,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.GustSpread >= floor0(p.Mins.MaxGustSpread-2)
				},
				note: func(p models.PilotProfile, f models.FlightInput) string {
					return fmt.Sprintf("Gust spread %skt is close to your max %skt.", num(f.GustSpread), num(p.Mins.MaxGustSpread))
				},
			},
		},
	},
	{
		Name: "night currency",
		tiers: []tier{
			{
				rule:   "Not night-passenger current",
				points: 3,
				applies: func(p models.PilotProfile, f models.FlightInput) bool {
					return f.IsNight && !p.Currency.NightPassengerCurrent
				},
				note: func(models.PilotProfile, models.FlightInput) string {
					return "You marked that you're not night-passenger current."
				},
			},
		},
	},
	{
		Name: "recency",
		tiers: []tier{
			{
				rule:   "Long time since last flight",
				points: 2,
				applies: func(p models.PilotProfile, _ models.FlightInput) bool {
					return p.Currency.LastFlightDaysAgo >= 60
				},
				note: lastFlightNote,
			},
			{
				rule:   "A little rusty",
				points: 1,
				applies: func(p models.PilotProfile, _ models.FlightInput) bool {
					return p.Currency.LastFlightDaysAgo >= 30
				},
				note: lastFlightNote,
			},
		},
	},
	{
		Name: "total experience",
		tiers: []tier{
			{
				rule:   "Low total time (extra buffer)",
				points: 1,
				applies: func(p models.PilotProfile, _ models.FlightInput) bool {
					return p.TotalHours < 100
				},
				note: func(p models.PilotProfile, _ models.FlightInput) string {
					return fmt.Sprintf("Total time %sh. I add a little buffer for newer pilots.", num(p.TotalHours))
				},
			},
		},
	},
	{
		Name: "recent experience",
		tiers: []tier{
			{
				rule:   "Low recent time",
				points: 1,
				applies: func(p models.PilotProfile, _ models.FlightInput) bool {
					return p.Hours90 < 10
				},
				note: func(p models.PilotProfile, _ models.FlightInput) string {
					return fmt.Sprintf("Only %sh in the last 90 days.", num(p.Hours90))
				},
			},
		},
	},
}

func lastFlightNote(p models.PilotProfile, _ models.FlightInput) string {
	return fmt.Sprintf("Last flight %d days ago.", p.Currency.LastFlightDaysAgo)
}
