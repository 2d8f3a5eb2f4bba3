package ui

import (
	"strings"

	"github.com/ngmaloney/preflight-terminal/internal/models"
)

const (
	keyDeparture   = "departure"
	keyDestination = "destination"
	keyWhen        = "when"
	keyNight       = "night"
	keyCrosswind   = "crosswind"
	keyGustSpread  = "gust_spread"
	keyCeiling     = "ceiling"
	keyVisibility  = "visibility"
)

func newFlightForm(f models.FlightInput) form {
	dep := newTextField(keyDeparture, "Departure (ICAO)", f.Departure, "KCGF")
	dep.input.CharLimit = 8
	dest := newTextField(keyDestination, "Destination (ICAO)", f.Destination, "KAKR")
	dest.input.CharLimit = 8

	return newForm(
		dep,
		dest,
		newTextField(keyWhen, "Planned departure (optional)", f.When, "2026-01-27 14:30"),
		newToggleField(keyNight, "Night flight", f.IsNight),
		newNumberField(keyCrosswind, "Crosswind (kt)", f.WindCross),
		newNumberField(keyGustSpread, "Gust spread (kt)", f.GustSpread),
		newNumberField(keyCeiling, "Ceiling (ft)", f.Ceiling),
		newNumberField(keyVisibility, "Visibility (sm)", f.Visibility),
	)
}

// readFlight builds flight input from the form. Rows that do not parse keep
// the value from base and are reported in errs.
func readFlight(f form, base models.FlightInput) (in models.FlightInput, errs []string) {
	in = base
	in.Departure = strings.TrimSpace(f.text(keyDeparture))
	in.Destination = strings.TrimSpace(f.text(keyDestination))
	in.When = strings.TrimSpace(f.text(keyWhen))
	in.IsNight = f.toggled(keyNight)

	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	var err error
	in.WindCross, err = f.number(keyCrosswind, base.WindCross)
	collect(err)
	in.GustSpread, err = f.number(keyGustSpread, base.GustSpread)
	collect(err)
	in.Ceiling, err = f.number(keyCeiling, base.Ceiling)
	collect(err)
	in.Visibility, err = f.number(keyVisibility, base.Visibility)
	collect(err)

	return in, errs
}

// setConditions writes back the conditions of in that the report m
// determined. Rows the report says nothing about keep whatever was typed.
func setConditions(f form, in models.FlightInput, m models.MetarParse) {
	if m.WindSpeed != nil {
		f.setNumber(keyCrosswind, in.WindCross)
	}
	if m.Gust != nil {
		f.setNumber(keyGustSpread, in.GustSpread)
	}
	if m.CeilingFT != nil {
		f.setNumber(keyCeiling, in.Ceiling)
	}
	if m.VisibilitySM != nil {
		f.setNumber(keyVisibility, in.Visibility)
	}
}
