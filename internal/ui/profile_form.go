package ui

import (
	"strings"

	"github.com/ngmaloney/preflight-terminal/internal/models"
)

const (
	keyFullName        = "full_name"
	keyNickname        = "nickname"
	keyCertificate     = "certificate"
	keyTotalHours      = "total_hours"
	keyHours90         = "hours_90"
	keyTypicalAircraft = "typical_aircraft"
	keyMaxCrosswind    = "max_crosswind"
	keyMaxGustSpread   = "max_gust_spread"
	keyMinCeiling      = "min_ceiling"
	keyMinVisibility   = "min_visibility"
	keyNightCurrent    = "night_current"
	keyLastFlightDays  = "last_flight_days"
)

func certificateOptions() []string {
	opts := make([]string, len(models.Certificates))
	for i, c := range models.Certificates {
		opts[i] = string(c)
	}
	return opts
}

func newProfileForm(p models.PilotProfile) form {
	return newForm(
		newTextField(keyFullName, "Full name", p.FullName, "Jason Denisyuk"),
		newTextField(keyNickname, "Nickname (optional)", p.Nickname, "Captain J"),
		newChoiceField(keyCertificate, "Certificate", certificateOptions(), string(p.Certificate)),
		newNumberField(keyTotalHours, "Total hours", p.TotalHours),
		newNumberField(keyHours90, "Hours last 90 days", p.Hours90),
		newTextField(keyTypicalAircraft, "Typical aircraft", p.TypicalAircraft, "C172"),
		newNumberField(keyMaxCrosswind, "Max crosswind (kt)", p.Mins.MaxCrosswind),
		newNumberField(keyMaxGustSpread, "Max gust spread (kt)", p.Mins.MaxGustSpread),
		newNumberField(keyMinCeiling, "Min ceiling (ft)", p.Mins.MinCeiling),
		newNumberField(keyMinVisibility, "Min visibility (sm)", p.Mins.MinVisibility),
		newToggleField(keyNightCurrent, "Night-passenger current", p.Currency.NightPassengerCurrent),
		newNumberField(keyLastFlightDays, "Days since last flight", float64(p.Currency.LastFlightDaysAgo)),
	)
}

// readProfile builds a profile from the form. Rows that do not parse keep
// the value from base and are reported in errs.
func readProfile(f form, base models.PilotProfile) (p models.PilotProfile, errs []string) {
	p = base
	p.FullName = strings.TrimSpace(f.text(keyFullName))
	p.Nickname = strings.TrimSpace(f.text(keyNickname))
	p.TypicalAircraft = strings.TrimSpace(f.text(keyTypicalAircraft))
	if cert, ok := models.ParseCertificate(f.selected(keyCertificate)); ok {
		p.Certificate = cert
	}
	p.Currency.NightPassengerCurrent = f.toggled(keyNightCurrent)

	collect := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	var err error
	p.TotalHours, err = f.number(keyTotalHours, base.TotalHours)
	collect(err)
	p.Hours90, err = f.number(keyHours90, base.Hours90)
	collect(err)
	p.Mins.MaxCrosswind, err = f.number(keyMaxCrosswind, base.Mins.MaxCrosswind)
	collect(err)
	p.Mins.MaxGustSpread, err = f.number(keyMaxGustSpread, base.Mins.MaxGustSpread)
	collect(err)
	p.Mins.MinCeiling, err = f.number(keyMinCeiling, base.Mins.MinCeiling)
	collect(err)
	p.Mins.MinVisibility, err = f.number(keyMinVisibility, base.Mins.MinVisibility)
	collect(err)
	p.Currency.LastFlightDaysAgo, err = f.wholeNumber(keyLastFlightDays, base.Currency.LastFlightDaysAgo)
	collect(err)

	return p, errs
}
