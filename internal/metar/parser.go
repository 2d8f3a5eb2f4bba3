// Package metar extracts wind, visibility and ceiling from raw METAR text.
package metar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ngmaloney/preflight-terminal/internal/models"
)

var (
	stationRe   = regexp.MustCompile(`^[A-Z]{4}$`)
	windRe      = regexp.MustCompile(`^(VRB|\d{3})(\d{2,3})(?:G(\d{2,3}))?KT$`)
	wholeVisRe  = regexp.MustCompile(`^(\d{1,2})SM$`)
	fracVisRe   = regexp.MustCompile(`^(\d)/(\d)SM$`)
	wholeNumRe  = regexp.MustCompile(`^\d{1,2}$`)
	ceilLayerRe = regexp.MustCompile(`^(?:BKN|OVC|VV)(\d{3})$`)
)

// Parse extracts what it can from a single METAR line. Fields that do not
// match their exact pattern are left nil; Parse never fails.
func Parse(raw string) models.MetarParse {
	out := models.MetarParse{Raw: raw}

	tokens := strings.Fields(raw)
	if len(tokens) < 2 {
		return out
	}

	if station := strings.ToUpper(tokens[0]); stationRe.MatchString(station) {
		out.Station = station
	}

	parseWind(tokens, &out)
	out.VisibilitySM = parseVisibility(tokens)
	out.CeilingFT = parseCeiling(tokens)

	return out
}

// parseWind uses the first wind group, e.g. 21012G18KT or VRB04KT
func parseWind(tokens []string, out *models.MetarParse) {
	for _, t := range tokens {
		m := windRe.FindStringSubmatch(t)
		if m == nil {
			continue
		}

		if m[1] == "VRB" {
			out.WindVariable = true
		} else {
			out.WindDir = atoiPtr(m[1])
		}
		out.WindSpeed = atoiPtr(m[2])
		if m[3] != "" {
			out.Gust = atoiPtr(m[3])
		}
		return
	}
}

// parseVisibility handles 10SM, 1/2SM and 1 1/2SM. The first visibility
// group ends the scan even if its fraction is unusable.
func parseVisibility(tokens []string) *float64 {
	for i, t := range tokens {
		if m := wholeVisRe.FindStringSubmatch(t); m != nil {
			v, _ := strconv.ParseFloat(m[1], 64)
			return &v
		}

		if m := fracVisRe.FindStringSubmatch(t); m != nil {
			v, ok := fraction(m[1], m[2])
			if !ok {
				return nil
			}
			return &v
		}

		if wholeNumRe.MatchString(t) && i+1 < len(tokens) {
			if m := fracVisRe.FindStringSubmatch(tokens[i+1]); m != nil {
				frac, ok := fraction(m[1], m[2])
				if !ok {
					return nil
				}
				whole, _ := strconv.ParseFloat(t, 64)
				v := whole + frac
				return &v
			}
		}
	}
	return nil
}

// parseCeiling returns the lowest broken, overcast or vertical visibility layer
func parseCeiling(tokens []string) *int {
	var ceiling *int
	for _, t := range tokens {
		m := ceilLayerRe.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		hundreds, _ := strconv.Atoi(m[1])
		ft := hundreds * 100
		if ceiling == nil || ft < *ceiling {
			ceiling = &ft
		}
	}
	return ceiling
}

func fraction(num, den string) (float64, bool) {
	n, _ := strconv.ParseFloat(num, 64)
	d, _ := strconv.ParseFloat(den, 64)
	if d == 0 {
		return 0, false
	}
	return n / d, true
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
