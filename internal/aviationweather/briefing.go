package aviationweather

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// NoWeatherAdvisory is shown when a briefing came back empty
const NoWeatherAdvisory = "Couldn't fetch weather right now. Try again in a minute."

// Briefing holds the raw reports for a route. Empty strings are reports that
// could not be fetched.
type Briefing struct {
	DepartureMetar   string
	DestinationMetar string
	DepartureTaf     string
	DestinationTaf   string
}

// Empty reports whether nothing at all was fetched
func (b Briefing) Empty() bool {
	return b.DepartureMetar == "" && b.DestinationMetar == "" &&
		b.DepartureTaf == "" && b.DestinationTaf == ""
}

// Advisory returns the message to show when the fetch produced nothing
func (b Briefing) Advisory() string {
	if b.Empty() {
		return NoWeatherAdvisory
	}
	return ""
}

// FetchBriefing fetches METAR and TAF for both ends of the route concurrently.
// Each report is independent; one missing report never affects the others.
func FetchBriefing(ctx context.Context, client WeatherClient, departure, destination string) Briefing {
	var b Briefing
	g, ctx := errgroup.WithContext(ctx)

	fetch := func(dst *string, fn func(context.Context, string) (string, bool), id string) {
		g.Go(func() error {
			if text, ok := fn(ctx, id); ok {
				*dst = text
			}
			return nil
		})
	}

	fetch(&b.DepartureMetar, client.FetchMetar, departure)
	fetch(&b.DestinationMetar, client.FetchMetar, destination)
	fetch(&b.DepartureTaf, client.FetchTaf, departure)
	fetch(&b.DestinationTaf, client.FetchTaf, destination)

	_ = g.Wait()
	return b
}
