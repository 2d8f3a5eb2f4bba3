// Package aviationweather fetches raw METAR and TAF text for an airport.
package aviationweather

import "context"

// WeatherClient retrieves the latest raw report text for an airport.
// Implementations never return an error: any failure is reported as "no text".
type WeatherClient interface {
	// FetchMetar returns the latest METAR, or false when none could be fetched
	FetchMetar(ctx context.Context, identifier string) (string, bool)

	// FetchTaf returns the current TAF, or false when none could be fetched
	FetchTaf(ctx context.Context, identifier string) (string, bool)
}

// ReportKind selects which product a request is for
type ReportKind string

const (
	KindMetar ReportKind = "metar"
	KindTaf   ReportKind = "taf"
)

// rawTextFields lists the JSON fields that may carry the report text, in
// order of preference
var rawTextFields = map[ReportKind][]string{
	KindMetar: {"rawOb", "raw_text", "raw", "text"},
	KindTaf:   {"rawTAF", "raw_text", "raw", "text"},
}
