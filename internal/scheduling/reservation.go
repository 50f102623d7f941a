package scheduling

import (
	"strings"
	"time"
)

// Layouts carrying an explicit offset or Z. Honoured as-is. Extended
// (2025-04-25T10:00:00+02:00, +0200, +02) and basic (20250425T100000Z)
// ISO-8601 forms are both accepted.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"20060102T150405Z0700",
	"20060102T1504Z0700",
}

// Layouts without an offset. Read in the caller-supplied location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"20060102T150405",
	"20060102T1504",
	"20060102",
}

// ParseReservations parses wire reservations. Values without an offset are
// read as UTC.
func ParseReservations(raw []RawReservation) ([]Reservation, error) {
	return ParseReservationsIn(raw, time.UTC)
}

// ParseReservationsIn parses wire reservations, reading offset-less values in
// loc. Output order matches input order. The first malformed boundary aborts
// the whole parse with a *ParseError. A pair whose end precedes its start is
// kept as given; it never covers a day, so the scheduler tolerates it.
func ParseReservationsIn(raw []RawReservation, loc *time.Location) ([]Reservation, error) {
	if loc == nil {
		loc = time.UTC
	}

	out := make([]Reservation, 0, len(raw))
	for i, r := range raw {
		start, err := ParseDateTime(r.Start, loc)
		if err != nil {
			return nil, &ParseError{Index: i, Field: "start", Value: r.Start, Err: err}
		}
		end, err := ParseDateTime(r.End, loc)
		if err != nil {
			return nil, &ParseError{Index: i, Field: "end", Value: r.End, Err: err}
		}
		out = append(out, Reservation{Start: start, End: end})
	}
	return out, nil
}

// ParseDateTime parses a single ISO-8601 date or date-time.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, ErrInvalidDateTime
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}

// FormatSuggestions renders instants as RFC 3339 strings in UTC.
func FormatSuggestions(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.UTC().Format(time.RFC3339)
	}
	return out
}
