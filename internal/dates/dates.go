// Package dates provides canonical date/time rendering for the CAML dialect
// and resolution of relative date expressions.
//
// This package exists to avoid duplicating date handling across:
// - the value formatter (datetime filter values)
// - relative date expressions ("[Today]+5")
// - CLI clock injection (--at)
package dates

import (
	"strings"
	"time"
)

// canonicalLayout is the engine's fixed date-time form, fifteen characters
// of date and time. The trailing zone marker is appended as a literal.
const canonicalLayout = "2006-01-02T15:04:05"

// Canonical renders t in the engine's canonical form: YYYY-MM-DDTHH:mm:ss
// plus a literal trailing Z. The time is rendered in its own location
// without zone conversion; the Z is part of the dialect, not an offset.
func Canonical(t time.Time) string {
	return t.Format(canonicalLayout) + "Z"
}

// Reformat parses ISO-8601 date/time text and re-renders it canonically.
//
// Accepted formats:
// - RFC3339 (e.g. 2024-01-15T00:00:00Z, 2024-06-15T14:00:00+05:00)
// - YYYY-MM-DDTHH:MM:SS
// - YYYY-MM-DDTHH:MM
// - YYYY-MM-DD
//
// Returns the input unchanged with ok=false when it does not parse.
func Reformat(s string) (string, bool) {
	t, err := Parse(s)
	if err != nil {
		return s, false
	}
	return Canonical(t), true
}

// Parse parses a date or datetime in one of the accepted formats.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	var err error
	for _, format := range formats {
		var t time.Time
		if t, err = time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
