package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// todayOffsetPattern matches the offset form of a relative date expression:
// a Today marker followed by a sign and a day count. Both tokens may be
// bracket-delimited and separated by arbitrary whitespace.
var todayOffsetPattern = regexp.MustCompile(`\[?Today\]?\s*([+-])\s*\[?(\d+)\]?`)

// ResolveExpression resolves a relative date expression against now.
//
// Two textual passes, both always applied:
//  1. The first "Today±N" match is replaced with the canonical rendering
//     of now shifted by N days.
//  2. Any remaining literal Today marker is replaced with the canonical
//     rendering of now itself.
//
// A bare "[Today]" has no offset form, so pass 1 leaves it for pass 2.
// Text without any marker passes through unchanged.
func ResolveExpression(expr string, now time.Time) string {
	out := expr

	if loc := todayOffsetPattern.FindStringSubmatchIndex(out); loc != nil {
		sign := out[loc[2]:loc[3]]
		days, _ := strconv.Atoi(out[loc[4]:loc[5]])
		if sign == "-" {
			days = -days
		}
		out = out[:loc[0]] + Canonical(now.AddDate(0, 0, days)) + out[loc[1]:]
	}

	out = strings.ReplaceAll(out, "[Today]", Canonical(now))
	out = strings.ReplaceAll(out, "Today", Canonical(now))

	return out
}

// HasTodayMarker reports whether text contains a relative date marker.
func HasTodayMarker(text string) bool {
	return strings.Contains(text, "Today")
}
