// Package relativetime formats timestamps as coarse human-readable ages.
package relativetime

import (
	"fmt"
	"time"
)

// Naive strips any zone information, keeping the wall-clock reading.
// Dialog timestamps arrive with and without zone info depending on the
// source; subtraction is only meaningful after both sides are naive.
func Naive(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// DaysBetween returns whole days of a-b after both are made naive.
// A zero operand yields 0.
func DaysBetween(a, b time.Time) int {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return int(Naive(a).Sub(Naive(b)).Hours() / 24)
}

// Format buckets the age of t relative to now: just now, minutes, hours,
// days, months (30d) or years (365d). Zero time reads "Unknown".
func Format(now, t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	diff := Naive(now).Sub(Naive(t))
	if diff < 0 {
		diff = 0
	}
	days := int(diff.Hours() / 24)
	switch {
	case days > 365:
		return plural(days/365, "year")
	case days > 30:
		return plural(days/30, "month")
	case days > 0:
		return plural(days, "day")
	case diff >= time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff >= time.Minute:
		return plural(int(diff.Minutes()), "minute")
	default:
		return "Just now"
	}
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
