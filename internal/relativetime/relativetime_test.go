package relativetime

import (
	"strings"
	"testing"
	"time"
)

func TestFormatBuckets(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "Unknown"},
		{"seconds", now.Add(-30 * time.Second), "Just now"},
		{"one minute", now.Add(-90 * time.Second), "1 minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour", now.Add(-1 * time.Hour), "1 hour ago"},
		{"hours", now.Add(-7 * time.Hour), "7 hours ago"},
		{"one day", now.Add(-26 * time.Hour), "1 day ago"},
		{"days", now.Add(-4 * 24 * time.Hour), "4 days ago"},
		{"months", now.Add(-70 * 24 * time.Hour), "2 months ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2 years ago"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(now, tc.t); got != tc.want {
				t.Fatalf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

// Formatting the same timestamp at a later "now" must never report a
// smaller bucket.
func TestFormatMonotonic(t *testing.T) {
	t.Parallel()

	rank := func(s string) int {
		switch {
		case s == "Just now":
			return 0
		case strings.Contains(s, "minute"):
			return 1
		case strings.Contains(s, "hour"):
			return 2
		case strings.Contains(s, "day"):
			return 3
		case strings.Contains(s, "month"):
			return 4
		case strings.Contains(s, "year"):
			return 5
		}
		t.Fatalf("unrecognized bucket %q", s)
		return -1
	}

	stamp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := -1
	for _, offset := range []time.Duration{
		10 * time.Second,
		5 * time.Minute,
		3 * time.Hour,
		50 * time.Hour,
		40 * 24 * time.Hour,
		400 * 24 * time.Hour,
	} {
		got := rank(Format(stamp.Add(offset), stamp))
		if got < prev {
			t.Fatalf("bucket shrank to %d from %d at offset %s", got, prev, offset)
		}
		prev = got
	}
}

func TestDaysBetweenStripsZone(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("plus5", 5*3600)
	a := time.Date(2026, 3, 10, 12, 0, 0, 0, zone)
	b := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	// Same wall-clock reading five days apart; the zone offset must not
	// leak into the difference.
	if got := DaysBetween(a, b); got != 5 {
		t.Fatalf("DaysBetween() = %d, want 5", got)
	}
	if got := DaysBetween(time.Time{}, b); got != 0 {
		t.Fatalf("DaysBetween(zero) = %d, want 0", got)
	}
}
