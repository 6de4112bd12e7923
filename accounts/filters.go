package accounts

import (
	"sort"
	"strings"
	"time"

	"github.com/Thomassamuel5/QUEEN-KIRA-V1/internal/relativetime"
)

// FilterByName returns the records whose title or username contains q,
// case-insensitively.
func FilterByName(records []ChatRecord, q string) []ChatRecord {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []ChatRecord
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Title), q) ||
			(rec.Username != "" && strings.Contains(strings.ToLower(rec.Username), q)) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterOlderThan returns the records whose last message is more than
// days old. Records without a last message are never considered stale.
func FilterOlderThan(records []ChatRecord, now time.Time, days int) []ChatRecord {
	var out []ChatRecord
	for _, rec := range records {
		if rec.LastMessageAt == nil {
			continue
		}
		if relativetime.DaysBetween(now, *rec.LastMessageAt) > days {
			out = append(out, rec)
		}
	}
	return out
}

// Breakdown is the aggregate count summary over one snapshot.
type Breakdown struct {
	Total    int
	People   int
	Groups   int
	Channels int
	Unread   int
}

func CountByKind(records []ChatRecord) Breakdown {
	var b Breakdown
	b.Total = len(records)
	for _, rec := range records {
		switch rec.Kind {
		case KindPerson:
			b.People++
		case KindGroup:
			b.Groups++
		case KindChannel:
			b.Channels++
		}
		b.Unread += rec.UnreadCount
	}
	return b
}

// SortByRecency returns a copy sorted newest-first; records without a
// last message sort last. The sort is stable so equal timestamps keep
// their aggregation order.
func SortByRecency(records []ChatRecord) []ChatRecord {
	out := make([]ChatRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastMessageAt, out[j].LastMessageAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}
