// Package daily derives the secret entity for a UTC calendar date. The
// selection is a pure function of the date and the roster size, so
// every process (and every restart) agrees on the day's answer without
// coordination.
package daily

import (
	"time"

	"github.com/guiate/guiate/internal/catalog"
	"github.com/guiate/guiate/pkg/core"
)

const millisPerDay = 86_400_000

// Index maps a moment in time to a roster index. Days since the Unix
// epoch are mixed through a linear-congruential step so consecutive
// dates spread across the roster instead of walking it in order.
// Changing n reshuffles historical assignments; the roster is not meant
// to change on a live system.
func Index(t time.Time, n int) int {
	if n <= 0 {
		return 0
	}
	days := t.UTC().UnixMilli() / millisPerDay
	seed := ((days*1103515245 + 12345) & 0x7fffffff) % 2147483647
	if seed < 0 {
		seed = -seed
	}
	return int(seed % int64(n))
}

// CountryFor returns the secret country for the given date.
func CountryFor(t time.Time, cat *catalog.Catalog) core.Country {
	roster := cat.Roster()
	return roster[Index(t, len(roster))]
}

// PlayerFor returns the secret player for the given date, selecting
// only over the eligible subset of the roster.
func PlayerFor(t time.Time, roster []core.Player) (core.Player, bool) {
	eligible := make([]core.Player, 0, len(roster))
	for _, p := range roster {
		if p.Eligible() {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return core.Player{}, false
	}
	return eligible[Index(t, len(eligible))], true
}

// NextReset returns the next UTC midnight after t, when the daily
// entity rolls over.
func NextReset(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
