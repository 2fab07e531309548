// Package experience aggregates years of experience from parsed entries.
package experience

import (
	"math"
	"time"

	"github.com/muhammadolammi/hirematch/internal/model"
)

const daysPerYear = 365.25

// TotalYears sums the length of every entry whose start and end resolve to
// calendar dates, with open-ended entries ending at now. Entries with an
// unspecified date or an end before the start are skipped. Overlapping
// entries are each counted in full. The result is rounded to one decimal.
func TotalYears(entries []model.ExperienceEntry, now time.Time) float64 {
	var total float64
	for _, e := range entries {
		years, ok := Years(e, now)
		if !ok {
			continue
		}
		total += years
	}
	return math.Round(total*10) / 10
}

// Years returns the unrounded length of a single entry.
func Years(e model.ExperienceEntry, now time.Time) (float64, bool) {
	start, ok := e.StartDate.Resolve(now)
	if !ok {
		return 0, false
	}
	end, ok := e.EndDate.Resolve(now)
	if !ok || end.Before(start) {
		return 0, false
	}
	days := end.Sub(start).Hours() / 24
	return days / daysPerYear, true
}
