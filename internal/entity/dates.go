package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/muhammadolammi/hirematch/internal/model"
)

var monthByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseDateRange reads the first "YYYY - YYYY|word" range in line. A year
// alone starts on January 1st and ends on December 31st; a named month
// narrows that to the first or last day of the month. A word end marks
// the range as open-ended.
func parseDateRange(line string) (start, end model.Date, ok bool) {
	m := dateRange.FindStringSubmatch(line)
	if m == nil {
		return model.Unspecified, model.Unspecified, false
	}
	startYear, err := strconv.Atoi(m[2])
	if err != nil {
		return model.Unspecified, model.Unspecified, false
	}
	startMonth := time.January
	if mon, found := lookupMonth(m[1]); found {
		startMonth = mon
	}
	start = model.CalendarDate(startYear, startMonth, 1)

	endYear, err := strconv.Atoi(m[4])
	if err != nil {
		return start, model.Present, true
	}
	if mon, found := lookupMonth(m[3]); found {
		// day 0 of the next month is the last day of mon
		end = model.CalendarDate(endYear, mon+1, 0)
	} else {
		end = model.CalendarDate(endYear, time.December, 31)
	}
	return start, end, true
}

func lookupMonth(name string) (time.Month, bool) {
	if len(name) < 3 {
		return 0, false
	}
	mon, ok := monthByPrefix[strings.ToLower(name[:3])]
	return mon, ok
}
