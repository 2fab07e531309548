package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateKind tells whether a Date holds a calendar day or one of the sentinels.
type DateKind int

const (
	DateUnspecified DateKind = iota
	DateCalendar
	DatePresent
)

const dateLayout = "2006-01-02"

const (
	unspecifiedText = "unspecified"
	presentText     = "present"
)

// Date is a resume date. Open-ended entries carry the present sentinel,
// which is resolved against a caller supplied clock, never at parse time.
type Date struct {
	Kind DateKind
	Time time.Time
}

// Unspecified is the zero Date.
var Unspecified = Date{}

// Present marks an open-ended range end.
var Present = Date{Kind: DatePresent}

// CalendarDate builds a calendar Date at UTC midnight.
func CalendarDate(year int, month time.Month, day int) Date {
	return Date{Kind: DateCalendar, Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts "YYYY-MM-DD", "present" or "unspecified" (and empty).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", unspecifiedText:
		return Unspecified, nil
	case presentText:
		return Present, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Unspecified, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Kind: DateCalendar, Time: t}, nil
}

func (d Date) IsUnspecified() bool { return d.Kind == DateUnspecified }

func (d Date) IsPresent() bool { return d.Kind == DatePresent }

// Resolve returns the calendar time of d, using now for the present sentinel.
// The second result is false for unspecified dates.
func (d Date) Resolve(now time.Time) (time.Time, bool) {
	switch d.Kind {
	case DateCalendar:
		return d.Time, true
	case DatePresent:
		return now, true
	default:
		return time.Time{}, false
	}
}

func (d Date) String() string {
	switch d.Kind {
	case DateCalendar:
		return d.Time.Format(dateLayout)
	case DatePresent:
		return presentText
	default:
		return unspecifiedText
	}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Unspecified
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
