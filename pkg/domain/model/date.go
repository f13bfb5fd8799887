package model

import (
	"fmt"
	"time"
)

// Date identifies a calendar day without a time component. Samples are
// grouped by the calendar day their timestamp represents in its own
// location; no timezone normalization happens here.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of the given instant, in the instant's
// own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Weekday returns the day of the week of the calendar date. The weekday of
// a calendar date does not depend on location.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsBusinessDay checks if the date falls on Monday through Friday
func (d Date) IsBusinessDay() bool {
	wd := d.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// Before reports whether d is earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Format formats the date with the given time layout
func (d Date) Format(layout string) string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(layout)
}

// String returns the date in ISO-8601 form (e.g., "2025-09-01")
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
