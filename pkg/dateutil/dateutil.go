package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used by the record store.
const DateLayout = "2006-01-02"

// MonthIndex returns an absolute month number (year*12 + zero-based month)
// so that two dates can be compared by calendar month.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// SameMonth reports whether both dates fall in the same calendar month
func SameMonth(a, b time.Time) bool {
	return MonthIndex(a) == MonthIndex(b)
}

// MonthsElapsed counts whole payment periods between start and atDate.
// The calendar month difference is reduced by one when atDate's day of month
// has not yet reached start's day of month. The result can be negative.
func MonthsElapsed(start, atDate time.Time) int {
	months := (atDate.Year()-start.Year())*12 + int(atDate.Month()) - int(start.Month())
	if atDate.Day() < start.Day() {
		months--
	}
	return months
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}
