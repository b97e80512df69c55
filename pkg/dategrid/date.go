// Package dategrid implements the pure calendar math behind the Calendar
// component: month grids, day classification, and range selection. All
// operations work on plain (year, month, day) triples so that no local
// time zone or time-of-day can leak into grid computation.
package dategrid

import "time"

// Date is a calendar day with no time-of-day component. Equality and
// ordering are by calendar day only.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates an instant to the calendar day it falls on in the
// instant's location. This is the only sanctioned bridge from wall-clock
// values into the engine.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Compare returns -1, 0, or 1 depending on whether d sorts before, equal
// to, or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Equal reports whether d and other name the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// Before reports whether d sorts before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d sorts after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// AddDays returns the calendar day n days after d (before, for negative
// n). Normalization is done in UTC so the result never depends on the
// process's local zone.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC)
	return DateOf(t)
}

var daysPerMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month, applying the
// Gregorian leap-year rule for February.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// FirstWeekday returns the weekday of the first day of the month, with
// Sunday as 0. The date is constructed in UTC so the result never depends
// on the process's local zone.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// BuildGrid produces the flat cell sequence for a month view: one nil per
// leading blank before day 1, then one entry per day. Trailing blanks are
// left to the renderer.
func BuildGrid(year int, month time.Month) []*Date {
	lead := int(FirstWeekday(year, month))
	days := DaysInMonth(year, month)

	grid := make([]*Date, lead, lead+days)
	for day := 1; day <= days; day++ {
		d := Date{Year: year, Month: month, Day: day}
		grid = append(grid, &d)
	}
	return grid
}
