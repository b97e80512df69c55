package dategrid

import "time"

// ViewMonth is the (year, month) pair a calendar currently displays. It is
// independent of selection and changes only through explicit navigation.
type ViewMonth struct {
	Year  int
	Month time.Month
}

// ViewMonthOf returns the view month containing d.
func ViewMonthOf(d Date) ViewMonth {
	return ViewMonth{Year: d.Year, Month: d.Month}
}

// Prev returns the preceding month, rolling the year back across January.
func (v ViewMonth) Prev() ViewMonth {
	if v.Month == time.January {
		return ViewMonth{Year: v.Year - 1, Month: time.December}
	}
	return ViewMonth{Year: v.Year, Month: v.Month - 1}
}

// Next returns the following month, rolling the year forward across
// December.
func (v ViewMonth) Next() ViewMonth {
	if v.Month == time.December {
		return ViewMonth{Year: v.Year + 1, Month: time.January}
	}
	return ViewMonth{Year: v.Year, Month: v.Month + 1}
}

// Contains reports whether d falls inside the view month.
func (v ViewMonth) Contains(d Date) bool {
	return d.Year == v.Year && d.Month == v.Month
}

// Grid builds the cell sequence for the view month.
func (v ViewMonth) Grid() []*Date {
	return BuildGrid(v.Year, v.Month)
}
