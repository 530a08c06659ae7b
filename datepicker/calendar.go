// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package datepicker

import "time"

// Grid dimensions. Six weeks is enough for any month.
const (
	Weeks = 6
	Days  = 7
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the month of the year.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// AddMonths moves t by n months. The day of month is clamped to the
// length of the target month, so Jan 31 + 1 is Feb 28 (or 29) rather
// than early March.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	m := int(month) - 1 + n
	year += m / 12
	if m %= 12; m < 0 {
		m += 12
		year--
	}
	target := time.Month(m + 1)

	if last := DaysInMonth(year, target); day > last {
		day = last
	}
	return time.Date(year, target, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Cell is the view model of one grid position. A zero Day marks an
// inactive cell outside the displayed month.
type Cell struct {
	Day      int
	Selected bool
}

// Active reports whether the cell holds a day of the displayed month.
func (c Cell) Active() bool {
	return c.Day > 0
}

// Grid is a fixed arena of Weeks x Days cells that is relabeled for
// every month instead of being rebuilt.
type Grid struct {
	Cells [Weeks * Days]Cell

	// Rows is the number of leading week rows holding at least one
	// active cell. The rest are hidden.
	Rows int
}

// At returns the cell at row and column.
func (g *Grid) At(row, col int) Cell {
	return g.Cells[row*Days+col]
}

// Populate lays out the month with selected marked. Cells before the
// weekday of the first and after the last day are inactive.
func (g *Grid) Populate(year int, month time.Month, selected int) {
	first := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	last := DaysInMonth(year, month)

	for kk := range g.Cells {
		day := kk - first + 1
		if day < 1 || day > last {
			day = 0
		}
		g.Cells[kk] = Cell{Day: day, Selected: day > 0 && day == selected}
	}
	g.Rows = (first + last + Days - 1) / Days
}

// Index returns the position of the cell for day or -1.
func (g *Grid) Index(day int) int {
	for kk, c := range g.Cells {
		if c.Active() && c.Day == day {
			return kk
		}
	}
	return -1
}

// Select moves the selection to day and returns the previously and
// newly selected indices (either may be -1).
func (g *Grid) Select(day int) (before, after int) {
	before, after = -1, g.Index(day)
	for kk := range g.Cells {
		if g.Cells[kk].Selected {
			before = kk
			g.Cells[kk].Selected = false
		}
	}
	if after >= 0 {
		g.Cells[after].Selected = true
	}
	return before, after
}
