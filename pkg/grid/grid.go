// Package grid computes the shape of a month laid out on a 7-column calendar.
//
// Months are 0-based (0 = January) throughout the package so callers coming
// from the reminder date model do not need to translate. Everything here is a
// pure function of its arguments.
package grid

import (
	"fmt"
	"strings"
	"time"
)

// Columns is the number of columns in a calendar week row.
const Columns = 7

// WeekStart selects which weekday occupies column 0 of the grid.
type WeekStart int

const (
	// SundayFirst uses the native weekday index directly (Sunday = 0).
	SundayFirst WeekStart = iota
	// MondayFirst rotates the week so Monday = 0 and Sunday = 6.
	MondayFirst
)

func (w WeekStart) String() string {
	switch w {
	case MondayFirst:
		return "monday"
	default:
		return "sunday"
	}
}

// ParseWeekStart accepts "sunday"/"sun" or "monday"/"mon" in any case.
func ParseWeekStart(s string) (WeekStart, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "sun":
		return SundayFirst, nil
	case "monday", "mon":
		return MondayFirst, nil
	}
	return SundayFirst, fmt.Errorf("grid: unknown week start %q", s)
}

// Rotate maps a native weekday (Sunday = 0) into a column index.
func (w WeekStart) Rotate(wd time.Weekday) int {
	if w == MondayFirst {
		return (int(wd) + 6) % 7
	}
	return int(wd)
}

// Shape is the leading blank count and day count of a month.
type Shape struct {
	LeadingBlanks int
	DayCount      int
}

// Rows is the number of week rows needed to show the month.
func (s Shape) Rows() int {
	return (s.LeadingBlanks + s.DayCount + Columns - 1) / Columns
}

// Cells lays the month out row by row. Blank cells are 0, day cells hold the
// day of month. The result is padded to a whole number of rows.
func (s Shape) Cells() []int {
	cells := make([]int, s.Rows()*Columns)
	for day := 1; day <= s.DayCount; day++ {
		cells[s.LeadingBlanks+day-1] = day
	}
	return cells
}

// ComputeShape returns the grid shape for the given year and 0-based month.
func ComputeShape(year, month int, ws WeekStart) Shape {
	return Shape{
		LeadingBlanks: ws.Rotate(Weekday(year, month, 1)),
		DayCount:      DaysIn(year, month),
	}
}

// ShiftMonth moves a (year, month) pair by delta months, carrying into the year.
func ShiftMonth(year, month, delta int) (int, int) {
	total := year*12 + month + delta
	y := floorDiv(total, 12)
	return y, total - y*12
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in the 0-based month of year.
func DaysIn(year, month int) int {
	year, month = ShiftMonth(year, month, 0)
	if month == 1 && IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

// Weekday returns the native weekday of the given date. UTC is used so the
// answer never depends on the local zone's DST rules.
func Weekday(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month+1), day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Column returns the grid column of a day under the given week start.
func Column(year, month, day int, ws WeekStart) int {
	return ws.Rotate(Weekday(year, month, day))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
