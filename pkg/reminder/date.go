package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/calabacita/pkg/grid"
)

// Date is a wall-clock calendar day. Month is 0-based (0 = January).
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date, normalising out-of-range months and days the same way
// calendar arithmetic does: NewDate(2024, 1, 34) is March 5, 2024.
func NewDate(year, month, day int) Date {
	return DateOf(time.Date(year, time.Month(month+1), day, 12, 0, 0, 0, time.UTC))
}

// DateOf returns the wall-clock date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m) - 1, Day: d}
}

// Time returns local midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Key returns the canonical DateKey for d.
func (d Date) Key() Key {
	return ToKey(d)
}

// Long renders the date for humans, e.g. "martes, 5 de marzo de 2024".
func (d Date) Long() string {
	return grid.LongDate(d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return string(d.Key())
}

// Key is the canonical YYYY-MM-DD identity of a calendar day.
type Key string

// ToKey formats a date as YYYY-MM-DD. The year is zero padded to four digits.
func ToKey(d Date) Key {
	d = NewDate(d.Year, d.Month, d.Day)
	year := fmt.Sprintf("%04d", d.Year)
	if d.Year < 0 {
		year = fmt.Sprintf("-%04d", -d.Year)
	}
	return Key(fmt.Sprintf("%s-%02d-%02d", year, d.Month+1, d.Day))
}

// ParseKey parses a canonical key back into a Date. The year may carry a
// leading "-" and more than four digits, matching what ToKey writes. Keys that
// do not round trip (for example "2024-02-30" or "2024-3-5") are rejected.
func ParseKey(s string) (Date, error) {
	body, sign := s, 1
	if strings.HasPrefix(body, "-") {
		body, sign = body[1:], -1
	}
	parts := strings.Split(body, "-")
	if len(parts) != 3 || len(parts[0]) < 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("reminder: invalid date key %q", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || strings.ContainsAny(p[:1], "+-") {
			return Date{}, fmt.Errorf("reminder: invalid date key %q", s)
		}
		nums[i] = n
	}
	d := Date{Year: sign * nums[0], Month: nums[1] - 1, Day: nums[2]}
	if string(ToKey(d)) != s {
		return Date{}, fmt.Errorf("reminder: non-canonical date key %q", s)
	}
	return d, nil
}

// Before reports whether d falls on an earlier day than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Today returns the current local date according to now.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return DateOf(now())
}
