package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/reminder"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutMonth    = "2006-1"
)

// ParseDay resolves a day argument relative to now. Accepted forms:
// "today"/"hoy", "tomorrow"/"mañana", "yesterday"/"ayer", "2024-03-05",
// "2024-3-5", "12345-03-05", "3/5" (the next such day, this year or next)
// and offsets such as "+3d" or "-1w".
func ParseDay(input string, now time.Time) (reminder.Date, error) {
	today := reminder.DateOf(now)
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "", "today", "hoy":
		return today, nil
	case "tomorrow", "mañana", "manana":
		return today.AddDays(1), nil
	case "yesterday", "ayer":
		return today.AddDays(-1), nil
	}

	// Canonical keys, including years past 9999 and before 0000.
	if d, err := reminder.ParseKey(s); err == nil {
		return d, nil
	}

	if s[0] == '+' || s[0] == '-' {
		days, _, err := ParseOffset(s[1:])
		if err != nil {
			return reminder.Date{}, fmt.Errorf("invalid day offset %q: %w", input, err)
		}
		if s[0] == '-' {
			days = -days
		}
		return today.AddDays(days), nil
	}

	if t, err := time.Parse(layoutISO, s); err == nil {
		return reminder.DateOf(t), nil
	}

	t, err := time.Parse(layoutISOShort, s)
	if err != nil {
		return reminder.Date{}, fmt.Errorf("invalid day %q, want YYYY-MM-DD or M/D", input)
	}
	// 1/3 said on 12/5 means next year, not eleven months ago.
	d := reminder.Date{Year: today.Year, Month: int(t.Month()) - 1, Day: t.Day()}
	if d.Key() < today.Key() {
		d.Year++
	}
	return d, nil
}

// ParseMonth resolves a month argument to (year, 0-based month). Accepted
// forms: "" (this month), "2024-03", "2024-3", "3" (this year), "+1"/"-2"
// (relative) and Spanish or English month names with an optional year.
func ParseMonth(input string, now time.Time) (int, int, error) {
	year, month := now.Year(), int(now.Month())-1
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return year, month, nil
	}

	if s[0] == '+' || s[0] == '-' {
		delta, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid month offset %q", input)
		}
		y, m := grid.ShiftMonth(year, month, delta)
		return y, m, nil
	}

	if t, err := time.Parse(layoutMonth, s); err == nil {
		return t.Year(), int(t.Month()) - 1, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, 0, fmt.Errorf("month %d out of range", n)
		}
		return year, n - 1, nil
	}

	fields := strings.Fields(s)
	m, ok := monthByName(fields[0])
	if !ok {
		return 0, 0, fmt.Errorf("invalid month %q", input)
	}
	if len(fields) > 1 {
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year in %q", input)
		}
		year = y
	}
	return year, m, nil
}

func monthByName(name string) (int, bool) {
	for m := 0; m < 12; m++ {
		es := strings.ToLower(grid.MonthName(m))
		en := strings.ToLower(time.Month(m + 1).String())
		if name == es || name == en || (len(name) >= 3 && (strings.HasPrefix(es, name) || strings.HasPrefix(en, name))) {
			return m, true
		}
	}
	return 0, false
}
