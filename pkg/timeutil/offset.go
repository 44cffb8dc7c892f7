package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-zíá]+)`)
	unitDays      = map[string]int{
		"d":       1,
		"day":     1,
		"days":    1,
		"dia":     1,
		"día":     1,
		"dias":    1,
		"días":    1,
		"w":       7,
		"wk":      7,
		"wks":     7,
		"week":    7,
		"weeks":   7,
		"sem":     7,
		"semana":  7,
		"semanas": 7,
	}
)

// ParseOffset parses a human-friendly day count such as "3d", "1w" or
// "2semanas1d" and returns the number of days along with a canonical, compact
// representation.
func ParseOffset(input string) (int, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, "", fmt.Errorf("empty day offset")
	}

	total := 0
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		days, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += value * days
		remaining = remaining[len(matches[0]):]
	}

	return total, FormatOffset(total), nil
}

// FormatOffset renders a day count as weeks and days, e.g. "1w3d".
func FormatOffset(days int) string {
	sign := ""
	if days < 0 {
		sign, days = "-", -days
	}
	var b strings.Builder
	b.WriteString(sign)
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 || days == 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}
