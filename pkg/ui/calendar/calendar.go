// Package calendar renders a reminder month as a styled 7-column grid.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/calabacita/pkg/app"
)

// Marker is drawn next to days holding a reminder.
const Marker = "♥"

// Options controls the styling of the rendered calendar.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyles  [7]lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowTitle     bool
	ShowHeader    bool
}

// headerHues are the column header colours, left to right.
var headerHues = [7][3]float64{
	{160, 0.70, 0.75}, // mint
	{10, 1.00, 0.80},  // coral
	{20, 1.00, 0.85},  // peach
	{270, 1.00, 0.90}, // lavender
	{10, 1.00, 0.80},
	{20, 1.00, 0.85},
	{160, 0.70, 0.75},
}

// HeaderColor returns the hex colour of a header column.
func HeaderColor(col int) string {
	h := headerHues[col%len(headerHues)]
	return colorful.Hsl(h[0], h[1], h[2]).Hex()
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	var headers [7]lipgloss.Style
	for i := range headers {
		headers[i] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(HeaderColor(i)))
	}
	return Options{
		TitleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		HeaderStyles:  headers,
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		EntryStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		TodayStyle:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("226")),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowTitle:     true,
		ShowHeader:    true,
	}
}

// PlainOptions renders without any styling, for pipes and tests.
func PlainOptions() Options {
	plain := lipgloss.NewStyle()
	var headers [7]lipgloss.Style
	for i := range headers {
		headers[i] = plain
	}
	return Options{
		TitleStyle:    plain,
		HeaderStyles:  headers,
		EmptyStyle:    plain,
		EntryStyle:    plain,
		TodayStyle:    plain,
		SelectedStyle: plain,
		ShowTitle:     true,
		ShowHeader:    true,
	}
}

// Render produces a multi-line calendar string for the month.
func Render(month app.Month, opts Options) string {
	var lines []string
	if opts.ShowTitle {
		title := month.Title
		if pad := (Width() - len([]rune(title))) / 2; pad > 0 {
			title = strings.Repeat(" ", pad) + title
		}
		lines = append(lines, opts.TitleStyle.Render(title))
	}
	if opts.ShowHeader {
		cells := make([]string, len(month.Headers))
		for i, h := range month.Headers {
			cells[i] = opts.HeaderStyles[i%7].Render(h)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	for row := 0; row < month.Shape.Rows(); row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			cells = append(cells, renderCell(month.Cells[row*7+col], opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}

// Width is the printable width of a rendered row.
func Width() int {
	return 7*3 + 6
}

func renderCell(c app.Cell, opts Options) string {
	if c.Day == 0 {
		return opts.EmptyStyle.Render("   ")
	}
	marker := " "
	if c.HasReminder {
		marker = Marker
	}
	text := fmt.Sprintf("%2d%s", c.Day, marker)

	style := opts.EmptyStyle
	if c.HasReminder {
		style = opts.EntryStyle
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
