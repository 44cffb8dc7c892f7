// Package calendar prints month grids marked with reminder days.
package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calabacita/pkg/app"
	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/printers"
	"tableflip.dev/calabacita/pkg/reminder"
	uicalendar "tableflip.dev/calabacita/pkg/ui/calendar"
)

// Calendar prints one month, or a whole year, of the reminder calendar.
type Calendar struct {
	Store     *reminder.Store
	WeekStart grid.WeekStart
	Now       time.Time

	Year  int
	Month int
	// WholeYear prints the twelve months of Year in compact form.
	WholeYear bool

	Styled bool
	JSON   bool
	Out    io.Writer
}

type jsonMonth struct {
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	WeekStart     string         `json:"week_start"`
	LeadingBlanks int            `json:"leading_blanks"`
	DayCount      int            `json:"day_count"`
	Reminders     map[int]string `json:"reminders"`
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("calendar: no store configured")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Now.IsZero() {
		n.Now = time.Now()
	}

	m := n.Store.Load(ctx)
	today := reminder.DateOf(n.Now)

	if n.WholeYear {
		pp := printers.PrettyPrint{Out: n.Out}
		for month := 0; month < 12; month++ {
			pp.Month(app.BuildMonth(n.Year, month, n.WeekStart, m, today, nil))
		}
		return nil
	}

	month := app.BuildMonth(n.Year, n.Month, n.WeekStart, m, today, nil)
	if n.JSON {
		out := jsonMonth{
			Year:          n.Year,
			Month:         n.Month,
			WeekStart:     n.WeekStart.String(),
			LeadingBlanks: month.Shape.LeadingBlanks,
			DayCount:      month.Shape.DayCount,
			Reminders:     map[int]string{},
		}
		for day := range m.InMonth(n.Year, n.Month) {
			out.Reminders[day], _ = m.Get(reminder.Date{Year: n.Year, Month: n.Month, Day: day})
		}
		enc := json.NewEncoder(n.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	opts := uicalendar.PlainOptions()
	if n.Styled {
		opts = uicalendar.DefaultOptions()
	}
	_, err := fmt.Fprintln(n.Out, uicalendar.Render(month, opts))
	return err
}
