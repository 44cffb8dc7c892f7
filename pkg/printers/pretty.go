package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calabacita/pkg/reminder"
)

// PrettyPrint writes human friendly, coloured output.
type PrettyPrint struct {
	Out  io.Writer
	Long bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " recordatorio")
	default:
		_, _ = c.Fprintln(pp.out(), " recordatorios")
	}
}

// Reminder prints the reminder for a single day, or a faint "none".
func (pp *PrettyPrint) Reminder(d reminder.Date, text string, ok bool) {
	label := string(d.Key())
	if pp.Long {
		label = d.Long()
	}
	h := color.New(color.FgHiMagenta, color.Bold)
	_, _ = h.Fprint(pp.out(), label)
	if !ok {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "  sin recordatorio")
		return
	}
	_, _ = fmt.Fprintf(pp.out(), "  %s\n", text)
}

// Reminders prints every entry as a two column table.
func (pp *PrettyPrint) Reminders(entries ...reminder.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	for _, e := range entries {
		date := string(e.Key)
		if pp.Long {
			if d, err := reminder.ParseKey(date); err == nil {
				date = d.Long()
			}
		}
		table.AddRow(color.New(color.FgHiYellow).Sprint(date), e.Text)
	}
	_, _ = fmt.Fprintln(pp.out(), table)
	pp.NewLine()
}
