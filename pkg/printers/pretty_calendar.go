package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/calabacita/pkg/app"
)

const width = len("DOM LUN MAR MIÉ JUE VIE SAB") // an example week

// Month prints the month grid: faint days without reminders, bold days with
// one, underlined today and inverted selection.
func (pp *PrettyPrint) Month(month app.Month) {
	tf := color.New(color.FgWhite, color.Italic)

	m := month.Title
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)

	hf := color.New(color.Bold)
	_, _ = hf.Fprintln(pp.out(), strings.Join(month.Headers, " "))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiMagenta)

	for i, c := range month.Cells {
		if i > 0 && i%7 == 0 {
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
		if c.Day == 0 {
			_, _ = fmt.Fprint(pp.out(), "    ")
			continue
		}
		printer := l1
		marker := " "
		if c.HasReminder {
			printer = l2
			marker = "♥"
		}
		if c.IsToday {
			printer = color.New(color.Underline, color.Bold)
		}
		if c.IsSelected {
			printer = color.New(color.ReverseVideo)
		}
		_, _ = printer.Fprintf(pp.out(), "%2d%s", c.Day, marker)
		_, _ = fmt.Fprint(pp.out(), " ")
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}
