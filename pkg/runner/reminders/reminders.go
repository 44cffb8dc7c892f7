// Package reminders runs the reminder CLI verbs against a reminder.Store.
package reminders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calabacita/pkg/printers"
	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/ui/character"
)

// Action selects what Reminders.Do does.
type Action int

const (
	Get Action = iota
	Set
	Delete
	List
	Today
	// Reset removes every reminder in the namespace.
	Reset
)

// Reminders reads or changes the reminder for one day, or lists them.
type Reminders struct {
	Store  *reminder.Store
	Action Action

	On   reminder.Date
	Text string

	// Month limits List to a 0-based month; nil lists everything.
	Year  int
	Month *int

	JSON bool
	Long bool
	Out  io.Writer
}

type jsonReminder struct {
	Date     reminder.Key `json:"date"`
	Reminder string       `json:"reminder,omitempty"`
	Found    bool         `json:"found"`
}

func (n *Reminders) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("reminders: no store configured")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	m := n.Store.Load(ctx)
	var err error
	switch n.Action {
	case Set:
		m, err = n.Store.Set(ctx, m, n.On, n.Text)
	case Delete:
		m, err = n.Store.Delete(ctx, m, n.On)
	case List:
		return n.list(m)
	case Reset:
		m, err = n.Store.Reset(ctx)
		if err != nil && !reminder.IsWarning(err) {
			return err
		}
		return n.list(m)
	}
	// Persist failures are warnings; the store has already logged them.
	if err != nil && !reminder.IsWarning(err) {
		return err
	}

	text, ok := m.Get(n.On)
	return n.show(text, ok)
}

func (n *Reminders) show(text string, ok bool) error {
	if n.JSON {
		return n.encode(jsonReminder{Date: n.On.Key(), Reminder: text, Found: ok})
	}
	if n.Action == Today {
		_, err := fmt.Fprintln(n.Out, character.Render(text, ok, character.DefaultWidth))
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Long: n.Long}
	pp.Reminder(n.On, text, ok)
	return nil
}

func (n *Reminders) list(m reminder.Map) error {
	entries := m.Entries()
	if n.Month != nil {
		first := reminder.NewDate(n.Year, *n.Month, 1)
		filtered := entries[:0:0]
		for _, e := range entries {
			d, err := reminder.ParseKey(string(e.Key))
			if err == nil && d.Year == first.Year && d.Month == first.Month {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if n.JSON {
		if entries == nil {
			entries = []reminder.Entry{}
		}
		return n.encode(entries)
	}
	pp := printers.PrettyPrint{Out: n.Out, Long: n.Long}
	pp.TitleWithCount("Recordatorios", len(entries))
	pp.Reminders(entries...)
	return nil
}

func (n *Reminders) encode(v any) error {
	enc := json.NewEncoder(n.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
