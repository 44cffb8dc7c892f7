// Package export writes reminders out as an iCalendar feed of all-day events.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"tableflip.dev/calabacita/pkg/reminder"
)

// ProductID identifies the generator in exported calendars.
const ProductID = "-//tableflip.dev//calabacita//ES"

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://tableflip.dev/calabacita"))

// UID returns the stable event UID for a day, so re-importing an export
// updates events instead of duplicating them.
func UID(key reminder.Key) string {
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@calabacita"
}

// Calendar builds a VCALENDAR holding one all-day VEVENT per reminder. DATE
// values only carry four digit years, so reminders outside 0000..9999 are left
// out of the feed.
func Calendar(m reminder.Map, stamp time.Time) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	for _, e := range m.Entries() {
		d, err := reminder.ParseKey(string(e.Key))
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		if !Exportable(d) {
			continue
		}
		start := time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.UTC)

		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, UID(e.Key))
		ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		ve.Props.SetDate(ical.PropDateTimeStart, start)
		ve.Props.SetDate(ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
		ve.Props.SetText(ical.PropSummary, e.Text)
		cal.Children = append(cal.Children, ve)
	}
	return cal, nil
}

// Exportable reports whether d and the day after it, used as DTEND, fit an
// iCalendar DATE value.
func Exportable(d reminder.Date) bool {
	return d.Year >= 0 && d.AddDays(1).Year <= 9999
}

// Write encodes the reminders as iCalendar to w.
func Write(w io.Writer, m reminder.Map, stamp time.Time) error {
	cal, err := Calendar(m, stamp)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("export: encode calendar: %w", err)
	}
	return nil
}
