package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/store"
)

func init() {
	color.NoColor = true
}

func seeded(t *testing.T) *reminder.Store {
	t.Helper()
	s := reminder.NewStore(store.NewMemory())
	if _, err := s.Set(context.Background(), s.Load(context.Background()), reminder.NewDate(2024, 2, 5), "Buy flowers"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestCalendarJSON(t *testing.T) {
	var buf bytes.Buffer
	c := &Calendar{
		Store:     seeded(t),
		WeekStart: grid.MondayFirst,
		Now:       time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
		Year:      2024,
		Month:     2,
		JSON:      true,
		Out:       &buf,
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got jsonMonth
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.LeadingBlanks != 4 || got.DayCount != 31 || got.WeekStart != "monday" {
		t.Fatalf("unexpected shape %+v", got)
	}
	if got.Reminders[5] != "Buy flowers" || len(got.Reminders) != 1 {
		t.Fatalf("unexpected reminders %+v", got.Reminders)
	}
}

func TestCalendarPlain(t *testing.T) {
	var buf bytes.Buffer
	c := &Calendar{Store: seeded(t), Year: 2024, Month: 2, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "Marzo 2024") || !strings.Contains(buf.String(), " 5♥") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestCalendarYear(t *testing.T) {
	var buf bytes.Buffer
	c := &Calendar{Store: seeded(t), Year: 2024, WholeYear: true, Out: &buf}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, name := range []string{"Enero 2024", "Febrero 2024", "Diciembre 2024"} {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("missing %s in year output", name)
		}
	}
}
