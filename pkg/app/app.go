// Package app holds the reminder view-model shared by the CLI and the TUI.
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/reminder"
)

// State is the selection/edit state of the view-model.
type State int

const (
	// NoneSelected shows the displayed reminder with no edit surface open.
	NoneSelected State = iota
	// DaySelected has the edit surface open for the selected day.
	DaySelected
)

func (s State) String() string {
	if s == DaySelected {
		return "DaySelected"
	}
	return "NoneSelected"
}

// ErrNoSelection is returned by edit operations when no day is selected.
var ErrNoSelection = errors.New("app: no day selected")

// ViewModel owns the reminder map for a session. It is not safe for
// concurrent use; UI event handlers drive it one at a time.
type ViewModel struct {
	store     *reminder.Store
	reminders reminder.Map

	now       func() time.Time
	weekStart grid.WeekStart
	logger    *slog.Logger

	year  int
	month int

	state    State
	selected *reminder.Date
	draft    string
	warning  error
}

// Option customises a ViewModel.
type Option func(*ViewModel)

// WithClock overrides the clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(vm *ViewModel) {
		if now != nil {
			vm.now = now
		}
	}
}

// WithWeekStart selects the grid week start.
func WithWeekStart(ws grid.WeekStart) Option {
	return func(vm *ViewModel) {
		vm.weekStart = ws
	}
}

// WithLogger sets the logger for non-fatal warnings.
func WithLogger(l *slog.Logger) Option {
	return func(vm *ViewModel) {
		if l != nil {
			vm.logger = l
		}
	}
}

// New loads the reminder map from store and opens on the current month.
func New(ctx context.Context, store *reminder.Store, opts ...Option) *ViewModel {
	vm := &ViewModel{
		store:  store,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.store == nil {
		vm.store = &reminder.Store{}
	}
	vm.reminders = vm.store.Load(ctx)
	vm.ShowToday()
	return vm
}

// Reminders returns the current reminder map.
func (vm *ViewModel) Reminders() reminder.Map {
	return vm.reminders
}

// Reload re-reads the map from persistence, keeping selection and month.
func (vm *ViewModel) Reload(ctx context.Context) {
	vm.reminders = vm.store.Load(ctx)
}

// StorageKey is the KV key the reminders are persisted under.
func (vm *ViewModel) StorageKey() string {
	return vm.store.StorageKey()
}

// Today is the current local date.
func (vm *ViewModel) Today() reminder.Date {
	return reminder.Today(vm.now)
}

// WeekStart is the configured week start.
func (vm *ViewModel) WeekStart() grid.WeekStart {
	return vm.weekStart
}

// State reports whether the edit surface is open.
func (vm *ViewModel) State() State {
	return vm.state
}

// Selected returns the selected day, if any.
func (vm *ViewModel) Selected() (reminder.Date, bool) {
	if vm.selected == nil {
		return reminder.Date{}, false
	}
	return *vm.selected, true
}

// Draft is the text pre-filled in the edit surface.
func (vm *ViewModel) Draft() string {
	return vm.draft
}

// Warning returns the last persistence warning, cleared by the next
// successful write.
func (vm *ViewModel) Warning() error {
	return vm.warning
}

// Displayed is the reminder the character shows: the selected day's if a day
// is selected, otherwise today's.
func (vm *ViewModel) Displayed() (string, bool) {
	if d, ok := vm.Selected(); ok {
		return vm.reminders.Get(d)
	}
	return vm.reminders.Get(vm.Today())
}

// SelectDay opens the edit surface for d, pre-filled with its reminder.
func (vm *ViewModel) SelectDay(d reminder.Date) {
	d = reminder.NewDate(d.Year, d.Month, d.Day)
	vm.selected = &d
	vm.state = DaySelected
	vm.draft, _ = vm.reminders.Get(d)
}

// SelectDayOfMonth selects a day of the displayed month.
func (vm *ViewModel) SelectDayOfMonth(day int) {
	vm.SelectDay(reminder.Date{Year: vm.year, Month: vm.month, Day: day})
}

// Save stores text for the selected day and closes the edit surface. A
// *reminder.ValidationError keeps the surface open; a *reminder.PersistError
// is a warning and the change is kept.
func (vm *ViewModel) Save(ctx context.Context, text string) error {
	d, ok := vm.Selected()
	if !ok || vm.state != DaySelected {
		return ErrNoSelection
	}
	next, err := vm.store.Set(ctx, vm.reminders, d, text)
	var verr *reminder.ValidationError
	if errors.As(err, &verr) {
		vm.draft = text
		return err
	}
	vm.apply(next, err)
	return err
}

// Delete removes the selected day's reminder and closes the edit surface.
func (vm *ViewModel) Delete(ctx context.Context) error {
	d, ok := vm.Selected()
	if !ok || vm.state != DaySelected {
		return ErrNoSelection
	}
	next, err := vm.store.Delete(ctx, vm.reminders, d)
	vm.apply(next, err)
	return err
}

// Cancel closes the edit surface without touching the map.
func (vm *ViewModel) Cancel() {
	vm.state = NoneSelected
	vm.draft = ""
}

// ClearSelection forgets the selected day so today's reminder is displayed.
func (vm *ViewModel) ClearSelection() {
	vm.Cancel()
	vm.selected = nil
}

// CanSave reports whether the draft text would pass validation.
func CanSave(text string) bool {
	return strings.TrimSpace(text) != ""
}

func (vm *ViewModel) apply(next reminder.Map, err error) {
	vm.reminders = next
	vm.state = NoneSelected
	vm.draft = ""
	if err != nil {
		vm.warning = err
		vm.logger.Warn("reminder change kept in memory only", "error", err)
		return
	}
	vm.warning = nil
}
