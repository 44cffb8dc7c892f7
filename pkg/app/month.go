package app

import (
	"strconv"

	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/reminder"
)

// Cell is one day square of the displayed month.
type Cell struct {
	Day         int
	Key         reminder.Key
	HasReminder bool
	IsToday     bool
	IsSelected  bool
}

// Month is everything a renderer needs to draw the displayed month.
type Month struct {
	Year      int
	Month     int
	Title     string
	Headers   []string
	Shape     grid.Shape
	WeekStart grid.WeekStart
	// Cells holds Shape.Rows()*7 entries; blank squares have Day == 0.
	Cells []Cell
}

// DisplayedMonth returns the displayed (year, 0-based month).
func (vm *ViewModel) DisplayedMonth() (int, int) {
	return vm.year, vm.month
}

// ShowMonth displays the given year and 0-based month.
func (vm *ViewModel) ShowMonth(year, month int) {
	vm.year, vm.month = grid.ShiftMonth(year, month, 0)
}

// ShowToday displays the month containing today.
func (vm *ViewModel) ShowToday() {
	today := vm.Today()
	vm.ShowMonth(today.Year, today.Month)
}

// PrevMonth moves the display one month back.
func (vm *ViewModel) PrevMonth() {
	vm.year, vm.month = grid.ShiftMonth(vm.year, vm.month, -1)
}

// NextMonth moves the display one month forward.
func (vm *ViewModel) NextMonth() {
	vm.year, vm.month = grid.ShiftMonth(vm.year, vm.month, 1)
}

// Grid lays out the displayed month.
func (vm *ViewModel) Grid() Month {
	return BuildMonth(vm.year, vm.month, vm.weekStart, vm.reminders, vm.Today(), vm.selected)
}

// BuildMonth lays out a month with reminder, today and selection markers.
func BuildMonth(year, month int, ws grid.WeekStart, reminders reminder.Map, today reminder.Date, selected *reminder.Date) Month {
	shape := grid.ComputeShape(year, month, ws)
	marked := reminders.InMonth(year, month)

	out := Month{
		Year:      year,
		Month:     month,
		Title:     grid.MonthName(month) + " " + strconv.Itoa(year),
		Headers:   grid.DayHeaders(ws),
		Shape:     shape,
		WeekStart: ws,
	}
	for _, day := range shape.Cells() {
		if day == 0 {
			out.Cells = append(out.Cells, Cell{})
			continue
		}
		d := reminder.Date{Year: year, Month: month, Day: day}
		out.Cells = append(out.Cells, Cell{
			Day:         day,
			Key:         d.Key(),
			HasReminder: marked[day],
			IsToday:     d == today,
			IsSelected:  selected != nil && *selected == d,
		})
	}
	return out
}

// Cell returns the cell for a day of the month, if it exists.
func (m Month) Cell(day int) (Cell, bool) {
	if day < 1 || day > m.Shape.DayCount {
		return Cell{}, false
	}
	return m.Cells[m.Shape.LeadingBlanks+day-1], true
}
