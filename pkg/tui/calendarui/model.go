// Package calendarui is the interactive reminder calendar.
package calendarui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calabacita/pkg/app"
	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/store"
	"tableflip.dev/calabacita/pkg/tui/components/dialog"
	"tableflip.dev/calabacita/pkg/tui/components/panel"
	"tableflip.dev/calabacita/pkg/tui/theme"
	uicalendar "tableflip.dev/calabacita/pkg/ui/calendar"
	"tableflip.dev/calabacita/pkg/ui/character"
)

// Watcher reports changes made to the store by other processes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

// Model is the root Bubble Tea model: calendar, character and dialog.
type Model struct {
	vm      *app.ViewModel
	watcher Watcher

	ctx    context.Context
	cancel context.CancelFunc

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	cursor reminder.Date
	dialog dialog.Model
	help   panel.Model
	theme  theme.Theme

	showHelp bool
	status   string
	width    int
	height   int
}

// New builds the model around vm. watcher may be nil.
func New(vm *app.ViewModel, watcher Watcher) *Model {
	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())
	help := panel.New(th.Panel)
	help.SetContent("Cómo usar tu planner", helpLines())
	return &Model{
		vm:      vm,
		watcher: watcher,
		ctx:     ctx,
		cancel:  cancel,
		cursor:  vm.Today(),
		dialog:  dialog.New(th.Modal),
		help:    help,
		theme:   th,
	}
}

// Run launches the interactive program.
func Run(vm *app.ViewModel, watcher Watcher) error {
	m := New(vm, watcher)
	defer m.cancel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.watcher)
}

// Cursor is the day the keyboard cursor is on.
func (m *Model) Cursor() reminder.Date { return m.cursor }

// Status is the footer message.
func (m *Model) Status() string { return m.status }

// DialogOpen reports whether the reminder dialog is showing.
func (m *Model) DialogOpen() bool { return m.dialog.Active() }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dialog.SetWidth(min(48, max(msg.Width-10, 16)))
		m.help.SetWidth(min(m.theme.Panel.Width, msg.Width-6))
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "no puedo vigilar cambios: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		if msg.event.Type == store.EventInvalidated || msg.event.Key == m.vm.StorageKey() {
			m.vm.Reload(m.ctx)
		}
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
	case dialog.SaveMsg:
		err := m.vm.Save(m.ctx, msg.Text)
		var verr *reminder.ValidationError
		if errors.As(err, &verr) {
			m.status = verr.Error()
			break
		}
		if err != nil && !reminder.IsWarning(err) {
			m.abortEdit(err)
			break
		}
		m.dialog.Close()
		m.status = "Guardado ♥"
		m.noteWarning()
	case dialog.DeleteMsg:
		if err := m.vm.Delete(m.ctx); err != nil && !reminder.IsWarning(err) {
			m.abortEdit(err)
			break
		}
		m.dialog.Close()
		m.status = "Borrado"
		m.noteWarning()
	case dialog.CancelMsg:
		m.vm.Cancel()
		m.dialog.Close()
		m.status = ""
	case tea.KeyPressMsg:
		if m.dialog.Active() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			cmds = append(cmds, cmd)
			break
		}
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		if m.dialog.Active() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopWatch()
		m.cancel()
		return tea.Quit
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "[", "pgup":
		m.vm.PrevMonth()
		m.clampCursor()
	case "]", "pgdown":
		m.vm.NextMonth()
		m.clampCursor()
	case "t":
		m.vm.ShowToday()
		m.vm.ClearSelection()
		m.cursor = m.vm.Today()
	case "?":
		m.showHelp = !m.showHelp
	case "enter", "space", " ":
		m.vm.SelectDay(m.cursor)
		_, existing := m.vm.Reminders().Get(m.cursor)
		m.status = ""
		return m.dialog.Open(m.cursor, m.vm.Draft(), existing)
	}
	return nil
}

// moveCursor moves by days, following the display into adjacent months.
func (m *Model) moveCursor(days int) {
	m.cursor = m.cursor.AddDays(days)
	m.vm.ShowMonth(m.cursor.Year, m.cursor.Month)
}

// clampCursor keeps the cursor's day number inside the displayed month.
func (m *Model) clampCursor() {
	year, month := m.vm.DisplayedMonth()
	day := m.cursor.Day
	if n := grid.DaysIn(year, month); day > n {
		day = n
	}
	m.cursor = reminder.Date{Year: year, Month: month, Day: day}
}

// abortEdit closes the dialog after an edit the view model refused.
func (m *Model) abortEdit(err error) {
	m.dialog.Close()
	m.vm.Cancel()
	if errors.Is(err, app.ErrNoSelection) {
		m.status = "Elige un día primero"
		return
	}
	m.status = err.Error()
}

func (m *Model) noteWarning() {
	if w := m.vm.Warning(); w != nil {
		m.status = "⚠ " + w.Error()
	}
}

// View renders the calendar next to the character, with the dialog or help
// below.
func (m *Model) View() string {
	year, month := m.vm.DisplayedMonth()
	cursor := m.cursor
	grid := app.BuildMonth(year, month, m.vm.WeekStart(), m.vm.Reminders(), m.vm.Today(), &cursor)
	cal := uicalendar.Render(grid, uicalendar.DefaultOptions())

	text, ok := m.vm.Displayed()
	dog := character.Render(text, ok, character.DefaultWidth)

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Calabacita"),
		m.theme.Date.Render(m.vm.Today().Long()),
		"",
		cal,
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", dog)

	sections := []string{body}
	if m.dialog.Active() {
		sections = append(sections, m.dialog.View())
	}
	if m.showHelp {
		if view, _ := m.help.View(); view != "" {
			sections = append(sections, view)
		}
	}
	sections = append(sections, m.footer())
	return strings.Join(sections, "\n\n")
}

func (m *Model) footer() string {
	help := m.theme.Footer.Help.Render("←↓↑→ mover · [ ] mes · enter abrir · t hoy · ? ayuda · q salir")
	if m.status == "" {
		return help
	}
	style := m.theme.Footer.Status
	if m.vm.Warning() != nil && strings.HasPrefix(m.status, "⚠") {
		style = m.theme.Footer.Warning
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status), help)
}

func helpLines() []string {
	return []string{
		"🐾 Elige cualquier día y pulsa enter para agregar un recordatorio",
		"💕 Los días con recordatorios llevan un ♥",
		"🗨️ El recordatorio del día aparece en la burbuja de Calabacita",
		"✏️ Vuelve a abrir un día para editar o borrar (ctrl+d)",
	}
}
