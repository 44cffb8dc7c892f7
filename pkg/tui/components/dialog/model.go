// Package dialog is the modal used to write, edit or delete a day's reminder.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/calabacita/pkg/app"
	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/tui/theme"
)

// CharLimit caps how long a reminder typed into the dialog may be.
const CharLimit = 280

// SaveMsg asks the owner to store Text for Date.
type SaveMsg struct {
	Date reminder.Date
	Text string
}

// DeleteMsg asks the owner to remove the reminder for Date.
type DeleteMsg struct {
	Date reminder.Date
}

// CancelMsg reports the dialog was dismissed without changes.
type CancelMsg struct{}

// Model is the reminder dialog. The zero value is closed.
type Model struct {
	input    textinput.Model
	th       theme.ModalTheme
	date     reminder.Date
	existing bool
	active   bool
	width    int
}

func New(th theme.ModalTheme) Model {
	ti := textinput.New()
	ti.Placeholder = "Escribe tu recordatorio…"
	ti.CharLimit = CharLimit
	ti.Prompt = "✎ "
	ti.VirtualCursor = true
	return Model{input: ti, th: th, width: 36}
}

// Open shows the dialog for date with draft pre-filled. existing enables
// deletion.
func (m *Model) Open(date reminder.Date, draft string, existing bool) tea.Cmd {
	m.date = date
	m.existing = existing
	m.active = true
	m.input.SetValue(draft)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// Close hides the dialog and clears the input.
func (m *Model) Close() {
	m.active = false
	m.existing = false
	m.input.Blur()
	m.input.Reset()
}

func (m Model) Active() bool { return m.active }

func (m Model) Date() reminder.Date { return m.date }

func (m Model) Value() string { return m.input.Value() }

// SetValue replaces the text in the input.
func (m *Model) SetValue(s string) { m.input.SetValue(s) }

// SetWidth sets the width of the input area.
func (m *Model) SetWidth(w int) {
	if w < 16 {
		w = 16
	}
	m.width = w
	m.input.SetWidth(w)
}

// Update handles keys while the dialog is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			return m, emit(CancelMsg{})
		case "enter", "ctrl+s":
			if !app.CanSave(m.input.Value()) {
				return m, nil
			}
			return m, emit(SaveMsg{Date: m.date, Text: m.input.Value()})
		case "ctrl+d":
			if !m.existing {
				return m, nil
			}
			return m, emit(DeleteMsg{Date: m.date})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.active {
		return ""
	}
	title := "Nuevo recordatorio"
	if m.existing {
		title = "Editar recordatorio"
	}

	save := "ctrl+s guardar"
	if !app.CanSave(m.input.Value()) {
		save = m.th.Disabled.Render(save)
	} else {
		save = m.th.Hint.Render(save)
	}
	hints := []string{save, m.th.Hint.Render("esc cancelar")}
	if m.existing {
		hints = append(hints, m.th.Hint.Render("ctrl+d borrar"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.th.Title.Render(title),
		m.th.Body.Render(m.date.Long()),
		"",
		m.input.View(),
		"",
		strings.Join(hints, "  "),
	)
	return m.th.Frame.Render(lipgloss.NewStyle().Width(m.width).Render(body))
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
