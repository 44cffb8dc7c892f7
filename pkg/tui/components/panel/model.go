// Package panel renders the framed help panel of the TUI.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/calabacita/pkg/tui/theme"
)

const minWidth = 16

// Model is a framed block of tips: a flower-flanked title over wrapped body
// lines. A line that starts with an emoji keeps its wrapped continuation
// aligned after the emoji.
type Model struct {
	theme theme.PanelTheme
	title string
	tips  []string
	width int
}

func New(th theme.PanelTheme) Model {
	return Model{theme: th, width: th.Width}
}

// SetContent replaces the title and the tips.
func (m *Model) SetContent(title string, tips []string) {
	m.title = title
	m.tips = tips
}

// SetWidth sets the wrap width of the body. Narrow values are raised to a
// usable minimum; zero or less disables wrapping.
func (m *Model) SetWidth(w int) {
	if w > 0 && w < minWidth {
		w = minWidth
	}
	m.width = w
}

// Width is the current wrap width.
func (m Model) Width() int { return m.width }

// Empty reports whether there is anything to draw.
func (m Model) Empty() bool {
	return m.title == "" && len(m.tips) == 0
}

// View returns the rendered panel and its height in lines.
func (m Model) View() (string, int) {
	if m.Empty() {
		return "", 0
	}
	var rows []string
	if m.title != "" {
		rows = append(rows, m.theme.Title.Render(m.decorate(m.title)), "")
	}
	for _, tip := range m.tips {
		for _, line := range m.wrap(tip) {
			rows = append(rows, m.theme.Body.Render(line))
		}
	}
	view := m.theme.Frame.Render(strings.Join(rows, "\n"))
	return view, lipgloss.Height(view)
}

func (m Model) decorate(title string) string {
	if m.theme.Glyph == "" {
		return title
	}
	return m.theme.Glyph + " " + title + " " + m.theme.Glyph
}

// wrap breaks tip at the body width and indents continuation lines under the
// text that follows the leading glyph.
func (m Model) wrap(tip string) []string {
	if m.width <= 0 || ansi.PrintableRuneWidth(tip) <= m.width {
		return []string{tip}
	}
	hang := 0
	if lead, _, ok := strings.Cut(tip, " "); ok && !isWord(lead) {
		hang = ansi.PrintableRuneWidth(lead) + 1
	}
	lines := strings.Split(wordwrap.String(tip, m.width), "\n")
	if hang == 0 {
		return lines
	}
	first := lines[0]
	rest := strings.Join(lines[1:], " ")
	out := []string{first}
	pad := strings.Repeat(" ", hang)
	for _, line := range strings.Split(wordwrap.String(rest, m.width-hang), "\n") {
		out = append(out, pad+line)
	}
	return out
}

// isWord reports whether s is made of letters, so ordinary sentences get no
// hanging indent.
func isWord(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r >= 0xC0 && r <= 0x24F) {
			return false
		}
	}
	return s != ""
}
