package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title  lipgloss.Style
	Date   lipgloss.Style
	Footer FooterTheme
	Modal  ModalTheme
	Panel  PanelTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
}

// ModalTheme styles the centered reminder dialog.
type ModalTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
	Disabled lipgloss.Style
}

// PanelTheme styles the help panel.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	// Glyph flanks the title on both sides.
	Glyph string
	// Width is the body wrap width used until the panel is resized.
	Width int
}

// Default returns the built-in pastel theme.
func Default() Theme {
	pink := lipgloss.Color("#ff9ecf")
	lavender := lipgloss.Color("#c9b6ff")

	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(pink),
		Date:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(pink).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(pink),
			Body:     lipgloss.NewStyle(),
			Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lavender).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(pink),
			Body:  lipgloss.NewStyle(),
			Glyph: "✿",
			Width: 56,
		},
	}
}
