// Package character draws Calabacita, the chihuahua that reads out the
// reminder for the selected (or current) day.
package character

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

const dog = ` /\       /\ 
/  \_____/  \
\   •   •   /
 \    ᴥ    / 
  \___♥___/  
   /|   |\   `

// DefaultWidth is the bubble text width used when none is given.
const DefaultWidth = 28

var (
	bubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)
	dogStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
)

// Bubble wraps text to width and frames it as a speech bubble with a tail.
func Bubble(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	body := wordwrap.String(strings.TrimSpace(text), width)
	framed := bubbleStyle.Render(body)
	return framed + "\n" + "     \\"
}

// Render draws the character, with a bubble holding reminder when ok is set.
func Render(reminder string, ok bool, width int) string {
	figure := dogStyle.Render(dog)
	if !ok || strings.TrimSpace(reminder) == "" {
		return figure
	}
	return lipgloss.JoinVertical(lipgloss.Left, Bubble(reminder, width), figure)
}
