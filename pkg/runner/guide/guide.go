// Package guide prints the short usage guide for the planner.
package guide

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

// Markdown is the guide source.
const Markdown = `# Cómo usar tu planner

- 🐾 Elige cualquier día del calendario para agregar un recordatorio.
- 💕 Los días con recordatorios llevan un ♥ junto al número.
- 🗨️ El recordatorio del día aparece en la burbuja de Calabacita.
- ✏️ Puedes editar o borrar un recordatorio eligiendo el día otra vez.

## Teclas

| tecla | acción |
|-------|--------|
| ←↓↑→ / h j k l | moverse por los días |
| [ / ] | mes anterior / siguiente |
| t | volver a hoy |
| enter | abrir el día |
| ctrl+s | guardar |
| ctrl+d | borrar |
| esc | cerrar sin guardar |
| q | salir |
`

type Guide struct {
	// Width wraps the rendered guide; zero uses 80 columns.
	Width int
	// Plain skips glamour and prints the markdown source.
	Plain bool
	Out   io.Writer
}

func (g *Guide) Do(_ context.Context) error {
	out := g.Out
	if out == nil {
		out = color.Output
	}
	if g.Plain {
		_, err := io.WriteString(out, Markdown)
		return err
	}

	width := g.Width
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("guide: %w", err)
	}
	rendered, err := renderer.Render(Markdown)
	if err != nil {
		return fmt.Errorf("guide: %w", err)
	}
	_, err = io.WriteString(out, rendered)
	return err
}
