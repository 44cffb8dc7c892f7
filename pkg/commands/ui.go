package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/app"
	"tableflip.dev/calabacita/pkg/tui/calendarui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar.",
		Example: `
calabacita ui
calabacita ui --week-start monday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui needs an interactive terminal")
			}
			s, err := openSession()
			if err != nil {
				return err
			}
			vm := app.New(context.Background(), s.Store,
				app.WithWeekStart(s.Config.WeekStart()),
				app.WithLogger(s.Logger),
			)
			return calendarui.Run(vm, s.Persistence)
		},
	}

	topLevel.AddCommand(cmd)
}
