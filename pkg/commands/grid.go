package commands

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/commands/options"
	"tableflip.dev/calabacita/pkg/runner/calendar"
)

func addGrid(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}
	var year int

	cmd := &cobra.Command{
		Use:     "grid",
		Aliases: []string{"cal", "log"},
		Short:   "Print the month calendar, marking days that have a reminder.",
		Example: `
calabacita grid
calabacita grid --month=+1
calabacita grid --year 2025
calabacita grid --week-start monday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			now := time.Now()
			y, m, err := mo.GetMonth(now)
			if err != nil {
				return err
			}
			c := calendar.Calendar{
				Store:     s.Store,
				WeekStart: s.Config.WeekStart(),
				Now:       now,
				Year:      y,
				Month:     m,
				Styled:    isatty.IsTerminal(os.Stdout.Fd()),
				JSON:      oo.JSON,
			}
			if cmd.Flags().Changed("year") {
				c.Year = year
				c.WholeYear = true
			}
			oo.Out = cmd.OutOrStdout()
			return oo.HandleError(c.Do(context.Background()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().IntVar(&year, "year", 0, "Print all twelve months of a year.")

	topLevel.AddCommand(cmd)
}
