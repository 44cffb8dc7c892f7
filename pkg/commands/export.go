package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every reminder as an iCalendar (.ics) file.",
		Example: `
calabacita export > reminders.ics
calabacita export -o ~/reminders.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			e := export.Export{Store: s.Store, File: file, Out: cmd.OutOrStdout()}
			return e.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&file, "output", "o", "", "Write to this file instead of stdout.")

	topLevel.AddCommand(cmd)
}
