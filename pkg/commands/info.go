package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/commands/options"
	"tableflip.dev/calabacita/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where reminders are stored and how the calendar is configured.",
		Example: `
calabacita info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			i := info.Info{
				Config:      s.Config,
				Persistence: s.Persistence,
				Store:       s.Store,
				JSON:        oo.JSON,
			}
			oo.Out = cmd.OutOrStdout()
			return oo.HandleError(i.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
