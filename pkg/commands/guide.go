package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/runner/guide"
)

func addGuide(topLevel *cobra.Command) {
	var width int

	cmd := &cobra.Command{
		Use:     "guide",
		Aliases: []string{"key"},
		Short:   "How to use the planner.",
		Example: `
calabacita guide
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := guide.Guide{
				Width: width,
				Plain: !isatty.IsTerminal(os.Stdout.Fd()),
			}
			return g.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap the guide at this many columns.")

	topLevel.AddCommand(cmd)
}
