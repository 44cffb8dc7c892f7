package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(calabacita completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(calabacita completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerDayCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("on", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// dayCompletions offers the relative day words and every day holding a
// reminder.
func dayCompletions(toComplete string) []string {
	out := []string{}
	for _, w := range []string{"hoy", "mañana", "ayer", "today", "tomorrow", "yesterday"} {
		if strings.HasPrefix(w, toComplete) {
			out = append(out, w)
		}
	}
	s, err := openSession()
	if err != nil {
		return out
	}
	for _, k := range s.Store.Load(context.Background()).Keys() {
		if strings.HasPrefix(string(k), toComplete) {
			out = append(out, string(k))
		}
	}
	return out
}
