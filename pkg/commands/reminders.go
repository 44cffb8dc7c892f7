package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/commands/options"
	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/runner/reminders"
)

// dayArg lets the day be given positionally instead of with --on.
func dayArg(on *options.OnOptions, args []string) {
	if len(args) > 0 && on.OnString == "" {
		on.OnString = args[0]
	}
}

func runReminders(cmd *cobra.Command, r *reminders.Reminders, oo *options.OutputOptions) error {
	cmd.SilenceUsage = true
	s, err := openSession()
	if err != nil {
		return err
	}
	r.Store = s.Store
	r.Out = cmd.OutOrStdout()
	r.JSON = oo.JSON
	r.Long = oo.Long
	oo.Out = r.Out
	return oo.HandleError(r.Do(context.Background()))
}

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get [day]",
		Short: "Show the reminder for a day.",
		Example: `
calabacita get
calabacita get mañana
calabacita get --on 2024-03-05 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayArg(on, args)
			day, err := on.GetOn(time.Now())
			if err != nil {
				return err
			}
			return runReminders(cmd, &reminders.Reminders{Action: reminders.Get, On: day}, oo)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	options.AddLongArg(cmd, oo)
	registerDayCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addSet(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "set [text]",
		Short: "Write the reminder for a day, replacing any existing one.",
		Example: `
calabacita set Comprar flores
calabacita set --on mañana "Llevar a Calabacita al veterinario"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := on.GetOn(time.Now())
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			return runReminders(cmd, &reminders.Reminders{Action: reminders.Set, On: day, Text: text}, oo)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	options.AddLongArg(cmd, oo)
	registerDayCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}
	var all bool

	cmd := &cobra.Command{
		Use:     "delete [day]",
		Aliases: []string{"rm", "strike"},
		Short:   "Remove the reminder for a day.",
		Example: `
calabacita delete
calabacita rm 2024-03-05
calabacita delete --all
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				if len(args) > 0 || on.OnString != "" {
					return errors.New("--all removes every reminder; do not name a day")
				}
				return runReminders(cmd, &reminders.Reminders{Action: reminders.Reset}, oo)
			}
			dayArg(on, args)
			day, err := on.GetOn(time.Now())
			if err != nil {
				return err
			}
			return runReminders(cmd, &reminders.Reminders{Action: reminders.Delete, On: day}, oo)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&all, "all", false, "Remove every reminder in the namespace.")
	registerDayCompletion(cmd)

	topLevel.AddCommand(cmd)
}

func addList(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the reminders of a month, or all of them.",
		Example: `
calabacita list
calabacita list --month marzo
calabacita list --all --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := &reminders.Reminders{Action: reminders.List}
			if !mo.All {
				year, month, err := mo.GetMonth(time.Now())
				if err != nil {
					return err
				}
				r.Year = year
				r.Month = &month
			}
			return runReminders(cmd, r, oo)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddAllArg(cmd, mo)
	options.AddOutputArg(cmd, oo)
	options.AddLongArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addToday(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Calabacita tells you today's reminder.",
		Example: `
calabacita today
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := reminder.DateOf(time.Now())
			return runReminders(cmd, &reminders.Reminders{Action: reminders.Today, On: today}, oo)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
