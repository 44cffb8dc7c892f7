package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/timeutil"
)

// OnOptions selects the day a command acts on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2024-03-05", --on="3/5", --on=mañana or --on=+1w.`)
}

// GetOn resolves the day; an empty flag means today.
func (o *OnOptions) GetOn(now time.Time) (reminder.Date, error) {
	return timeutil.ParseDay(o.OnString, now)
}
