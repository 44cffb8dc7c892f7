package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/timeutil"
)

// MonthOptions selects the month a command shows.
type MonthOptions struct {
	MonthString string
	All         bool
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.MonthString, "month", "m", "",
		`Specify a month, example: --month=2024-03, --month=marzo or --month=+1.`)
}

func AddAllArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Ignore --month and use every reminder.")
}

// GetMonth resolves the month to (year, 0-based month).
func (o *MonthOptions) GetMonth(now time.Time) (int, int, error) {
	return timeutil.ParseMonth(o.MonthString, now)
}
