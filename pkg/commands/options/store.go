package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/store"
)

// StoreOptions overrides the configured storage location and week start.
type StoreOptions struct {
	Path      string
	Namespace string
	WeekStart string
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory reminders are stored in (overrides config).")
	cmd.PersistentFlags().StringVar(&o.Namespace, "namespace", "",
		"Key the reminder map is stored under (overrides config).")
	cmd.PersistentFlags().StringVar(&o.WeekStart, "week-start", "",
		"First column of the calendar, sunday or monday (overrides config).")
}

// Config loads the config file and applies flag overrides.
func (o *StoreOptions) Config() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	out := store.StaticConfig{
		Path:  cfg.BasePath(),
		NS:    cfg.Namespace(),
		Start: cfg.WeekStart(),
		File:  store.ConfigFile(cfg),
	}
	if o.Path != "" {
		out.Path = o.Path
	}
	if o.Namespace != "" {
		out.NS = o.Namespace
	}
	if o.WeekStart != "" {
		ws, err := grid.ParseWeekStart(o.WeekStart)
		if err != nil {
			return nil, err
		}
		out.Start = ws
	}
	return out, nil
}
