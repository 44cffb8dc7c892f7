package commands

import (
	"log/slog"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/commands/options"
	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/store"
)

var (
	so = &options.StoreOptions{}
	lo = &options.LogOptions{}
)

func New() *cobra.Command {
	so = &options.StoreOptions{}
	lo = &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "calabacita",
		Short: base.Wrap80("A cute reminder calendar: one note per day, and Calabacita reads you today's."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddStoreArgs(cmd, so)
	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGrid(topLevel)
	addGet(topLevel)
	addSet(topLevel)
	addDelete(topLevel)
	addList(topLevel)
	addToday(topLevel)
	addExport(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addGuide(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// session is what every command needs to reach the reminders.
type session struct {
	Config      store.Config
	Persistence *store.Persistence
	Store       *reminder.Store
	Logger      *slog.Logger
}

func openSession() (*session, error) {
	cfg, err := so.Config()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	logger := lo.Logger()
	logger.Debug("opened reminder store", "path", p.BasePath(), "namespace", cfg.Namespace())
	return &session{
		Config:      cfg,
		Persistence: p,
		Store: &reminder.Store{
			KV:        p,
			Namespace: cfg.Namespace(),
			Logger:    logger,
		},
		Logger: logger,
	}, nil
}
