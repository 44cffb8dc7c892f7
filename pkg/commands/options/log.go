package options

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// LogOptions controls diagnostic output on stderr.
type LogOptions struct {
	Level string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "warn",
		"Diagnostics level on stderr: debug, info, warn or error.")
}

// Logger builds a text logger on stderr at the configured level.
func (o *LogOptions) Logger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(o.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
