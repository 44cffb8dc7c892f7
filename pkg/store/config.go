package store

import (
	"errors"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/calabacita/pkg/grid"
	"tableflip.dev/calabacita/pkg/reminder"
)

// Config describes where and how reminders are stored.
type Config interface {
	BasePath() string
	Namespace() string
	WeekStart() grid.WeekStart
}

// ConfigPathEnv overrides the directory searched for the .calabacita config file.
const ConfigPathEnv = "CALABACITA_CONFIG_PATH"

// LoadConfig reads .calabacita.yaml from $CALABACITA_CONFIG_PATH or the working
// directory, overlaid with CALABACITA_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.calabacita.db")
	v.SetDefault("namespace", reminder.DefaultNamespace)
	v.SetDefault("week_start", grid.SundayFirst.String())
	v.SetConfigName(".calabacita") // .yaml is implicit
	v.SetEnvPrefix("CALABACITA")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	ws, err := grid.ParseWeekStart(v.GetString("week_start"))
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}

	return &fileConfig{
		Path:  path,
		NS:    v.GetString("namespace"),
		Start: ws,
		File:  v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path  string         `json:"path"`
	NS    string         `json:"namespace"`
	Start grid.WeekStart `json:"week_start"`
	File  string         `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Namespace() string {
	if f.NS == "" {
		return reminder.DefaultNamespace
	}
	return f.NS
}

func (f *fileConfig) WeekStart() grid.WeekStart {
	return f.Start
}

// ConfigFile returns the config file viper read, or "" when defaults were used.
func ConfigFile(cfg Config) string {
	switch c := cfg.(type) {
	case *fileConfig:
		return c.File
	case StaticConfig:
		return c.File
	}
	return ""
}

// StaticConfig is a Config with fixed values, handy for tests and flags.
type StaticConfig struct {
	Path  string
	NS    string
	Start grid.WeekStart
	// File records the config file the values came from, if any.
	File string
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Namespace() string {
	if s.NS == "" {
		return reminder.DefaultNamespace
	}
	return s.NS
}

func (s StaticConfig) WeekStart() grid.WeekStart { return s.Start }
