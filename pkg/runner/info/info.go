// Package info reports where reminders are kept and how they are configured.
package info

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calabacita/pkg/reminder"
	"tableflip.dev/calabacita/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence *store.Persistence
	Store       *reminder.Store

	JSON bool
	Out  io.Writer
}

type jsonInfo struct {
	ConfigFile string   `json:"config_file,omitempty"`
	Path       string   `json:"path"`
	Namespace  string   `json:"namespace"`
	WeekStart  string   `json:"week_start"`
	Keys       []string `json:"keys"`
	Reminders  int      `json:"reminders"`
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil || n.Persistence == nil || n.Store == nil {
		return errors.New("info: not configured")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	out := jsonInfo{
		ConfigFile: store.ConfigFile(n.Config),
		Path:       n.Persistence.BasePath(),
		Namespace:  n.Config.Namespace(),
		WeekStart:  n.Config.WeekStart().String(),
		Keys:       n.Persistence.Keys(ctx),
		Reminders:  n.Store.Load(ctx).Len(),
	}
	if out.Keys == nil {
		out.Keys = []string{}
	}

	if n.JSON {
		enc := json.NewEncoder(n.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	configFile := out.ConfigFile
	if configFile == "" {
		configFile = "(defaults)"
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("config:", configFile)
	tbl.AddRow("path:", out.Path)
	tbl.AddRow("namespace:", out.Namespace)
	tbl.AddRow("week start:", out.WeekStart)
	tbl.AddRow("reminders:", out.Reminders)
	for _, k := range out.Keys {
		tbl.AddRow("key:", k)
	}
	_, err := io.WriteString(n.Out, tbl.String()+"\n")
	return err
}
