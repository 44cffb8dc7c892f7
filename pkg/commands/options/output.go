package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/calabacita/pkg/reminder"
)

// OutputOptions controls how reminder commands print, and how they report
// failures when --json is set.
type OutputOptions struct {
	JSON bool
	Long bool

	// Out receives JSON error reports. Defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON; failures are printed as {\"error\", \"kind\"} objects.")
}

func AddLongArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVarP(&po.Long, "long", "l", false,
		`Show dates in long form, example: "martes, 5 de marzo de 2024".`)
}

type jsonError struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Date  string `json:"date,omitempty"`
}

// ErrorKind classifies err for scripts reading --json output: "validation"
// for rejected reminder text, "storage" for failed writes, "error" otherwise.
func ErrorKind(err error) string {
	var verr *reminder.ValidationError
	var perr *reminder.PersistError
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.As(err, &perr):
		return "storage"
	default:
		return "error"
	}
}

// HandleError prints err as a JSON object and swallows it when --json is set,
// so scripts get parseable output. Otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	report := jsonError{Error: err.Error(), Kind: ErrorKind(err)}
	var verr *reminder.ValidationError
	if errors.As(err, &verr) {
		report.Date = string(verr.Date.Key())
	}
	b, merr := json.Marshal(report)
	if merr != nil {
		return merr
	}
	out := o.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, string(b))
	return nil
}
