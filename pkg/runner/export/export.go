// Package export writes the reminder calendar as an iCalendar file.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/calabacita/pkg/export"
	"tableflip.dev/calabacita/pkg/reminder"
)

// Export writes every reminder to File, or to Out when File is empty.
type Export struct {
	Store *reminder.Store
	File  string
	Now   time.Time
	Out   io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("export: no store configured")
	}
	if n.Now.IsZero() {
		n.Now = time.Now()
	}
	m := n.Store.Load(ctx)

	if n.File == "" {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		return export.Write(out, m, n.Now)
	}

	tmp := n.File + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", tmp, err)
	}
	if err := export.Write(f, m, n.Now); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", tmp, err)
	}
	return os.Rename(tmp, n.File)
}
