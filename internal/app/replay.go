package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input"
	"github.com/dshills/vimode/internal/input/macro"
	"github.com/dshills/vimode/internal/input/mode"
)

// Replay feeds the recording at path through the interpreter and writes
// one line per input event with the edit event it produced. Shutdown
// stops a replay in progress.
func (app *Application) Replay(path string, w io.Writer) error {
	rec, err := macro.LoadRecording(path)
	if err != nil {
		return err
	}

	modes := make([]mode.Mode, 0, rec.Len())
	remove := app.vi.AddHook(input.HookFunc(func(input.Event, edit.Event) {
		modes = append(modes, app.vi.Mode())
	}))
	outs, err := macro.Replay(app.ctx, app.vi, rec)
	remove()
	if err != nil {
		return fmt.Errorf("replaying %s: %w", path, err)
	}
	app.logger.Info("replayed %d events from %s", len(outs), path)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tINPUT\tMODE\tOUTPUT\n")
	for i, out := range outs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, rec.Events[i], modes[i], out)
	}
	return tw.Flush()
}
