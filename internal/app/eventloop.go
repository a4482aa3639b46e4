package app

import (
	"context"
	"fmt"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input"
)

// eventLoop is the main application loop.
func (app *Application) eventLoop(ctx context.Context, screen Screen) error {
	events := screen.Events(ctx)
	app.draw(screen)

	for {
		select {
		case <-app.done:
			return nil

		case path := <-app.reloads:
			app.reload(path)
			app.draw(screen)

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleEvent(ev); err != nil {
				return err
			}
			app.draw(screen)
		}
	}
}

// handleEvent runs ev through the interpreter. Returns ErrQuit when the
// output asks to end the session.
func (app *Application) handleEvent(ev input.Event) error {
	out := app.vi.Handle(ev)
	if !out.IsNone() {
		app.last = out
		app.logger.Debug("%s -> %s", ev, out)
	}
	if isQuit(out) {
		return ErrQuit
	}
	return nil
}

// isQuit reports whether out is, or starts with, the CtrlD notification.
func isQuit(out edit.Event) bool {
	switch out.Kind {
	case edit.KindCtrlD:
		return true
	case edit.KindMultiple, edit.KindUntilFound:
		return len(out.Events) > 0 && isQuit(out.Events[0])
	default:
		return false
	}
}

// statusLines renders the current interpreter state.
func (app *Application) statusLines() []string {
	stats := app.vi.Stats()
	last := "-"
	if !app.last.IsNone() {
		last = app.last.String()
	}

	lines := []string{
		"vimode  (Ctrl+D quits)",
		"mode:    " + app.vi.Mode().DisplayName(),
		"pending: " + app.vi.Pending(),
		"last:    " + last,
		fmt.Sprintf("keys:    %d  completed: %d  invalid: %d", stats.KeyEvents, stats.SequencesCompleted, stats.SequencesInvalid),
	}
	if cs, ok := app.vi.LastCharSearch(); ok {
		lines = append(lines, "search:  "+cs.Motion().String())
	}
	if app.recorder != nil && app.recorder.IsRecording() {
		lines = append(lines, fmt.Sprintf("recording @%c: %d events", RecordRegister, app.recorder.CurrentRecordingLength()))
	}
	return lines
}

// pendingRow is the status line that holds the cursor.
const pendingRow = 2

func (app *Application) draw(screen Screen) {
	lines := app.statusLines()
	screen.DrawLines(lines)
	screen.SetCursor(len([]rune(lines[pendingRow])), pendingRow, app.vi.Mode().CursorStyle())
}
