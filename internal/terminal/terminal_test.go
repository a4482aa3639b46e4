package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimode/internal/input"
	"github.com/dshills/vimode/internal/input/key"
)

func convertOne(t *testing.T, ev tcell.Event) input.Event {
	t.Helper()
	in, ok := NewConverter().Convert(ev)
	if !ok {
		t.Fatalf("event %T was not converted", ev)
	}
	return in
}

func TestConvertKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), key.NewRuneEvent('a', key.ModNone)},
		{"upper gains shift", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), key.NewRuneEvent('A', key.ModShift)},
		{"symbol", tcell.NewEventKey(tcell.KeyRune, '$', tcell.ModNone), key.NewRuneEvent('$', key.ModNone)},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModAlt), key.NewRuneEvent('f', key.ModAlt)},
		{"meta is alt", tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModMeta), key.NewRuneEvent('f', key.ModAlt)},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), key.NewRuneEvent('l', key.ModCtrl)},
		{"ctrl a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModNone), key.NewRuneEvent('a', key.ModCtrl)},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), key.NewRuneEvent('z', key.ModCtrl)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyBackTab, key.ModShift)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"ctrl left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), key.NewSpecialEvent(key.KeyLeft, key.ModCtrl)},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyPageDown, key.ModNone)},
		{"f7", tcell.NewEventKey(tcell.KeyF7, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyF7, key.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertOne(t, tt.ev)
			if got.Type != input.EventKey {
				t.Fatalf("expected key event, got %v", got.Type)
			}
			if got.Key != tt.want {
				t.Errorf("expected %s, got %s", tt.want.VimString(), got.Key.VimString())
			}
		})
	}
}

func TestConvertUnknownKey(t *testing.T) {
	if _, ok := NewConverter().Convert(tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone)); ok {
		t.Error("unsupported keys should be dropped")
	}
}

func TestConvertPaste(t *testing.T) {
	c := NewConverter()
	events := []tcell.Event{
		tcell.NewEventPaste(true),
		tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
	}
	for i, ev := range events {
		if _, ok := c.Convert(ev); ok {
			t.Fatalf("event %d inside a paste should be absorbed", i)
		}
	}
	if !c.Pasting() {
		t.Fatal("expected paste in progress")
	}

	got, ok := c.Convert(tcell.NewEventPaste(false))
	if !ok || got.Type != input.EventPaste {
		t.Fatalf("expected paste event, got %v", got)
	}
	if got.Text != "hi\r\tx" {
		t.Errorf("Text = %q, want %q", got.Text, "hi\r\tx")
	}
	if c.Pasting() {
		t.Error("paste should be finished")
	}

	// A stray end marker is ignored
	if _, ok := c.Convert(tcell.NewEventPaste(false)); ok {
		t.Error("paste end without start should be dropped")
	}
}

func TestConvertOtherEvents(t *testing.T) {
	mouse := convertOne(t, tcell.NewEventMouse(4, 2, tcell.Button1|tcell.WheelUp, tcell.ModCtrl))
	want := input.NewMouseEvent(4, 2, input.MouseButton1|input.MouseWheelUp, key.ModCtrl)
	if mouse != want {
		t.Errorf("expected %+v, got %+v", want, mouse)
	}

	resize := convertOne(t, tcell.NewEventResize(132, 43))
	if resize != input.NewResizeEvent(132, 43) {
		t.Errorf("unexpected resize %+v", resize)
	}

	focus := convertOne(t, tcell.NewEventFocus(false))
	if focus.Type != input.EventFocusLost {
		t.Errorf("expected focus lost, got %v", focus.Type)
	}

	if _, ok := NewConverter().Convert(tcell.NewEventInterrupt(nil)); ok {
		t.Error("interrupts should be dropped")
	}
}

func TestClampSize(t *testing.T) {
	if clampSize(-1) != 0 || clampSize(70000) != 0xFFFF || clampSize(80) != 80 {
		t.Error("clampSize out of range")
	}
}

func TestScreenEvents(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreenFrom(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(40, 5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := s.Events(ctx)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == input.EventKey {
				if ev.Key.Rune != 'q' {
					t.Errorf("expected q, got %v", ev)
				}
				s.Fini()
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key event")
		}
	}
}

func TestDrawLines(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewScreenFrom(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer s.Fini()
	sim.SetSize(10, 2)

	s.DrawLines([]string{"NORMAL", "a line that is too long", "dropped"})

	row := func(y int) string {
		var out []rune
		for x := 0; x < 10; x++ {
			r, _, _, _ := sim.GetContent(x, y)
			out = append(out, r)
		}
		return string(out)
	}
	if got := row(0); got[:6] != "NORMAL" || got[6] != ' ' {
		t.Errorf("row 0 = %q", got)
	}
	if got := row(1); got != "a line tha" {
		t.Errorf("row 1 = %q, want truncated line", got)
	}
}
