package input

import (
	"strings"
	"testing"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/key"
	"github.com/dshills/vimode/internal/input/keymap"
	"github.com/dshills/vimode/internal/input/mode"
)

// Helper to create a key press for a character, with Shift for upper case
// letters as terminals report them
func charEvent(r rune) Event {
	mods := key.ModNone
	if r >= 'A' && r <= 'Z' {
		mods = key.ModShift
	}
	return NewRuneEvent(r, mods)
}

// Helper to type a string and return the last output
func typeString(vi *Vi, s string) edit.Event {
	out := edit.None()
	for _, r := range s {
		out = vi.Handle(charEvent(r))
	}
	return out
}

func normalVi(opts ...Option) *Vi {
	return NewVi(append([]Option{WithMode(mode.Normal)}, opts...)...)
}

func assertEvent(t *testing.T, got, want edit.Event) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestInitialMode(t *testing.T) {
	vi := DefaultVi()
	if vi.Mode() != mode.Insert {
		t.Errorf("expected Insert, got %v", vi.Mode())
	}
	if vi.EditMode() != "INSERT" {
		t.Errorf("expected INSERT indicator, got %q", vi.EditMode())
	}
}

func TestEscapeFromInsert(t *testing.T) {
	vi := DefaultVi()

	out := vi.Handle(NewSpecialEvent(key.KeyEscape, key.ModNone))

	want := edit.Multiple(edit.Notify(edit.KindLeft), edit.Notify(edit.KindEsc), edit.Notify(edit.KindRepaint))
	assertEvent(t, out, want)
	if vi.Mode() != mode.Normal {
		t.Errorf("expected Normal, got %v", vi.Mode())
	}
}

func TestEscapeFromNormalClearsCache(t *testing.T) {
	vi := normalVi()

	typeString(vi, "2d")
	if vi.Pending() != "2d" {
		t.Fatalf("expected pending 2d, got %q", vi.Pending())
	}

	out := vi.Handle(NewSpecialEvent(key.KeyEscape, key.ModNone))
	assertEvent(t, out, edit.Multiple(edit.Notify(edit.KindEsc), edit.Notify(edit.KindRepaint)))
	if vi.Pending() != "" {
		t.Errorf("expected empty cache, got %q", vi.Pending())
	}
	if vi.Mode() != mode.Normal {
		t.Errorf("expected Normal, got %v", vi.Mode())
	}

	// A direct binding works again right away
	vi.Bind(mode.Normal, key.ModNone, key.Char('q'), edit.Notify(edit.KindClearScreen))
	assertEvent(t, vi.Handle(charEvent('q')), edit.Notify(edit.KindClearScreen))
}

func TestEnterSubmitsAndEntersInsert(t *testing.T) {
	for _, start := range []mode.Mode{mode.Normal, mode.Insert} {
		vi := NewVi(WithMode(start))
		if start == mode.Normal {
			typeString(vi, "d")
		}

		out := vi.Handle(NewSpecialEvent(key.KeyEnter, key.ModNone))
		assertEvent(t, out, edit.Notify(edit.KindEnter))
		if vi.Mode() != mode.Insert {
			t.Errorf("from %v: expected Insert, got %v", start, vi.Mode())
		}
		if vi.Pending() != "" {
			t.Errorf("from %v: expected empty cache, got %q", start, vi.Pending())
		}
	}
}

func TestNormalCharStartsSequence(t *testing.T) {
	tests := []struct {
		char        rune
		wantPending string
	}{
		{'d', "d"},
		{'2', "2"},
		{'f', "f"},
		{'q', ""},
		{'z', ""},
	}

	for _, tt := range tests {
		vi := normalVi()
		out := vi.Handle(charEvent(tt.char))
		if !out.IsNone() {
			t.Errorf("%q: expected None, got %v", tt.char, out)
		}
		if vi.Pending() != tt.wantPending {
			t.Errorf("%q: expected pending %q, got %q", tt.char, tt.wantPending, vi.Pending())
		}
	}
}

func TestKeybindingWithoutModifier(t *testing.T) {
	normal := keymap.DefaultNormal()
	normal.Bind(key.ModNone, key.Char('e'), edit.Notify(edit.KindClearScreen))
	vi := normalVi(WithKeybindings(keymap.DefaultInsert(), normal))

	assertEvent(t, vi.Handle(charEvent('e')), edit.Notify(edit.KindClearScreen))
}

func TestKeybindingWithShiftModifier(t *testing.T) {
	normal := keymap.DefaultNormal()
	normal.Bind(key.ModShift, key.Char('$'), edit.Notify(edit.KindCtrlD))
	vi := normalVi(WithKeybindings(nil, normal))

	out := vi.Handle(NewRuneEvent('$', key.ModShift))
	assertEvent(t, out, edit.Notify(edit.KindCtrlD))
	if vi.Stats().SequencesCompleted != 0 || vi.Pending() != "" {
		t.Error("a direct binding must not reach the grammar")
	}
}

func TestUnboundCtrlCharIsIgnoredInNormal(t *testing.T) {
	vi := normalVi()

	if out := vi.Handle(NewRuneEvent('q', key.ModCtrl)); !out.IsNone() {
		t.Errorf("expected None, got %v", out)
	}
	if vi.Pending() != "" {
		t.Errorf("modified characters must not start a sequence, got %q", vi.Pending())
	}
}

func TestBoundCtrlCharInNormal(t *testing.T) {
	vi := normalVi()
	assertEvent(t, vi.Handle(NewRuneEvent('d', key.ModCtrl)), edit.Notify(edit.KindCtrlD))
}

func TestPendingSequenceBypassesBindings(t *testing.T) {
	normal := keymap.DefaultNormal()
	normal.Bind(key.ModShift, key.Char('B'), edit.Edit(edit.Move(edit.NewMotion(edit.MotionBigWordBackward), 1)))
	vi := normalVi(WithKeybindings(nil, normal))

	typeString(vi, "f")
	out := vi.Handle(NewRuneEvent('B', key.ModShift))

	want := edit.Edit(edit.Move(edit.UntilChar('B', edit.Forward, true), 1))
	assertEvent(t, out, want)
}

func TestPendingSequenceTakesModifiedChars(t *testing.T) {
	vi := normalVi()

	typeString(vi, "f")
	out := vi.Handle(NewRuneEvent('d', key.ModCtrl))

	// C-d is bound, but the pending find consumes the character
	want := edit.Edit(edit.Move(edit.UntilChar('d', edit.Forward, true), 1))
	assertEvent(t, out, want)
}

func TestFindAndRepeat(t *testing.T) {
	vi := normalVi()

	if out := vi.Handle(charEvent(';')); !out.IsNone() {
		t.Errorf("';' with empty memory: expected None, got %v", out)
	}

	if out := vi.Handle(charEvent('f')); !out.IsNone() {
		t.Errorf("expected None after f, got %v", out)
	}
	out := vi.Handle(charEvent('x'))

	want := edit.Edit(edit.Move(edit.UntilChar('x', edit.Forward, true), 1))
	assertEvent(t, out, want)

	cs, ok := vi.LastCharSearch()
	if !ok || cs.Char != 'x' || cs.Direction != edit.Forward || !cs.Inclusive {
		t.Errorf("unexpected memory %+v", cs)
	}

	assertEvent(t, vi.Handle(charEvent(';')), want)
	assertEvent(t, vi.Handle(charEvent(',')),
		edit.Edit(edit.Move(edit.UntilChar('x', edit.Backward, true), 1)))

	if after, _ := vi.LastCharSearch(); after != cs {
		t.Errorf("repeat must not change memory, got %+v", after)
	}
}

func TestCountedOperators(t *testing.T) {
	tests := []struct {
		input string
		want  edit.Event
	}{
		{"2d3w", edit.Edit(edit.Select(edit.NewMotion(edit.MotionWordForward), 6), edit.Cut())},
		{"3dd", edit.Edit(edit.SelectLines(3), edit.Cut())},
		{"y$", edit.Edit(edit.Select(edit.NewMotion(edit.MotionLineEnd), 1), edit.Copy())},
		{"5l", edit.Edit(edit.Move(edit.NewMotion(edit.MotionRight), 5))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			vi := normalVi()
			assertEvent(t, typeString(vi, tt.input), tt.want)
			if vi.Pending() != "" {
				t.Errorf("expected empty cache, got %q", vi.Pending())
			}
			if vi.Mode() != mode.Normal {
				t.Errorf("expected Normal, got %v", vi.Mode())
			}
		})
	}
}

func TestLinewiseHistoryMotion(t *testing.T) {
	vi := normalVi()
	out := typeString(vi, "3k")
	want := edit.Multiple(edit.Notify(edit.KindUp), edit.Notify(edit.KindUp), edit.Notify(edit.KindUp))
	assertEvent(t, out, want)
}

func TestInsertEnteringCommands(t *testing.T) {
	tests := []struct {
		input string
		want  edit.Event
	}{
		{"i", edit.ModeChange(mode.Insert)},
		{"a", edit.Multiple(edit.Edit(edit.Move(edit.NewMotion(edit.MotionRight), 1)), edit.ModeChange(mode.Insert))},
		{"I", edit.Multiple(edit.Edit(edit.Move(edit.NewMotion(edit.MotionFirstNonBlank), 1)), edit.ModeChange(mode.Insert))},
		{"cw", edit.Multiple(
			edit.Edit(edit.Select(edit.NewMotion(edit.MotionWordForward), 1), edit.Cut()),
			edit.ModeChange(mode.Insert),
		)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			vi := normalVi()
			assertEvent(t, typeString(vi, tt.input), tt.want)
			if vi.Mode() != mode.Insert {
				t.Errorf("expected Insert, got %v", vi.Mode())
			}
		})
	}
}

func TestChangeWithoutSearchStaysNormal(t *testing.T) {
	tests := []string{"c;", "c,", "3c;"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			vi := normalVi()
			if out := typeString(vi, input); !out.IsNone() {
				t.Errorf("expected None, got %v", out)
			}
			if vi.Mode() != mode.Normal {
				t.Errorf("expected Normal, got %v", vi.Mode())
			}
			if vi.Pending() != "" {
				t.Errorf("expected empty cache, got %q", vi.Pending())
			}
		})
	}

	vi := normalVi()
	typeString(vi, "fx")
	want := edit.Multiple(
		edit.Edit(edit.Select(edit.UntilChar('x', edit.Forward, true), 1), edit.Cut()),
		edit.ModeChange(mode.Insert),
	)
	assertEvent(t, typeString(vi, "c;"), want)
	if vi.Mode() != mode.Insert {
		t.Errorf("expected Insert after c; with memory, got %v", vi.Mode())
	}
}

func TestInvalidSequencesStayEmpty(t *testing.T) {
	vi := normalVi()

	for i, r := range "dzqqq!dy" {
		out := vi.Handle(charEvent(r))
		if !out.IsNone() {
			t.Errorf("key %d %q: expected None, got %v", i, r, out)
		}
	}
	if vi.Pending() != "" {
		t.Errorf("expected empty cache, got %q", vi.Pending())
	}
	if vi.Stats().SequencesInvalid == 0 {
		t.Error("expected invalid sequences to be counted")
	}

	// The interpreter recovers for the next valid command
	assertEvent(t, typeString(vi, "x"), edit.Edit(edit.Select(edit.NewMotion(edit.MotionRight), 1), edit.Cut()))
}

func TestRepeatLastChange(t *testing.T) {
	vi := normalVi()

	if out := typeString(vi, "."); !out.IsNone() {
		t.Errorf("expected None before any change, got %v", out)
	}

	want := typeString(vi, "dw")
	typeString(vi, "l")
	assertEvent(t, typeString(vi, "."), want)
}

func TestInsertChars(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		mods key.Modifier
		want edit.Event
	}{
		{"plain", 'a', key.ModNone, edit.Edit(edit.InsertChar('a'))},
		{"shift", 'a', key.ModShift, edit.Edit(edit.InsertChar('A'))},
		{"shift upper", 'A', key.ModShift, edit.Edit(edit.InsertChar('A'))},
		{"altgr", '@', key.ModCtrl | key.ModAlt, edit.Edit(edit.InsertChar('@'))},
		{"altgr shift", 'Q', key.ModCtrl | key.ModAlt | key.ModShift, edit.Edit(edit.InsertChar('q'))},
		{"non ascii", 'é', key.ModNone, edit.Edit(edit.InsertChar('é'))},
		{"bound ctrl", 'c', key.ModCtrl, edit.Notify(edit.KindCtrlC)},
		{"bound ctrl upper", 'C', key.ModCtrl, edit.Notify(edit.KindCtrlC)},
		{"unbound ctrl", 'q', key.ModCtrl, edit.None()},
		{"unbound alt", 'x', key.ModAlt, edit.None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vi := DefaultVi()
			assertEvent(t, vi.Handle(NewRuneEvent(tt.r, tt.mods)), tt.want)
			if vi.Mode() != mode.Insert {
				t.Errorf("expected Insert, got %v", vi.Mode())
			}
		})
	}
}

func TestInsertBindingMatchesCaseExactly(t *testing.T) {
	insert := keymap.DefaultInsert()
	insert.Bind(key.ModNone, key.Char('a'), edit.Notify(edit.KindClearScreen))
	vi := NewVi(WithKeybindings(insert, nil))

	assertEvent(t, vi.Handle(NewRuneEvent('a', key.ModNone)), edit.Notify(edit.KindClearScreen))
	assertEvent(t, vi.Handle(NewRuneEvent('A', key.ModNone)), edit.Edit(edit.InsertChar('A')))
}

func TestOtherKeysUseActiveTable(t *testing.T) {
	insert := DefaultVi()
	normal := normalVi()

	bs := NewSpecialEvent(key.KeyBackspace, key.ModNone)
	assertEvent(t, insert.Handle(bs), edit.Edit(edit.Do(edit.OpBackspace)))
	assertEvent(t, normal.Handle(bs), edit.Edit(edit.Move(edit.NewMotion(edit.MotionLeft), 1)))

	if out := insert.Handle(NewSpecialEvent(key.KeyF7, key.ModNone)); !out.IsNone() {
		t.Errorf("unbound key: expected None, got %v", out)
	}
	if out := insert.Handle(NewSpecialEvent(key.KeyEscape, key.ModCtrl)); !out.IsNone() {
		t.Errorf("modified Escape is a regular key, expected None, got %v", out)
	}
}

func TestNonKeyEvents(t *testing.T) {
	vi := DefaultVi()

	assertEvent(t, vi.Handle(NewMouseEvent(3, 4, MouseButton1, key.ModNone)), edit.Notify(edit.KindMouse))
	assertEvent(t, vi.Handle(NewResizeEvent(120, 40)), edit.Resize(120, 40))
	assertEvent(t, vi.Handle(NewFocusEvent(true)), edit.None())
	assertEvent(t, vi.Handle(NewFocusEvent(false)), edit.None())
	assertEvent(t, vi.Handle(NewPasteEvent("a\r\nb\rc\nd")), edit.Edit(edit.InsertString("a\nb\nc\nd")))

	st := vi.Stats()
	if st.MouseEvents != 1 || st.Resizes != 1 || st.Pastes != 1 || st.NoneEvents != 2 {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestBindAndUnbind(t *testing.T) {
	vi := DefaultVi()
	ev := edit.Notify(edit.KindOpenEditor)

	vi.Bind(mode.Insert, key.ModAlt, key.Char('e'), ev)
	assertEvent(t, vi.Handle(NewRuneEvent('e', key.ModAlt)), ev)

	if !vi.Unbind(mode.Insert, key.ModAlt, key.Char('e')) {
		t.Fatal("expected binding to be removed")
	}
	if out := vi.Handle(NewRuneEvent('e', key.ModAlt)); !out.IsNone() {
		t.Errorf("expected None after unbind, got %v", out)
	}
}

func TestSetKeybindings(t *testing.T) {
	vi := DefaultVi()
	empty := keymap.New()
	vi.SetKeybindings(empty, nil)

	if out := vi.Handle(NewRuneEvent('c', key.ModCtrl)); !out.IsNone() {
		t.Errorf("expected None with empty insert table, got %v", out)
	}
	if vi.Keybindings(mode.Normal).Len() == 0 {
		t.Error("normal table should be kept")
	}
}

func TestHooks(t *testing.T) {
	vi := DefaultVi()

	var seen []string
	remove := vi.AddHook(HookFunc(func(in Event, out edit.Event) {
		seen = append(seen, in.String()+" "+out.String())
	}))

	vi.Handle(charEvent('a'))
	remove()
	vi.Handle(charEvent('b'))

	if len(seen) != 1 {
		t.Fatalf("expected 1 hook call, got %d: %v", len(seen), seen)
	}
	if !strings.Contains(seen[0], "InsertChar(a)") {
		t.Errorf("unexpected hook record %q", seen[0])
	}
}

func TestWithHook(t *testing.T) {
	var count int
	vi := NewVi(WithHook(HookFunc(func(Event, edit.Event) {
		count++
	})))

	typeString(vi, "ab")
	if count != 2 {
		t.Errorf("expected 2 hook calls, got %d", count)
	}
}

func TestReset(t *testing.T) {
	vi := DefaultVi()
	vi.Handle(NewSpecialEvent(key.KeyEscape, key.ModNone))
	typeString(vi, "fx")
	typeString(vi, "2")

	vi.Reset()

	if vi.Mode() != mode.Insert || vi.Pending() != "" {
		t.Errorf("expected fresh state, got mode %v pending %q", vi.Mode(), vi.Pending())
	}
	if _, ok := vi.LastCharSearch(); ok {
		t.Error("expected empty char search memory")
	}
}
