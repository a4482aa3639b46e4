package vim

import (
	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/mode"
)

// Lower translates a complete command into the events for the line editor.
// It records find/till motions and text-changing results in st. A nil
// result means the command has nothing to do, such as ';' or "c;" before
// any search.
func Lower(cmd *Command, st *State) []edit.Event {
	var events []edit.Event
	switch {
	case cmd.Action != nil:
		events = lowerAction(cmd, st)
	case cmd.Operator != nil:
		events = lowerOperator(cmd, st)
	case cmd.Motion != nil:
		events = lowerMotion(cmd, st)
	}

	if cmd.ChangesText() {
		remember(st, events)
	}
	return events
}

func lowerMotion(cmd *Command, st *State) []edit.Event {
	count := cmd.GetCount()

	if cmd.Motion.Type == MotionLinewise {
		kind := edit.KindDown
		if cmd.Motion.Direction == edit.Backward {
			kind = edit.KindUp
		}
		events := make([]edit.Event, repeatCount(count))
		for i := range events {
			events[i] = edit.Notify(kind)
		}
		return events
	}

	m, ok := resolveMotion(cmd.Motion, cmd.Char, st)
	if !ok {
		return nil
	}
	return []edit.Event{edit.Edit(edit.Move(m, count))}
}

func lowerOperator(cmd *Command, st *State) []edit.Event {
	op := cmd.Operator
	count := cmd.GetCount()

	var events []edit.Event
	if cmd.Linewise {
		events = append(events, edit.Edit(edit.SelectLines(count), edit.Do(op.Edit)))
	} else {
		m, ok := resolveMotion(cmd.Motion, cmd.Char, st)
		if !ok {
			return nil
		}
		events = append(events, edit.Edit(edit.Select(m, count), edit.Do(op.Edit)))
	}

	if op.EntersInsert {
		events = append(events, edit.ModeChange(mode.Insert))
	}
	return events
}

func lowerAction(cmd *Command, st *State) []edit.Event {
	count := cmd.GetCount()
	var events []edit.Event

	switch cmd.Action.Key {
	case 'i':
	case 'a':
		events = append(events, move(edit.MotionRight))
	case 'I':
		events = append(events, move(edit.MotionFirstNonBlank))
	case 'A':
		events = append(events, move(edit.MotionLineEnd))
	case 'o':
		events = append(events, edit.Edit(
			edit.Move(edit.NewMotion(edit.MotionLineEnd), 1),
			edit.Do(edit.OpInsertNewline),
		))
	case 'O':
		events = append(events, edit.Edit(
			edit.Move(edit.NewMotion(edit.MotionLineStart), 1),
			edit.Do(edit.OpInsertNewline),
			edit.Move(edit.NewMotion(edit.MotionLeft), 1),
		))
	case 's', 'x':
		events = append(events, cut(edit.MotionRight, count))
	case 'X':
		events = append(events, cut(edit.MotionLeft, count))
	case 'S':
		events = append(events, edit.Edit(edit.SelectLines(count), edit.Cut()))
	case 'C', 'D':
		events = append(events, cut(edit.MotionLineEnd, 1))
	case '?':
		events = append(events, edit.Notify(edit.KindSearchHistory))
	case 'p':
		events = append(events, edit.Edit(edit.Repeat(edit.OpPasteAfter, count)))
	case 'P':
		events = append(events, edit.Edit(edit.Repeat(edit.OpPasteBefore, count)))
	case 'u':
		events = append(events, edit.Edit(edit.Repeat(edit.OpUndo, count)))
	case '~':
		events = append(events, edit.Edit(edit.Repeat(edit.OpSwitchCase, count)))
	case 'r':
		events = append(events, edit.Edit(edit.ReplaceChar(cmd.Char, count)))
	case '.':
		if st.Previous.IsNone() {
			return nil
		}
		n := repeatCount(count)
		events = make([]edit.Event, 0, n)
		for i := 0; i < n; i++ {
			events = append(events, st.Previous)
		}
	}

	if cmd.Action.EntersInsert {
		events = append(events, edit.ModeChange(mode.Insert))
	}
	return events
}

// resolveMotion returns the cursor motion for m, updating or reading the
// character search memory. It fails only for ; and , with empty memory.
func resolveMotion(m *Motion, char rune, st *State) (edit.Motion, bool) {
	switch m.Type {
	case MotionCharSearch:
		cs := CharSearch{Direction: m.Direction, Char: char, Inclusive: m.Inclusive}
		st.CharSearch = &cs
		return cs.Motion(), true
	case MotionRepeatSearch:
		if st.CharSearch == nil {
			return edit.Motion{}, false
		}
		cs := *st.CharSearch
		if m.Reverse {
			cs = cs.Reversed()
		}
		return cs.Motion(), true
	default:
		return edit.NewMotion(m.Kind), true
	}
}

// remember stores the text-changing part of events for '.'.
func remember(st *State, events []edit.Event) {
	kept := make([]edit.Event, 0, len(events))
	for _, ev := range events {
		if ev.Kind != edit.KindModeChange {
			kept = append(kept, ev)
		}
	}
	if len(kept) > 0 {
		st.Previous = edit.Combine(kept)
	}
}

func move(kind edit.MotionKind) edit.Event {
	return edit.Edit(edit.Move(edit.NewMotion(kind), 1))
}

func cut(kind edit.MotionKind, count int) edit.Event {
	return edit.Edit(edit.Select(edit.NewMotion(kind), count), edit.Cut())
}
