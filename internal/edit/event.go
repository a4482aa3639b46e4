package edit

import (
	"fmt"
	"strings"

	"github.com/dshills/vimode/internal/input/mode"
)

// Kind discriminates Event.
type Kind uint8

const (
	// KindNone is the no-op event.
	KindNone Kind = iota
	// KindEdit carries Edits for the line buffer.
	KindEdit
	// KindMultiple carries Events to be handled in order.
	KindMultiple
	// KindUntilFound carries Events to be tried in order until one applies.
	KindUntilFound
	// KindModeChange reports a switch to Mode.
	KindModeChange
	// KindEnter submits the current line.
	KindEnter
	KindEsc
	KindRepaint
	KindMouse
	// KindResize carries the new Width and Height.
	KindResize
	KindUp
	KindDown
	KindLeft
	KindRight
	KindPreviousHistory
	KindNextHistory
	KindSearchHistory
	KindClearScreen
	KindClearScrollback
	KindCtrlC
	KindCtrlD
	KindOpenEditor
	KindHistoryHintComplete
	KindHistoryHintWordComplete
	KindMenuUp
	KindMenuDown
	KindMenuLeft
	KindMenuRight
	KindMenuNext
	KindMenuPrevious
)

var kindNames = [...]string{
	KindNone:                    "None",
	KindEdit:                    "Edit",
	KindMultiple:                "Multiple",
	KindUntilFound:              "UntilFound",
	KindModeChange:              "ModeChange",
	KindEnter:                   "Enter",
	KindEsc:                     "Esc",
	KindRepaint:                 "Repaint",
	KindMouse:                   "Mouse",
	KindResize:                  "Resize",
	KindUp:                      "Up",
	KindDown:                    "Down",
	KindLeft:                    "Left",
	KindRight:                   "Right",
	KindPreviousHistory:         "PreviousHistory",
	KindNextHistory:             "NextHistory",
	KindSearchHistory:           "SearchHistory",
	KindClearScreen:             "ClearScreen",
	KindClearScrollback:         "ClearScrollback",
	KindCtrlC:                   "CtrlC",
	KindCtrlD:                   "CtrlD",
	KindOpenEditor:              "OpenEditor",
	KindHistoryHintComplete:     "HistoryHintComplete",
	KindHistoryHintWordComplete: "HistoryHintWordComplete",
	KindMenuUp:                  "MenuUp",
	KindMenuDown:                "MenuDown",
	KindMenuLeft:                "MenuLeft",
	KindMenuRight:               "MenuRight",
	KindMenuNext:                "MenuNext",
	KindMenuPrevious:            "MenuPrevious",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsNotification reports whether the kind carries no payload, which makes
// it bindable by name alone.
func (k Kind) IsNotification() bool {
	switch k {
	case KindEdit, KindMultiple, KindUntilFound, KindModeChange, KindResize:
		return false
	}
	return int(k) < len(kindNames)
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("%w: event %q", ErrUnknownName, name)
}

// Event is a single output of the interpreter.
type Event struct {
	Kind Kind

	// Edits is set for KindEdit.
	Edits []Command

	// Events is set for KindMultiple and KindUntilFound.
	Events []Event

	// Mode is set for KindModeChange.
	Mode mode.Mode

	// Width and Height are set for KindResize.
	Width, Height uint16
}

// None returns the no-op event.
func None() Event {
	return Event{}
}

// Notify returns a payload-free event of the given kind.
func Notify(k Kind) Event {
	return Event{Kind: k}
}

// Edit returns an event carrying the given commands in order.
func Edit(cmds ...Command) Event {
	return Event{Kind: KindEdit, Edits: cmds}
}

// Multiple returns an event combining events in emission order.
func Multiple(events ...Event) Event {
	return Event{Kind: KindMultiple, Events: events}
}

// UntilFound returns an event whose alternatives are tried in order.
func UntilFound(events ...Event) Event {
	return Event{Kind: KindUntilFound, Events: events}
}

// ModeChange returns a mode change notification.
func ModeChange(m mode.Mode) Event {
	return Event{Kind: KindModeChange, Mode: m}
}

// Resize returns a resize notification.
func Resize(width, height uint16) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// IsNone reports whether e is the no-op event.
func (e Event) IsNone() bool {
	return e.Kind == KindNone
}

// Equal reports whether two events are structurally identical.
func (e Event) Equal(o Event) bool {
	if e.Kind != o.Kind || e.Mode != o.Mode || e.Width != o.Width || e.Height != o.Height {
		return false
	}
	if len(e.Edits) != len(o.Edits) || len(e.Events) != len(o.Events) {
		return false
	}
	for i := range e.Edits {
		if e.Edits[i] != o.Edits[i] {
			return false
		}
	}
	for i := range e.Events {
		if !e.Events[i].Equal(o.Events[i]) {
			return false
		}
	}
	return true
}

// String returns a compact description such as
// "Edit[Select(WordForward)x6 Cut]" or "Multiple[Left Esc Repaint]".
func (e Event) String() string {
	switch e.Kind {
	case KindEdit:
		parts := make([]string, len(e.Edits))
		for i, c := range e.Edits {
			parts[i] = c.String()
		}
		return "Edit[" + strings.Join(parts, " ") + "]"
	case KindMultiple, KindUntilFound:
		parts := make([]string, len(e.Events))
		for i, ev := range e.Events {
			parts[i] = ev.String()
		}
		return e.Kind.String() + "[" + strings.Join(parts, " ") + "]"
	case KindModeChange:
		return fmt.Sprintf("ModeChange(%s)", e.Mode)
	case KindResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height)
	default:
		return e.Kind.String()
	}
}

// Combine folds a list of events into one: none for an empty list, the
// event itself for a single one, Multiple otherwise.
func Combine(events []Event) Event {
	switch len(events) {
	case 0:
		return None()
	case 1:
		return events[0]
	default:
		return Multiple(events...)
	}
}

// ParseEvent builds an event from a kind name and optional edit specs, as
// found in keymap files. A non-empty edits list yields a KindEdit event and
// requires name to be empty or "Edit".
func ParseEvent(name string, edits []string) (Event, error) {
	if len(edits) > 0 {
		if name != "" && name != kindNames[KindEdit] {
			return None(), fmt.Errorf("%w: event %q cannot carry edits", ErrUnknownName, name)
		}
		cmds := make([]Command, 0, len(edits))
		for _, spec := range edits {
			cmd, err := ParseCommand(spec)
			if err != nil {
				return None(), err
			}
			cmds = append(cmds, cmd)
		}
		return Edit(cmds...), nil
	}

	kind, err := ParseKind(name)
	if err != nil {
		return None(), err
	}
	if !kind.IsNotification() {
		return None(), fmt.Errorf("%w: event %q needs a payload", ErrUnknownName, name)
	}
	return Notify(kind), nil
}
