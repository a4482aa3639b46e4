package input

import (
	"fmt"

	"github.com/dshills/vimode/internal/input/key"
)

// EventType discriminates Event.
type EventType uint8

const (
	// EventKey is a key press; Key is set.
	EventKey EventType = iota
	// EventMouse is a pointer event; Mouse is set.
	EventMouse
	// EventResize is a terminal resize; Width and Height are set.
	EventResize
	// EventFocusGained reports that the terminal gained focus.
	EventFocusGained
	// EventFocusLost reports that the terminal lost focus.
	EventFocusLost
	// EventPaste is a bracketed paste; Text is set.
	EventPaste
)

// String returns a string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventFocusGained:
		return "focusGained"
	case EventFocusLost:
		return "focusLost"
	case EventPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// MouseButton is a set of pressed mouse buttons and wheel directions.
type MouseButton uint16

// Mouse buttons.
const (
	MouseButton1 MouseButton = 1 << iota
	MouseButton2
	MouseButton3
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight

	// MouseButtonNone means a motion or release without buttons.
	MouseButtonNone MouseButton = 0
)

// MouseEvent is the payload of EventMouse.
type MouseEvent struct {
	X, Y      int
	Buttons   MouseButton
	Modifiers key.Modifier
}

// Event is a raw input event from the terminal layer.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Mouse is set for EventMouse.
	Mouse MouseEvent

	// Width and Height are set for EventResize.
	Width, Height uint16

	// Text is set for EventPaste.
	Text string
}

// NewKeyEvent wraps a key event.
func NewKeyEvent(k key.Event) Event {
	return Event{Type: EventKey, Key: k}
}

// NewRuneEvent creates a character key press.
func NewRuneEvent(r rune, mods key.Modifier) Event {
	return NewKeyEvent(key.NewRuneEvent(r, mods))
}

// NewSpecialEvent creates a named key press.
func NewSpecialEvent(k key.Key, mods key.Modifier) Event {
	return NewKeyEvent(key.NewSpecialEvent(k, mods))
}

// NewMouseEvent creates a pointer event.
func NewMouseEvent(x, y int, buttons MouseButton, mods key.Modifier) Event {
	return Event{Type: EventMouse, Mouse: MouseEvent{X: x, Y: y, Buttons: buttons, Modifiers: mods}}
}

// NewResizeEvent creates a resize event.
func NewResizeEvent(width, height uint16) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// NewFocusEvent creates a focus gained or lost event.
func NewFocusEvent(gained bool) Event {
	if gained {
		return Event{Type: EventFocusGained}
	}
	return Event{Type: EventFocusLost}
}

// NewPasteEvent creates a paste event carrying raw text.
func NewPasteEvent(text string) Event {
	return Event{Type: EventPaste, Text: text}
}

// String returns a short description such as "key(<C-l>)" or "resize(80x24)".
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		return fmt.Sprintf("key(%s)", e.Key.VimString())
	case EventMouse:
		return fmt.Sprintf("mouse(%d,%d)", e.Mouse.X, e.Mouse.Y)
	case EventResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	case EventPaste:
		return fmt.Sprintf("paste(%q)", e.Text)
	default:
		return e.Type.String()
	}
}
