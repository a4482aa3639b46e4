package terminal

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimode/internal/input"
	"github.com/dshills/vimode/internal/input/key"
)

// Converter turns tcell events into input events. It accumulates the keys
// of a bracketed paste into one paste event.
//
// A Converter is not safe for concurrent use.
type Converter struct {
	pasting bool
	paste   strings.Builder
}

// NewConverter creates a converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert converts ev. It returns false for events that produce no input
// event, such as the keys inside a paste or unknown event types.
func (c *Converter) Convert(ev tcell.Event) (input.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKeyEvent(e)
		if c.pasting {
			c.appendPaste(e)
			return input.Event{}, false
		}
		if !ok {
			return input.Event{}, false
		}
		return input.NewKeyEvent(k), true

	case *tcell.EventPaste:
		if e.Start() {
			c.pasting = true
			c.paste.Reset()
			return input.Event{}, false
		}
		if !c.pasting {
			return input.Event{}, false
		}
		c.pasting = false
		text := c.paste.String()
		c.paste.Reset()
		return input.NewPasteEvent(text), true

	case *tcell.EventMouse:
		x, y := e.Position()
		return input.NewMouseEvent(x, y, convertButtons(e.Buttons()), convertMod(e.Modifiers())), true

	case *tcell.EventResize:
		w, h := e.Size()
		return input.NewResizeEvent(clampSize(w), clampSize(h)), true

	case *tcell.EventFocus:
		return input.NewFocusEvent(e.Focused), true

	default:
		return input.Event{}, false
	}
}

// Pasting reports whether a bracketed paste is in progress.
func (c *Converter) Pasting() bool {
	return c.pasting
}

// appendPaste adds the text of a key inside a paste.
func (c *Converter) appendPaste(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		c.paste.WriteRune(e.Rune())
	case tcell.KeyEnter:
		c.paste.WriteByte('\r')
	case tcell.KeyTab:
		c.paste.WriteByte('\t')
	case tcell.KeyCtrlJ:
		c.paste.WriteByte('\n')
	}
}

// convertKeyEvent converts a key press. Control letters arrive as dedicated
// tcell keys and become the letter with Ctrl; upper case letters gain Shift.
func convertKeyEvent(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		r := e.Rune()
		if unicode.IsUpper(r) {
			mods = mods.With(key.ModShift)
		}
		return key.NewRuneEvent(r, mods), true
	}

	if named, ok := convertKey(k); ok {
		return key.NewSpecialEvent(named, mods), true
	}

	switch {
	case k == tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

// convertKey converts the named tcell keys. Tab, Enter, Backspace and
// Escape share codes with control letters and are matched first.
func convertKey(k tcell.Key) (key.Key, bool) {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape, true
	case tcell.KeyEnter:
		return key.KeyEnter, true
	case tcell.KeyTab:
		return key.KeyTab, true
	case tcell.KeyBacktab:
		return key.KeyBackTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, true
	case tcell.KeyDelete:
		return key.KeyDelete, true
	case tcell.KeyInsert:
		return key.KeyInsert, true
	case tcell.KeyHome:
		return key.KeyHome, true
	case tcell.KeyEnd:
		return key.KeyEnd, true
	case tcell.KeyPgUp:
		return key.KeyPageUp, true
	case tcell.KeyPgDn:
		return key.KeyPageDown, true
	case tcell.KeyUp:
		return key.KeyUp, true
	case tcell.KeyDown:
		return key.KeyDown, true
	case tcell.KeyLeft:
		return key.KeyLeft, true
	case tcell.KeyRight:
		return key.KeyRight, true
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1), true
	}
	return key.KeyNone, false
}

// convertMod converts tcell modifier mask to key modifiers.
// Meta is reported as Alt.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}

// convertButtons converts tcell button mask to mouse buttons.
func convertButtons(b tcell.ButtonMask) input.MouseButton {
	var result input.MouseButton
	if b&tcell.Button1 != 0 {
		result |= input.MouseButton1
	}
	if b&tcell.Button2 != 0 {
		result |= input.MouseButton2
	}
	if b&tcell.Button3 != 0 {
		result |= input.MouseButton3
	}
	if b&tcell.WheelUp != 0 {
		result |= input.MouseWheelUp
	}
	if b&tcell.WheelDown != 0 {
		result |= input.MouseWheelDown
	}
	return result
}

func clampSize(n int) uint16 {
	switch {
	case n < 0:
		return 0
	case n > 0xFFFF:
		return 0xFFFF
	default:
		return uint16(n)
	}
}
