package keymap

import (
	"fmt"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/key"
)

// Binding is a single entry of a Keybindings table.
type Binding struct {
	Modifiers key.Modifier
	Code      key.Code
	Event     edit.Event
}

// Spec returns the key in the notation accepted by key.Parse.
func (b Binding) Spec() string {
	if b.Code.IsRune() && b.Modifiers.HasShift() {
		// Shifted letters read as upper case; other shifted characters
		// need the explicit modifier.
		up := key.ToUpperASCII(b.Code.Rune)
		if up != b.Code.Rune && b.Modifiers == key.ModShift {
			return string(up)
		}
		name := key.Char(b.Code.Rune).String()
		return "<" + b.Modifiers.ShortString() + "-" + name + ">"
	}
	return key.FormatSpec(key.NewEvent(b.Code.Key, b.Code.Rune, b.Modifiers))
}

// String returns a description such as "<C-l> ClearScreen".
func (b Binding) String() string {
	return fmt.Sprintf("%s %s", b.Spec(), b.Event)
}

// Less orders bindings by key code, then by modifier set.
func (b Binding) Less(other Binding) bool {
	if b.Code.Key != other.Code.Key {
		return b.Code.Key < other.Code.Key
	}
	if b.Code.Rune != other.Code.Rune {
		return b.Code.Rune < other.Code.Rune
	}
	return b.Modifiers < other.Modifiers
}
