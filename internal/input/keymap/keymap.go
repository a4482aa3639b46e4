package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/key"
)

// combo is the lookup key of a binding.
type combo struct {
	mods key.Modifier
	code key.Code
}

// Keybindings maps (modifier set, key code) pairs to events for one mode.
//
// Lookups match the modifier set and key code exactly; there is no
// wildcard or prefix matching. Bind and Remove fold ASCII letters to lower
// case, so Shift is the only carrier of case. Find does not fold: callers
// pass the folded code.
//
// Keybindings is not safe for concurrent use.
type Keybindings struct {
	bindings map[combo]edit.Event
}

// New creates an empty table.
func New() *Keybindings {
	return &Keybindings{
		bindings: make(map[combo]edit.Event),
	}
}

func makeCombo(mods key.Modifier, code key.Code) combo {
	return combo{mods: mods, code: code.Lower()}
}

// Bind adds or replaces the binding for (mods, code).
func (kb *Keybindings) Bind(mods key.Modifier, code key.Code, ev edit.Event) {
	kb.bindings[makeCombo(mods, code)] = ev
}

// BindSpec binds a key given in spec notation, such as "Ctrl+L" or "<C-l>".
func (kb *Keybindings) BindSpec(spec string, ev edit.Event) error {
	k, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("binding %q: %w", spec, err)
	}
	kb.Bind(k.Modifiers, k.Code(), ev)
	return nil
}

// Find returns the event bound to exactly (mods, code).
func (kb *Keybindings) Find(mods key.Modifier, code key.Code) (edit.Event, bool) {
	ev, ok := kb.bindings[combo{mods: mods, code: code}]
	return ev, ok
}

// Remove deletes the binding for (mods, code) and reports whether it existed.
func (kb *Keybindings) Remove(mods key.Modifier, code key.Code) bool {
	c := makeCombo(mods, code)
	if _, ok := kb.bindings[c]; !ok {
		return false
	}
	delete(kb.bindings, c)
	return true
}

// Len returns the number of bindings.
func (kb *Keybindings) Len() int {
	return len(kb.bindings)
}

// All returns every binding, ordered by key code and then modifiers.
func (kb *Keybindings) All() []Binding {
	all := make([]Binding, 0, len(kb.bindings))
	for c, ev := range kb.bindings {
		all = append(all, Binding{Modifiers: c.mods, Code: c.code, Event: ev})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Less(all[j])
	})
	return all
}

// Clone creates a copy of the table. Events are shared, which is safe
// because they are never mutated.
func (kb *Keybindings) Clone() *Keybindings {
	clone := &Keybindings{
		bindings: make(map[combo]edit.Event, len(kb.bindings)),
	}
	for c, ev := range kb.bindings {
		clone.bindings[c] = ev
	}
	return clone
}
