// Package input turns raw terminal events into line editor events using
// vi's modal editing rules.
//
// # Architecture
//
// The interpreter consists of several cooperating components:
//
//   - Key Event Processing (key): key codes, modifier sets and key notation
//   - Mode System (mode): Normal and Insert
//   - Keybinding Tables (keymap): one exact-match table per mode
//   - Command Grammar (vim): count, operator, motion and action parsing
//   - Dispatcher (Vi): routes each event to the grammar or a table
//   - Macro System (macro): records and replays raw events
//
// # Modal Editing
//
// In Insert mode characters are inserted unless a binding claims them. In
// Normal mode characters accumulate in a cache that is re-parsed after every
// key; a complete command is lowered to edit events and the cache cleared, an
// invalid one is dropped. While a sequence is pending, every character goes
// to the grammar so that single-key bindings cannot interrupt it.
//
// Escape always returns to Normal mode and Enter always submits the line and
// returns to Insert mode.
//
// # Usage
//
//	vi := input.DefaultVi()
//
//	// Process events from the terminal layer
//	for ev := range events {
//	    out := vi.Handle(ev)
//	    editor.Apply(out)
//	}
package input
