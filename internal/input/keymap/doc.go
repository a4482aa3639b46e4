// Package keymap provides the per-mode keybinding tables of the vi
// interpreter.
//
// A Keybindings table maps a (modifier set, key code) pair to an output
// event. Lookup is an exact match on both parts; how a missing binding is
// handled is decided by the dispatcher, not the table.
//
// # Key Notation
//
// Bindings can be added directly or from key specifications:
//
//	"j"        - Single character
//	"A"        - Shift+A
//	"C-s"      - Ctrl+S (Vim notation)
//	"<C-s>"    - Ctrl+S (angle bracket notation)
//	"Ctrl+S"   - Ctrl+S (readable notation)
//	"<S-$>"    - Shift+$
//
// # Keymap Files
//
// Loader reads TOML, YAML and JSON files with one list of entries per mode:
//
//	[[normal]]
//	key = "Ctrl+L"
//	event = "ClearScreen"
//
//	[[insert]]
//	key = "Ctrl+W"
//	edits = ["BackspaceWord"]
//
//	[[insert]]
//	key = "Up"
//	until_found = ["MenuUp", "Up"]
//
// # Usage
//
//	normal, insert := keymap.DefaultNormal(), keymap.DefaultInsert()
//	f, err := keymap.NewLoader().LoadFile("keys.toml")
//	if err != nil {
//	    return err
//	}
//	if err := f.Apply(normal, insert); err != nil {
//	    return err
//	}
package keymap
