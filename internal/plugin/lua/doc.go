// Package lua runs init scripts that customize the vi keybindings.
//
// Scripts run in a sandboxed gopher-lua state: only the base, table, string
// and math libraries are opened, and the functions that load code from disk
// are removed. A global "vi" table is installed:
//
//	vi.bind(mode, key, event)          -- bind a notification by name
//	vi.bind_edits(mode, key, {ops})    -- bind a list of edit commands
//	vi.bind_until_found(mode, key, {events})
//	vi.unbind(mode, key)               -- returns true if a binding was removed
//	vi.mode()                          -- "normal" or "insert"
//
// Example init.lua:
//
//	vi.bind("insert", "Ctrl+L", "ClearScreen")
//	vi.bind_edits("normal", "Ctrl+K", {"Select(LineEnd)", "Cut"})
//	if vi.mode() == "normal" then
//	    vi.unbind("normal", "Backspace")
//	end
//
// Bindings are applied through a Binder, which *input.Vi implements.
package lua
