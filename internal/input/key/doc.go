// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (named keys or runes)
//   - Modifier: Represents modifier keys (Shift, Ctrl, Alt)
//   - Code: A key plus its rune, the unit keybinding tables are indexed by
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+L", "Alt+F4", "Ctrl+Alt+x"
//   - Vim-style: "<C-l>", "<A-f>", "<S-Tab>", "<CR>", "<Esc>"
//
// Specifications are used by keymap files and init scripts; the interpreter
// itself only ever sees Event values produced by the terminal layer.
package key
