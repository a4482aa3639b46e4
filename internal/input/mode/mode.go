package mode

import (
	"fmt"
	"strings"
)

// Mode is the active editing mode.
type Mode uint8

const (
	// Normal interprets keys as command sequences.
	Normal Mode = iota

	// Insert inserts typed characters.
	Insert
)

// Standard mode names.
const (
	NameNormal = "normal"
	NameInsert = "insert"
)

// String returns the mode identifier ("normal", "insert").
func (m Mode) String() string {
	switch m {
	case Normal:
		return NameNormal
	case Insert:
		return NameInsert
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// DisplayName returns a human-readable name for a status line or prompt.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// CursorStyle returns the cursor style conventionally shown in this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Parse returns the mode for a name such as "normal" or "INSERT".
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNormal, "n":
		return Normal, nil
	case NameInsert, "i":
		return Insert, nil
	default:
		return Normal, fmt.Errorf("unknown mode: %q", name)
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
