package edit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownName is returned when a kind, op or motion name is not recognized.
var ErrUnknownName = errors.New("unknown name")

// Op identifies a primitive line-buffer command.
type Op uint8

const (
	// OpMove moves the cursor by Motion, Count times.
	OpMove Op = iota
	// OpSelect selects from the cursor over Motion, Count times.
	OpSelect
	// OpSelectLines selects Count whole lines starting at the cursor line.
	OpSelectLines
	// OpCut removes the selection into the cut buffer.
	OpCut
	// OpCopy copies the selection into the cut buffer.
	OpCopy
	OpInsertChar
	OpInsertString
	OpInsertNewline
	OpBackspace
	OpDelete
	OpBackspaceWord
	OpDeleteWord
	OpClear
	OpPasteAfter
	OpPasteBefore
	OpUndo
	OpRedo
	// OpSwitchCase toggles the case of Count characters under the cursor.
	OpSwitchCase
	// OpReplaceChar overwrites Count characters with Char.
	OpReplaceChar
)

var opNames = [...]string{
	OpMove:          "Move",
	OpSelect:        "Select",
	OpSelectLines:   "SelectLines",
	OpCut:           "Cut",
	OpCopy:          "Copy",
	OpInsertChar:    "InsertChar",
	OpInsertString:  "InsertString",
	OpInsertNewline: "InsertNewline",
	OpBackspace:     "Backspace",
	OpDelete:        "Delete",
	OpBackspaceWord: "BackspaceWord",
	OpDeleteWord:    "DeleteWord",
	OpClear:         "Clear",
	OpPasteAfter:    "PasteAfter",
	OpPasteBefore:   "PasteBefore",
	OpUndo:          "Undo",
	OpRedo:          "Redo",
	OpSwitchCase:    "SwitchCase",
	OpReplaceChar:   "ReplaceChar",
}

// String returns the op name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// ParseOp returns the op with the given name.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("%w: op %q", ErrUnknownName, name)
}

// Command is a single symbolic edit for the line buffer.
type Command struct {
	Op Op

	// Motion applies to OpMove and OpSelect.
	Motion Motion

	// Count is the repeat count, always at least 1.
	Count int

	// Char applies to OpInsertChar and OpReplaceChar.
	Char rune

	// Text applies to OpInsertString.
	Text string
}

func normCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Do returns a command for an op without payload.
func Do(op Op) Command {
	return Command{Op: op, Count: 1}
}

// Repeat returns a command for an op without payload repeated n times.
func Repeat(op Op, n int) Command {
	return Command{Op: op, Count: normCount(n)}
}

// Move returns a cursor movement repeated n times.
func Move(m Motion, n int) Command {
	return Command{Op: OpMove, Motion: m, Count: normCount(n)}
}

// Select returns a selection over the range of m repeated n times.
func Select(m Motion, n int) Command {
	return Command{Op: OpSelect, Motion: m, Count: normCount(n)}
}

// SelectLines returns a selection of n lines starting at the cursor line.
func SelectLines(n int) Command {
	return Command{Op: OpSelectLines, Count: normCount(n)}
}

// Cut returns a command that cuts the current selection.
func Cut() Command {
	return Do(OpCut)
}

// Copy returns a command that copies the current selection.
func Copy() Command {
	return Do(OpCopy)
}

// InsertChar returns a command inserting c.
func InsertChar(c rune) Command {
	return Command{Op: OpInsertChar, Char: c, Count: 1}
}

// InsertString returns a command inserting s.
func InsertString(s string) Command {
	return Command{Op: OpInsertString, Text: s, Count: 1}
}

// ReplaceChar returns a command overwriting n characters with c.
func ReplaceChar(c rune, n int) Command {
	return Command{Op: OpReplaceChar, Char: c, Count: normCount(n)}
}

// String returns a compact form that ParseCommand accepts, with a "xN"
// suffix for repeated commands.
func (c Command) String() string {
	var s string
	switch c.Op {
	case OpMove, OpSelect:
		s = fmt.Sprintf("%s(%s)", c.Op, c.Motion)
	case OpInsertChar, OpReplaceChar:
		s = fmt.Sprintf("%s(%s)", c.Op, string(c.Char))
	case OpInsertString:
		s = fmt.Sprintf("%s(%s)", c.Op, c.Text)
	default:
		s = c.Op.String()
	}
	if c.Count > 1 {
		s += fmt.Sprintf("x%d", c.Count)
	}
	return s
}

// ParseCommand parses a command name as used in keymap files.
//
// Accepted forms:
//
//	"Backspace", "Undo", "Cut"      ops without payload
//	"Move(LineEnd)"                 movement by a named motion
//	"Select(WordForward)"           selection over a named motion
//	"InsertChar(x)"                 single character insert
//	"InsertString(some text)"       string insert
func ParseCommand(spec string) (Command, error) {
	spec = strings.TrimSpace(spec)
	name, arg, hasArg := strings.Cut(spec, "(")
	if hasArg {
		if !strings.HasSuffix(arg, ")") {
			return Command{}, fmt.Errorf("%w: command %q", ErrUnknownName, spec)
		}
		arg = strings.TrimSuffix(arg, ")")
	}

	op, err := ParseOp(strings.TrimSpace(name))
	if err != nil {
		return Command{}, err
	}

	switch op {
	case OpMove, OpSelect:
		if !hasArg {
			return Command{}, fmt.Errorf("%w: %s requires a motion", ErrUnknownName, op)
		}
		kind, err := ParseMotionKind(strings.TrimSpace(arg))
		if err != nil {
			return Command{}, err
		}
		if op == OpMove {
			return Move(NewMotion(kind), 1), nil
		}
		return Select(NewMotion(kind), 1), nil
	case OpInsertChar, OpReplaceChar:
		r := []rune(arg)
		if len(r) != 1 {
			return Command{}, fmt.Errorf("%w: %s requires one character", ErrUnknownName, op)
		}
		if op == OpInsertChar {
			return InsertChar(r[0]), nil
		}
		return ReplaceChar(r[0], 1), nil
	case OpInsertString:
		return InsertString(arg), nil
	default:
		if hasArg {
			return Command{}, fmt.Errorf("%w: %s takes no argument", ErrUnknownName, op)
		}
		return Do(op), nil
	}
}
