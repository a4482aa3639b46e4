package vim

import (
	"strconv"
	"strings"
)

// ParseStatus classifies a key sequence.
type ParseStatus uint8

const (
	// StatusInvalid indicates the sequence can never become a command.
	StatusInvalid ParseStatus = iota

	// StatusIncomplete indicates more input is needed.
	StatusIncomplete

	// StatusComplete indicates a complete command was parsed.
	StatusComplete
)

// String returns a string representation of the status.
func (s ParseStatus) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusIncomplete:
		return "incomplete"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Command represents a parsed Vim command.
type Command struct {
	// Count is the leading count (0 means none given).
	Count int

	// Operator is the operator, if any.
	Operator *Operator

	// MotionCount is the count between operator and motion (0 means none).
	MotionCount int

	// Motion is the motion, if any.
	Motion *Motion

	// Action is the motionless command, if any.
	Action *Action

	// Char is the literal argument of f/F/t/T and r.
	Char rune

	// Linewise indicates a doubled operator (dd, yy, cc).
	Linewise bool
}

// GetCount returns the effective count, combining the operator and motion
// counts (1 if none was specified).
func (c *Command) GetCount() int {
	return CombineCounts(c.Count, c.MotionCount)
}

// EntersInsert reports whether completing the command switches to Insert mode.
func (c *Command) EntersInsert() bool {
	if c.Operator != nil {
		return c.Operator.EntersInsert
	}
	if c.Action != nil {
		return c.Action.EntersInsert
	}
	return false
}

// ChangesText reports whether the command modifies the buffer.
func (c *Command) ChangesText() bool {
	if c.Operator != nil {
		return c.Operator.ChangesText
	}
	if c.Action != nil {
		return c.Action.ChangesText
	}
	return false
}

// String returns the keys that produce the command, e.g. "2d3w" or "fx".
func (c *Command) String() string {
	var sb strings.Builder
	if c.Count > 0 {
		sb.WriteString(strconv.Itoa(c.Count))
	}
	if c.Operator != nil {
		sb.WriteRune(c.Operator.Key)
		if c.MotionCount > 0 {
			sb.WriteString(strconv.Itoa(c.MotionCount))
		}
		if c.Linewise {
			sb.WriteRune(c.Operator.Key)
		}
	}
	switch {
	case c.Motion != nil:
		sb.WriteRune(c.Motion.Key)
		if c.Motion.Type == MotionCharSearch {
			sb.WriteRune(c.Char)
		}
	case c.Action != nil:
		sb.WriteRune(c.Action.Key)
		if c.Action.NeedsChar {
			sb.WriteRune(c.Char)
		}
	}
	return sb.String()
}

// ParseResult is the outcome of Parse.
type ParseResult struct {
	// Status is the classification of the sequence.
	Status ParseStatus

	// Command is set when Status is StatusComplete.
	Command *Command
}

// IsValid reports whether the sequence is a command or a prefix of one.
func (r ParseResult) IsValid() bool {
	return r.Status != StatusInvalid
}

// IsComplete reports whether the sequence is a complete command.
func (r ParseResult) IsComplete() bool {
	return r.Status == StatusComplete
}

var (
	invalid    = ParseResult{Status: StatusInvalid}
	incomplete = ParseResult{Status: StatusIncomplete}
)

// Parse classifies a whole key sequence:
//
//	[count] operator [count] motion
//	[count] operator operator
//	[count] motion
//	[count] action
//
// Parse keeps no state; callers re-parse the full sequence after every key.
func Parse(keys []rune) ParseResult {
	cmd := &Command{}
	rest := keys

	var n int
	cmd.Count, n = ParseCountFromRunes(rest)
	rest = rest[n:]
	if len(rest) == 0 {
		return incomplete
	}

	r := rest[0]
	rest = rest[1:]

	if op := GetOperator(r); op != nil {
		cmd.Operator = op
		return parseOperatorTarget(cmd, rest)
	}
	if m := GetMotion(r); m != nil {
		cmd.Motion = m
		return parseMotionArg(cmd, rest)
	}
	if a := GetAction(r); a != nil {
		cmd.Action = a
		if !a.NeedsChar {
			return complete(cmd, rest)
		}
		if len(rest) == 0 {
			return incomplete
		}
		cmd.Char = rest[0]
		return complete(cmd, rest[1:])
	}

	return invalid
}

// parseOperatorTarget parses what follows an operator key.
func parseOperatorTarget(cmd *Command, rest []rune) ParseResult {
	var n int
	cmd.MotionCount, n = ParseCountFromRunes(rest)
	rest = rest[n:]
	if len(rest) == 0 {
		return incomplete
	}

	r := rest[0]
	rest = rest[1:]

	if r == cmd.Operator.Key {
		cmd.Linewise = true
		return complete(cmd, rest)
	}

	m := GetMotion(r)
	if m == nil || m.Type == MotionLinewise {
		return invalid
	}
	cmd.Motion = m
	return parseMotionArg(cmd, rest)
}

// parseMotionArg reads the target character of a character search.
func parseMotionArg(cmd *Command, rest []rune) ParseResult {
	if cmd.Motion.Type != MotionCharSearch {
		return complete(cmd, rest)
	}
	if len(rest) == 0 {
		return incomplete
	}
	cmd.Char = rest[0]
	return complete(cmd, rest[1:])
}

func complete(cmd *Command, rest []rune) ParseResult {
	if len(rest) != 0 {
		return invalid
	}
	return ParseResult{Status: StatusComplete, Command: cmd}
}
