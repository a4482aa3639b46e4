package edit

import "fmt"

// Direction is the search direction of a character motion.
type Direction uint8

const (
	// Forward searches to the right of the cursor.
	Forward Direction = iota
	// Backward searches to the left of the cursor.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// MotionKind identifies a cursor motion unit.
type MotionKind uint8

const (
	MotionLeft MotionKind = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWordForward
	MotionBigWordForward
	MotionWordEnd
	MotionBigWordEnd
	MotionWordBackward
	MotionBigWordBackward
	MotionLineStart
	MotionFirstNonBlank
	MotionLineEnd
	MotionBufferStart
	MotionBufferEnd

	// MotionUntilChar moves to the next occurrence of Char in Direction,
	// landing on it when Inclusive and just before it otherwise.
	MotionUntilChar
)

var motionNames = [...]string{
	MotionLeft:            "Left",
	MotionRight:           "Right",
	MotionUp:              "Up",
	MotionDown:            "Down",
	MotionWordForward:     "WordForward",
	MotionBigWordForward:  "BigWordForward",
	MotionWordEnd:         "WordEnd",
	MotionBigWordEnd:      "BigWordEnd",
	MotionWordBackward:    "WordBackward",
	MotionBigWordBackward: "BigWordBackward",
	MotionLineStart:       "LineStart",
	MotionFirstNonBlank:   "FirstNonBlank",
	MotionLineEnd:         "LineEnd",
	MotionBufferStart:     "BufferStart",
	MotionBufferEnd:       "BufferEnd",
	MotionUntilChar:       "UntilChar",
}

// String returns the motion kind name.
func (k MotionKind) String() string {
	if int(k) < len(motionNames) {
		return motionNames[k]
	}
	return fmt.Sprintf("MotionKind(%d)", k)
}

// Motion describes a cursor movement or the range it spans.
type Motion struct {
	Kind MotionKind

	// Char, Direction and Inclusive apply to MotionUntilChar only.
	Char      rune
	Direction Direction
	Inclusive bool
}

// NewMotion returns a motion without a character target.
func NewMotion(kind MotionKind) Motion {
	return Motion{Kind: kind}
}

// UntilChar returns a character search motion.
func UntilChar(c rune, dir Direction, inclusive bool) Motion {
	return Motion{Kind: MotionUntilChar, Char: c, Direction: dir, Inclusive: inclusive}
}

// String returns a compact description such as "WordForward" or
// "UntilChar('x',forward,inclusive)".
func (m Motion) String() string {
	if m.Kind != MotionUntilChar {
		return m.Kind.String()
	}
	incl := "exclusive"
	if m.Inclusive {
		incl = "inclusive"
	}
	return fmt.Sprintf("UntilChar(%q,%s,%s)", m.Char, m.Direction, incl)
}

// ParseMotionKind returns the motion kind with the given name.
func ParseMotionKind(name string) (MotionKind, error) {
	for i, n := range motionNames {
		if n == name && MotionKind(i) != MotionUntilChar {
			return MotionKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: motion %q", ErrUnknownName, name)
}
