package vim

import "github.com/dshills/vimode/internal/edit"

// MotionType categorizes motions by their behavior.
type MotionType uint8

const (
	// MotionCharwise moves within the current line.
	MotionCharwise MotionType = iota

	// MotionLinewise moves between lines. On a single-line prompt these
	// walk the history instead.
	MotionLinewise

	// MotionCharSearch needs a target character (f, F, t, T).
	MotionCharSearch

	// MotionRepeatSearch replays the last character search (; and ,).
	MotionRepeatSearch
)

// Motion represents a Vim motion command.
// Motions define how the cursor moves and what range an operator affects.
type Motion struct {
	// Name is the motion identifier (e.g., "wordForward", "lineEnd").
	Name string

	// Key is the key that triggers this motion.
	Key rune

	// Kind is the cursor motion emitted for charwise motions.
	Kind edit.MotionKind

	// Type indicates how the motion is parsed and lowered.
	Type MotionType

	// Direction applies to character searches, and to the history walk of
	// linewise motions.
	Direction edit.Direction

	// Inclusive indicates if the motion includes the target character.
	// f and F are inclusive, t and T are not.
	Inclusive bool

	// Reverse flips the remembered search direction (,).
	Reverse bool
}

// Standard Vim motions.
var (
	// Character motions
	MotionLeft = Motion{Name: "left", Key: 'h', Kind: edit.MotionLeft}

	MotionRight = Motion{Name: "right", Key: 'l', Kind: edit.MotionRight}

	MotionUp = Motion{
		Name:      "up",
		Key:       'k',
		Kind:      edit.MotionUp,
		Type:      MotionLinewise,
		Direction: edit.Backward,
	}

	MotionDown = Motion{
		Name: "down",
		Key:  'j',
		Kind: edit.MotionDown,
		Type: MotionLinewise,
	}

	// Word motions
	MotionWordForward = Motion{Name: "wordForward", Key: 'w', Kind: edit.MotionWordForward}

	MotionWordBackward = Motion{Name: "wordBackward", Key: 'b', Kind: edit.MotionWordBackward}

	MotionWordEnd = Motion{Name: "wordEnd", Key: 'e', Kind: edit.MotionWordEnd}

	// WORD motions (whitespace-delimited)
	MotionWORDForward = Motion{Name: "WORDForward", Key: 'W', Kind: edit.MotionBigWordForward}

	MotionWORDBackward = Motion{Name: "WORDBackward", Key: 'B', Kind: edit.MotionBigWordBackward}

	MotionWORDEnd = Motion{Name: "WORDEnd", Key: 'E', Kind: edit.MotionBigWordEnd}

	// Line motions
	MotionLineStart = Motion{Name: "lineStart", Key: '0', Kind: edit.MotionLineStart}

	MotionFirstNonBlank = Motion{Name: "firstNonBlank", Key: '^', Kind: edit.MotionFirstNonBlank}

	MotionLineEnd = Motion{Name: "lineEnd", Key: '$', Kind: edit.MotionLineEnd}

	// Search motions
	MotionFindChar = Motion{
		Name:      "findChar",
		Key:       'f',
		Kind:      edit.MotionUntilChar,
		Type:      MotionCharSearch,
		Direction: edit.Forward,
		Inclusive: true,
	}

	MotionFindCharBack = Motion{
		Name:      "findCharBack",
		Key:       'F',
		Kind:      edit.MotionUntilChar,
		Type:      MotionCharSearch,
		Direction: edit.Backward,
		Inclusive: true,
	}

	MotionTillChar = Motion{
		Name:      "tillChar",
		Key:       't',
		Kind:      edit.MotionUntilChar,
		Type:      MotionCharSearch,
		Direction: edit.Forward,
	}

	MotionTillCharBack = Motion{
		Name:      "tillCharBack",
		Key:       'T',
		Kind:      edit.MotionUntilChar,
		Type:      MotionCharSearch,
		Direction: edit.Backward,
	}

	MotionRepeatCharSearch = Motion{
		Name: "repeatSearch",
		Key:  ';',
		Kind: edit.MotionUntilChar,
		Type: MotionRepeatSearch,
	}

	MotionRepeatCharSearchBack = Motion{
		Name:    "repeatSearchBack",
		Key:     ',',
		Kind:    edit.MotionUntilChar,
		Type:    MotionRepeatSearch,
		Reverse: true,
	}
)

// motions maps motion keys to their definitions.
var motions = map[rune]*Motion{
	'h': &MotionLeft,
	'l': &MotionRight,
	'k': &MotionUp,
	'j': &MotionDown,
	'w': &MotionWordForward,
	'b': &MotionWordBackward,
	'e': &MotionWordEnd,
	'W': &MotionWORDForward,
	'B': &MotionWORDBackward,
	'E': &MotionWORDEnd,
	'0': &MotionLineStart,
	'^': &MotionFirstNonBlank,
	'$': &MotionLineEnd,
	'f': &MotionFindChar,
	'F': &MotionFindCharBack,
	't': &MotionTillChar,
	'T': &MotionTillCharBack,
	';': &MotionRepeatCharSearch,
	',': &MotionRepeatCharSearchBack,
}

// GetMotion returns the motion for the given key.
// Returns nil if the key is not a motion.
func GetMotion(key rune) *Motion {
	return motions[key]
}
