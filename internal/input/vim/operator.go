package vim

import "github.com/dshills/vimode/internal/edit"

// Operator represents a Vim operator command.
// Operators act on a range of text defined by a following motion, or on
// whole lines when doubled.
type Operator struct {
	// Name is the operator identifier (e.g., "delete", "change", "yank").
	Name string

	// Key is the key that triggers this operator (e.g., 'd', 'c', 'y').
	Key rune

	// Edit is the command applied to the selected range.
	Edit edit.Op

	// ChangesText indicates if this operator modifies the buffer.
	ChangesText bool

	// EntersInsert indicates if this operator enters insert mode after.
	EntersInsert bool
}

// Standard Vim operators.
var (
	// OpDelete deletes text.
	OpDelete = Operator{
		Name:        "delete",
		Key:         'd',
		Edit:        edit.OpCut,
		ChangesText: true,
	}

	// OpChange deletes text and enters insert mode.
	OpChange = Operator{
		Name:         "change",
		Key:          'c',
		Edit:         edit.OpCut,
		ChangesText:  true,
		EntersInsert: true,
	}

	// OpYank copies text to the cut buffer.
	OpYank = Operator{
		Name: "yank",
		Key:  'y',
		Edit: edit.OpCopy,
	}
)

// operators maps operator keys to their definitions.
var operators = map[rune]*Operator{
	'd': &OpDelete,
	'c': &OpChange,
	'y': &OpYank,
}

// GetOperator returns the operator for the given key.
// Returns nil if the key is not an operator.
func GetOperator(key rune) *Operator {
	return operators[key]
}
