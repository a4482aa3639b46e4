package vim

// Action is a Normal-mode command that completes without a motion.
type Action struct {
	// Name is the action identifier (e.g., "append", "paste").
	Name string

	// Key is the key that triggers this action.
	Key rune

	// NeedsChar indicates the action takes one literal character (r).
	NeedsChar bool

	// ChangesText indicates if the action modifies the buffer, which makes
	// it the target of a later repeat.
	ChangesText bool

	// EntersInsert indicates if the action enters insert mode after.
	EntersInsert bool
}

// Standard actions.
var (
	// Mode entry
	ActionInsert = Action{Name: "insert", Key: 'i', EntersInsert: true}

	ActionAppend = Action{Name: "append", Key: 'a', EntersInsert: true}

	ActionInsertLineStart = Action{Name: "insertLineStart", Key: 'I', EntersInsert: true}

	ActionAppendLineEnd = Action{Name: "appendLineEnd", Key: 'A', EntersInsert: true}

	ActionOpenBelow = Action{Name: "openBelow", Key: 'o', ChangesText: true, EntersInsert: true}

	ActionOpenAbove = Action{Name: "openAbove", Key: 'O', ChangesText: true, EntersInsert: true}

	ActionSubstitute = Action{Name: "substitute", Key: 's', ChangesText: true, EntersInsert: true}

	ActionSubstituteLine = Action{Name: "substituteLine", Key: 'S', ChangesText: true, EntersInsert: true}

	ActionChangeToLineEnd = Action{Name: "changeToLineEnd", Key: 'C', ChangesText: true, EntersInsert: true}

	ActionSearchHistory = Action{Name: "searchHistory", Key: '?', EntersInsert: true}

	// Edits
	ActionDeleteChar = Action{Name: "deleteChar", Key: 'x', ChangesText: true}

	ActionDeleteCharBack = Action{Name: "deleteCharBack", Key: 'X', ChangesText: true}

	ActionDeleteToLineEnd = Action{Name: "deleteToLineEnd", Key: 'D', ChangesText: true}

	ActionPasteAfter = Action{Name: "pasteAfter", Key: 'p', ChangesText: true}

	ActionPasteBefore = Action{Name: "pasteBefore", Key: 'P', ChangesText: true}

	ActionUndo = Action{Name: "undo", Key: 'u'}

	ActionSwitchCase = Action{Name: "switchCase", Key: '~', ChangesText: true}

	ActionReplaceChar = Action{Name: "replaceChar", Key: 'r', NeedsChar: true, ChangesText: true}

	ActionRepeat = Action{Name: "repeat", Key: '.'}
)

// actions maps action keys to their definitions.
var actions = map[rune]*Action{
	'i': &ActionInsert,
	'a': &ActionAppend,
	'I': &ActionInsertLineStart,
	'A': &ActionAppendLineEnd,
	'o': &ActionOpenBelow,
	'O': &ActionOpenAbove,
	's': &ActionSubstitute,
	'S': &ActionSubstituteLine,
	'C': &ActionChangeToLineEnd,
	'?': &ActionSearchHistory,
	'x': &ActionDeleteChar,
	'X': &ActionDeleteCharBack,
	'D': &ActionDeleteToLineEnd,
	'p': &ActionPasteAfter,
	'P': &ActionPasteBefore,
	'u': &ActionUndo,
	'~': &ActionSwitchCase,
	'r': &ActionReplaceChar,
	'.': &ActionRepeat,
}

// GetAction returns the action for the given key.
// Returns nil if the key is not an action.
func GetAction(key rune) *Action {
	return actions[key]
}
