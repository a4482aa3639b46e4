package keymap

import (
	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/key"
)

// DefaultNormal returns the default Normal mode table.
//
// Printable characters are left unbound so that they reach the command
// grammar. Backspace and Delete keep their vi meaning: Backspace only moves
// the cursor.
func DefaultNormal() *Keybindings {
	kb := New()
	addControlBindings(kb)
	addNavigationBindings(kb)
	addSelectionBindings(kb)

	kb.Bind(key.ModNone, key.Named(key.KeyBackspace), edit.Edit(move(edit.MotionLeft)))
	kb.Bind(key.ModNone, key.Named(key.KeyDelete), edit.Edit(edit.Do(edit.OpDelete)))
	return kb
}

// DefaultInsert returns the default Insert mode table.
func DefaultInsert() *Keybindings {
	kb := New()
	addControlBindings(kb)
	addNavigationBindings(kb)
	addEditBindings(kb)
	addSelectionBindings(kb)
	return kb
}

// addControlBindings binds the shell control chords shared by both modes.
func addControlBindings(kb *Keybindings) {
	kb.Bind(key.ModCtrl, key.Char('c'), edit.Notify(edit.KindCtrlC))
	kb.Bind(key.ModCtrl, key.Char('d'), edit.Notify(edit.KindCtrlD))
	kb.Bind(key.ModCtrl, key.Char('l'), edit.Notify(edit.KindClearScreen))
	kb.Bind(key.ModCtrl, key.Char('r'), edit.Notify(edit.KindSearchHistory))
	kb.Bind(key.ModCtrl, key.Char('o'), edit.Notify(edit.KindOpenEditor))
}

// addNavigationBindings binds arrows, Home/End and menu keys. Arrow keys
// try the completion menu and history hints before moving the cursor.
func addNavigationBindings(kb *Keybindings) {
	kb.Bind(key.ModNone, key.Named(key.KeyUp), edit.UntilFound(
		edit.Notify(edit.KindMenuUp),
		edit.Notify(edit.KindUp),
	))
	kb.Bind(key.ModNone, key.Named(key.KeyDown), edit.UntilFound(
		edit.Notify(edit.KindMenuDown),
		edit.Notify(edit.KindDown),
	))
	kb.Bind(key.ModNone, key.Named(key.KeyLeft), edit.UntilFound(
		edit.Notify(edit.KindMenuLeft),
		edit.Notify(edit.KindLeft),
	))
	kb.Bind(key.ModNone, key.Named(key.KeyRight), edit.UntilFound(
		edit.Notify(edit.KindHistoryHintComplete),
		edit.Notify(edit.KindMenuRight),
		edit.Notify(edit.KindRight),
	))

	kb.Bind(key.ModCtrl, key.Named(key.KeyLeft), edit.Edit(move(edit.MotionWordBackward)))
	kb.Bind(key.ModCtrl, key.Named(key.KeyRight), edit.UntilFound(
		edit.Notify(edit.KindHistoryHintWordComplete),
		edit.Edit(move(edit.MotionWordForward)),
	))

	kb.Bind(key.ModNone, key.Named(key.KeyHome), edit.Edit(move(edit.MotionLineStart)))
	kb.Bind(key.ModNone, key.Named(key.KeyEnd), edit.UntilFound(
		edit.Notify(edit.KindHistoryHintComplete),
		edit.Edit(move(edit.MotionLineEnd)),
	))
	kb.Bind(key.ModCtrl, key.Named(key.KeyHome), edit.Edit(move(edit.MotionBufferStart)))
	kb.Bind(key.ModCtrl, key.Named(key.KeyEnd), edit.Edit(move(edit.MotionBufferEnd)))

	kb.Bind(key.ModNone, key.Named(key.KeyTab), edit.Notify(edit.KindMenuNext))
	kb.Bind(key.ModShift, key.Named(key.KeyBackTab), edit.Notify(edit.KindMenuPrevious))
	kb.Bind(key.ModNone, key.Named(key.KeyBackTab), edit.Notify(edit.KindMenuPrevious))

	kb.Bind(key.ModNone, key.Named(key.KeyPageUp), edit.Notify(edit.KindPreviousHistory))
	kb.Bind(key.ModNone, key.Named(key.KeyPageDown), edit.Notify(edit.KindNextHistory))
}

// addEditBindings binds the deletion keys used while typing.
func addEditBindings(kb *Keybindings) {
	kb.Bind(key.ModNone, key.Named(key.KeyBackspace), edit.Edit(edit.Do(edit.OpBackspace)))
	kb.Bind(key.ModNone, key.Named(key.KeyDelete), edit.Edit(edit.Do(edit.OpDelete)))
	kb.Bind(key.ModCtrl, key.Named(key.KeyBackspace), edit.Edit(edit.Do(edit.OpBackspaceWord)))
	kb.Bind(key.ModAlt, key.Named(key.KeyBackspace), edit.Edit(edit.Do(edit.OpBackspaceWord)))
	kb.Bind(key.ModCtrl, key.Char('h'), edit.Edit(edit.Do(edit.OpBackspace)))
	kb.Bind(key.ModCtrl, key.Char('w'), edit.Edit(edit.Do(edit.OpBackspaceWord)))
	kb.Bind(key.ModCtrl, key.Named(key.KeyDelete), edit.Edit(edit.Do(edit.OpDeleteWord)))
	kb.Bind(key.ModAlt, key.Char('d'), edit.Edit(edit.Do(edit.OpDeleteWord)))
	kb.Bind(key.ModCtrl, key.Char('z'), edit.Edit(edit.Do(edit.OpUndo)))
	kb.Bind(key.ModCtrl, key.Char('y'), edit.Edit(edit.Do(edit.OpRedo)))
}

// addSelectionBindings binds shifted navigation keys to selections.
func addSelectionBindings(kb *Keybindings) {
	kb.Bind(key.ModShift, key.Named(key.KeyLeft), edit.Edit(sel(edit.MotionLeft)))
	kb.Bind(key.ModShift, key.Named(key.KeyRight), edit.Edit(sel(edit.MotionRight)))
	kb.Bind(key.ModShift, key.Named(key.KeyHome), edit.Edit(sel(edit.MotionLineStart)))
	kb.Bind(key.ModShift, key.Named(key.KeyEnd), edit.Edit(sel(edit.MotionLineEnd)))
	kb.Bind(key.ModShift|key.ModCtrl, key.Named(key.KeyLeft), edit.Edit(sel(edit.MotionWordBackward)))
	kb.Bind(key.ModShift|key.ModCtrl, key.Named(key.KeyRight), edit.Edit(sel(edit.MotionWordForward)))
}

func move(kind edit.MotionKind) edit.Command {
	return edit.Move(edit.NewMotion(kind), 1)
}

func sel(kind edit.MotionKind) edit.Command {
	return edit.Select(edit.NewMotion(kind), 1)
}
