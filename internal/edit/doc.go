// Package edit defines the events the vi interpreter emits to its
// line-editor collaborator.
//
// An Event is a tagged union discriminated by Kind. Most kinds are bare
// notifications (Enter, Esc, Repaint, ClearScreen, ...); KindEdit carries an
// ordered list of Commands for the line buffer to execute; KindMultiple and
// KindUntilFound combine events while preserving emission order.
//
// Commands are symbolic: the interpreter never looks at buffer contents.
// A Command such as Select(Motion{Kind: MotionWordForward}, 6) followed by
// Cut() means "delete six words from the cursor", and it is up to the line
// editor to resolve word boundaries.
//
// Every Kind and Op has a stable name so keymap files and init scripts can
// refer to them (see ParseEvent and ParseCommand).
package edit
