// Package mode defines the two editing modes of the vi interpreter.
//
// A line editor in vi style has only two modes that matter to the input
// layer:
//   - Normal mode: keys form command sequences (motions, operators)
//   - Insert mode: keys insert text unless bound to an event
//
// Mode transitions are owned by the interpreter in package input. This
// package only names the modes and the presentation hints a prompt or
// renderer needs (display name, cursor style).
package mode
