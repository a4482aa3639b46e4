package input

import "github.com/dshills/vimode/internal/edit"

// Hook observes every event handled by a Vi together with its output.
// Hooks run synchronously at the end of Handle and must not call back
// into the same Vi.
type Hook interface {
	PostEvent(in Event, out edit.Event)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(in Event, out edit.Event)

// PostEvent calls f.
func (f HookFunc) PostEvent(in Event, out edit.Event) {
	f(in, out)
}

type hookEntry struct {
	id   uint64
	hook Hook
}
