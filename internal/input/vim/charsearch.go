package vim

import "github.com/dshills/vimode/internal/edit"

// CharSearch is the most recent find/till motion, replayed by ; and ,.
type CharSearch struct {
	Direction edit.Direction
	Char      rune
	Inclusive bool
}

// Motion returns the cursor motion that repeats the search.
func (cs CharSearch) Motion() edit.Motion {
	return edit.UntilChar(cs.Char, cs.Direction, cs.Inclusive)
}

// Reversed returns the same search in the opposite direction.
func (cs CharSearch) Reversed() CharSearch {
	cs.Direction = cs.Direction.Reverse()
	return cs
}

// State is the interpreter state that lowering reads and updates.
type State struct {
	// CharSearch is the last find/till motion, nil until one completes.
	CharSearch *CharSearch

	// Previous is the last text-changing event, replayed by '.'.
	Previous edit.Event
}

// Reset forgets the remembered search and the repeatable event.
func (s *State) Reset() {
	s.CharSearch = nil
	s.Previous = edit.None()
}
