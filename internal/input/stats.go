package input

import "github.com/dshills/vimode/internal/edit"

// Stats counts what a Vi has processed.
type Stats struct {
	// Event counters
	KeyEvents   uint64
	MouseEvents uint64
	Pastes      uint64
	Resizes     uint64

	// Outcomes
	SequencesCompleted uint64
	SequencesInvalid   uint64
	ModeSwitches       uint64
	NoneEvents         uint64
}

// recordInput counts an incoming event.
func (s *Stats) recordInput(ev Event) {
	switch ev.Type {
	case EventKey:
		s.KeyEvents++
	case EventMouse:
		s.MouseEvents++
	case EventPaste:
		s.Pastes++
	case EventResize:
		s.Resizes++
	}
}

// recordOutput counts an emitted event.
func (s *Stats) recordOutput(out edit.Event) {
	if out.IsNone() {
		s.NoneEvents++
	}
}
