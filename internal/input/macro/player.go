package macro

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input"
)

// ErrAlreadyPlaying is returned when a playback is started during another.
var ErrAlreadyPlaying = errors.New("already playing a macro")

// EventHandler is a callback that processes replayed input events.
type EventHandler func(ev input.Event)

// Handler consumes input events, such as *input.Vi.
type Handler interface {
	Handle(ev input.Event) edit.Event
}

// Player replays recordings stored in a Recorder.
type Player struct {
	recorder *Recorder
	playing  atomic.Bool
}

// NewPlayer creates a player that reads registers from recorder.
func NewPlayer(recorder *Recorder) *Player {
	return &Player{
		recorder: recorder,
	}
}

// PlayWithContext replays the recording in register count times
// (minimum 1), calling handler for each event. Playback runs synchronously
// and stops with ctx's error once ctx is done.
func (p *Player) PlayWithContext(ctx context.Context, register rune, count int, handler EventHandler) error {
	if !IsValidRegister(register) {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	rec := p.recorder.Get(register)
	if rec.Len() == 0 {
		return fmt.Errorf("%w: register %c", ErrEmptyRecording, register)
	}

	if count < 1 {
		count = 1
	}

	if !p.playing.CompareAndSwap(false, true) {
		return ErrAlreadyPlaying
	}
	defer p.playing.Store(false)

	for i := 0; i < count; i++ {
		for _, ev := range rec.Events {
			if err := ctx.Err(); err != nil {
				return err
			}
			handler(ev)
		}
	}

	p.recorder.SetLastPlayed(register)
	return nil
}

// Replay plays rec once through h and returns the outputs in order. When
// ctx is done first, the outputs so far are returned with ctx's error.
func Replay(ctx context.Context, h Handler, rec *Recording) ([]edit.Event, error) {
	rec = rec.Clone()
	if rec.Len() == 0 {
		return nil, ErrEmptyRecording
	}
	if reg := NormalizeRegister(rec.Register); reg != 0 {
		rec.Register = reg
	} else {
		rec.Register = MinLetterRegister
	}

	registers := NewRecorder()
	if err := registers.Set(rec); err != nil {
		return nil, err
	}

	out := make([]edit.Event, 0, rec.Len())
	err := NewPlayer(registers).PlayWithContext(ctx, rec.Register, 1, func(ev input.Event) {
		out = append(out, h.Handle(ev))
	})
	return out, err
}
