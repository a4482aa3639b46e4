package macro

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input"
)

// Errors returned by recording operations.
var (
	// ErrInvalidRegister is returned for a register outside a-z and 0-9.
	ErrInvalidRegister = errors.New("invalid register")
	// ErrEmptyRecording is returned when there is nothing to save or play.
	ErrEmptyRecording = errors.New("empty recording")
	// ErrAlreadyRecording is returned by StartRecording during a recording.
	ErrAlreadyRecording = errors.New("already recording")
)

// Recording is a captured sequence of raw input events.
type Recording struct {
	ID       uuid.UUID
	Register rune
	Created  time.Time
	Events   []input.Event
}

// NewRecording creates a recording with a fresh ID.
func NewRecording(register rune, events []input.Event) *Recording {
	saved := make([]input.Event, len(events))
	copy(saved, events)
	return &Recording{
		ID:       uuid.New(),
		Register: register,
		Created:  time.Now(),
		Events:   saved,
	}
}

// Len returns the number of events.
func (r *Recording) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Events)
}

// Clone returns a deep copy.
func (r *Recording) Clone() *Recording {
	if r == nil {
		return nil
	}
	c := *r
	c.Events = make([]input.Event, len(r.Events))
	copy(c.Events, r.Events)
	return &c
}

// Recorder records input events into registers for playback.
// Install it on a Vi with AddHook; it then sees every handled event.
type Recorder struct {
	mu         sync.Mutex
	recording  bool
	register   rune
	events     []input.Event
	registers  map[rune]*Recording
	lastPlayed rune // Tracks last played register for @@ support
}

// NewRecorder creates a new recorder with empty registers.
func NewRecorder() *Recorder {
	return &Recorder{
		registers: make(map[rune]*Recording),
	}
}

// PostEvent records in while a recording is active. It implements input.Hook.
func (r *Recorder) PostEvent(in input.Event, _ edit.Event) {
	r.Record(in)
}

// StartRecording begins recording to the specified register.
// An upper case letter appends to the lower case register.
func (r *Recorder) StartRecording(register rune) error {
	target := NormalizeRegister(register)
	if target == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return fmt.Errorf("%w to register %c", ErrAlreadyRecording, r.register)
	}

	r.recording = true
	r.register = target
	r.events = nil
	if IsAppendRegister(register) {
		if prev := r.registers[target]; prev != nil {
			r.events = append(r.events, prev.Events...)
		}
	}
	return nil
}

// StopRecording ends the current recording and saves it to the register.
// It returns the saved recording, or nil if not recording or nothing was
// recorded.
func (r *Recorder) StopRecording() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil
	}
	r.recording = false

	events := r.events
	r.events = nil
	if len(events) == 0 {
		return nil
	}

	rec := NewRecording(r.register, events)
	r.registers[r.register] = rec
	return rec.Clone()
}

// IsRecording returns true if currently recording.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// CurrentRegister returns the register being recorded to, or 0 if not recording.
func (r *Recorder) CurrentRegister() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return r.register
	}
	return 0
}

// Record adds an event to the current recording.
// Does nothing if not recording.
func (r *Recorder) Record(ev input.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.events = append(r.events, ev)
	}
}

// Get returns a copy of the recording stored in a register, or nil.
func (r *Recorder) Get(register rune) *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registers[register].Clone()
}

// Set stores a recording in its register, replacing any existing content.
func (r *Recorder) Set(rec *Recording) error {
	if rec == nil || !IsValidRegister(rec.Register) {
		return fmt.Errorf("%w: recording without a valid register", ErrInvalidRegister)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.Len() == 0 {
		delete(r.registers, rec.Register)
		return nil
	}
	r.registers[rec.Register] = rec.Clone()
	return nil
}

// Clear removes a register's recording.
func (r *Recorder) Clear(register rune) error {
	if !IsValidRegister(register) {
		return fmt.Errorf("%w: %q", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.registers, register)
	return nil
}

// ClearAll removes all recordings.
func (r *Recorder) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.registers = make(map[rune]*Recording)
}

// HasRecording returns true if the register holds a recording.
func (r *Recorder) HasRecording(register rune) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registers[register].Len() > 0
}

// Registers returns the registers that hold recordings, in register order.
func (r *Recorder) Registers() []rune {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]rune, 0, len(r.registers))
	for _, reg := range AllRegisters() {
		if r.registers[reg].Len() > 0 {
			result = append(result, reg)
		}
	}
	return result
}

// SetLastPlayed sets the last played register (for @@ support).
func (r *Recorder) SetLastPlayed(register rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastPlayed = register
}

// LastPlayed returns the last played register, or 0 if none was played.
func (r *Recorder) LastPlayed() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastPlayed
}

// CurrentRecordingLength returns the number of events recorded so far.
func (r *Recorder) CurrentRecordingLength() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return 0
	}
	return len(r.events)
}

// All returns copies of all recordings in register order.
// Used for persistence operations.
func (r *Recorder) All() []*Recording {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Recording, 0, len(r.registers))
	for _, reg := range AllRegisters() {
		if rec := r.registers[reg]; rec.Len() > 0 {
			result = append(result, rec.Clone())
		}
	}
	return result
}
