package macro

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/vimode/internal/input"
	"github.com/dshills/vimode/internal/input/key"
)

// persistedEvent is the JSON-serializable form of input.Event.
type persistedEvent struct {
	Type    uint8  `json:"type"`
	Key     uint16 `json:"key,omitempty"`
	Rune    rune   `json:"rune,omitempty"`
	Mods    uint8  `json:"mods,omitempty"`
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
	Buttons uint16 `json:"buttons,omitempty"`
	Width   uint16 `json:"width,omitempty"`
	Height  uint16 `json:"height,omitempty"`
	Text    string `json:"text,omitempty"`
}

// persistedRecording represents a single recording for persistence.
type persistedRecording struct {
	ID       uuid.UUID        `json:"id"`
	Register string           `json:"register,omitempty"`
	Created  time.Time        `json:"created"`
	Events   []persistedEvent `json:"events"`
}

// persistedData is the root structure of a registers file.
type persistedData struct {
	Version    int                  `json:"version"`
	SavedAt    time.Time            `json:"saved_at"`
	LastPlayed string               `json:"last_played,omitempty"`
	Recordings []persistedRecording `json:"recordings"`
}

const currentVersion = 1

func toPersistedEvent(e input.Event) persistedEvent {
	p := persistedEvent{Type: uint8(e.Type)}
	switch e.Type {
	case input.EventKey:
		p.Key = uint16(e.Key.Key)
		p.Rune = e.Key.Rune
		p.Mods = uint8(e.Key.Modifiers)
	case input.EventMouse:
		p.X, p.Y = e.Mouse.X, e.Mouse.Y
		p.Buttons = uint16(e.Mouse.Buttons)
		p.Mods = uint8(e.Mouse.Modifiers)
	case input.EventResize:
		p.Width, p.Height = e.Width, e.Height
	case input.EventPaste:
		p.Text = e.Text
	}
	return p
}

func toInputEvent(p persistedEvent) input.Event {
	switch t := input.EventType(p.Type); t {
	case input.EventKey:
		return input.NewKeyEvent(key.NewEvent(key.Key(p.Key), p.Rune, key.Modifier(p.Mods)))
	case input.EventMouse:
		return input.NewMouseEvent(p.X, p.Y, input.MouseButton(p.Buttons), key.Modifier(p.Mods))
	case input.EventResize:
		return input.NewResizeEvent(p.Width, p.Height)
	case input.EventPaste:
		return input.NewPasteEvent(p.Text)
	default:
		return input.Event{Type: t}
	}
}

func registerString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}

func registerRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func toPersistedRecording(rec *Recording) persistedRecording {
	p := persistedRecording{
		ID:       rec.ID,
		Register: registerString(rec.Register),
		Created:  rec.Created,
		Events:   make([]persistedEvent, len(rec.Events)),
	}
	for i, e := range rec.Events {
		p.Events[i] = toPersistedEvent(e)
	}
	return p
}

func toRecording(p persistedRecording) *Recording {
	rec := &Recording{
		ID:       p.ID,
		Register: registerRune(p.Register),
		Created:  p.Created,
		Events:   make([]input.Event, len(p.Events)),
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	for i, e := range p.Events {
		rec.Events[i] = toInputEvent(e)
	}
	return rec
}

// Encode writes rec as JSON.
func (r *Recording) Encode(w io.Writer) error {
	if r.Len() == 0 {
		return ErrEmptyRecording
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toPersistedRecording(r)); err != nil {
		return fmt.Errorf("failed to marshal recording: %w", err)
	}
	return nil
}

// DecodeRecording reads a recording written by Encode.
func DecodeRecording(rd io.Reader) (*Recording, error) {
	var p persistedRecording
	if err := json.NewDecoder(rd).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recording: %w", err)
	}
	if len(p.Events) == 0 {
		return nil, ErrEmptyRecording
	}
	return toRecording(p), nil
}

// SaveRecording writes rec to path atomically.
func SaveRecording(path string, rec *Recording) error {
	if rec.Len() == 0 {
		return ErrEmptyRecording
	}
	data, err := json.MarshalIndent(toPersistedRecording(rec), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recording: %w", err)
	}
	return writeAtomic(path, data)
}

// LoadRecording reads a recording from path.
func LoadRecording(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	rec, err := DecodeRecording(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Save writes all registers of recorder to path.
func Save(recorder *Recorder, path string) error {
	all := recorder.All()
	data := persistedData{
		Version:    currentVersion,
		SavedAt:    time.Now(),
		LastPlayed: registerString(recorder.LastPlayed()),
		Recordings: make([]persistedRecording, 0, len(all)),
	}
	for _, rec := range all {
		data.Recordings = append(data.Recordings, toPersistedRecording(rec))
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registers: %w", err)
	}
	return writeAtomic(path, jsonData)
}

// Load reads registers from path into recorder, replacing its contents.
// A missing file is not an error.
func Load(recorder *Recorder, path string) error {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read registers file: %w", err)
	}

	var data persistedData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal registers: %w", err)
	}
	if data.Version > currentVersion {
		return fmt.Errorf("unsupported registers file version: %d (max supported: %d)",
			data.Version, currentVersion)
	}

	recorder.ClearAll()
	for _, p := range data.Recordings {
		rec := toRecording(p)
		if !IsValidRegister(rec.Register) {
			continue // Skip invalid registers
		}
		if err := recorder.Set(rec); err != nil {
			return err
		}
	}
	if last := registerRune(data.LastPlayed); IsValidRegister(last) {
		recorder.SetLastPlayed(last)
	}
	return nil
}

// writeAtomic writes data using a temporary file and rename.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
