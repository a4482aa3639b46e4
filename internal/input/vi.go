package input

import (
	"strings"

	"github.com/dshills/vimode/internal/edit"
	"github.com/dshills/vimode/internal/input/key"
	"github.com/dshills/vimode/internal/input/keymap"
	"github.com/dshills/vimode/internal/input/mode"
	"github.com/dshills/vimode/internal/input/vim"
	"github.com/dshills/vimode/internal/logging"
)

// viState is the mutable state of one interpreter.
type viState struct {
	mode mode.Mode

	// cache holds the keys of a pending Normal mode sequence.
	cache []rune

	// seqCompleted is false while a sequence is pending; every character
	// then goes to the grammar, bypassing the Normal table.
	seqCompleted bool

	// vim holds the character search memory and the repeatable event.
	vim vim.State
}

func newViState(m mode.Mode) viState {
	return viState{
		mode:         m,
		cache:        make([]rune, 0, 8),
		seqCompleted: true,
	}
}

// Vi translates raw input events into edit events following vi's modal
// editing rules.
//
// Vi is not safe for concurrent use. Handle must be called from a single
// goroutine, one event at a time.
type Vi struct {
	normal *keymap.Keybindings
	insert *keymap.Keybindings

	initialMode mode.Mode
	state       viState

	hooks      []hookEntry
	nextHookID uint64
	stats      Stats
	logger     *logging.Logger
}

// Option configures a Vi.
type Option func(*Vi)

// WithKeybindings replaces the default Insert and Normal tables.
// A nil table keeps the default for that mode.
func WithKeybindings(insert, normal *keymap.Keybindings) Option {
	return func(v *Vi) {
		if insert != nil {
			v.insert = insert
		}
		if normal != nil {
			v.normal = normal
		}
	}
}

// WithLogger sets the logger. Parse outcomes and mode switches are logged
// at debug level.
func WithLogger(l *logging.Logger) Option {
	return func(v *Vi) {
		if l != nil {
			v.logger = l.WithComponent("vi")
		}
	}
}

// WithMode sets the starting mode. The default is Insert.
func WithMode(m mode.Mode) Option {
	return func(v *Vi) {
		v.initialMode = m
	}
}

// WithHook registers a hook at construction.
func WithHook(h Hook) Option {
	return func(v *Vi) {
		v.AddHook(h)
	}
}

// NewVi creates an interpreter with the default keybindings, changed by opts.
func NewVi(opts ...Option) *Vi {
	v := &Vi{
		normal:      keymap.DefaultNormal(),
		insert:      keymap.DefaultInsert(),
		initialMode: mode.Insert,
		logger:      logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.state = newViState(v.initialMode)
	return v
}

// DefaultVi creates an interpreter with the default keybindings.
func DefaultVi() *Vi {
	return NewVi()
}

// Handle processes one input event and returns the resulting edit event,
// which is edit.None() when the event has no effect.
func (v *Vi) Handle(ev Event) edit.Event {
	v.stats.recordInput(ev)

	var out edit.Event
	switch ev.Type {
	case EventKey:
		out = v.handleKey(ev.Key)
	case EventMouse:
		out = edit.Notify(edit.KindMouse)
	case EventResize:
		out = edit.Resize(ev.Width, ev.Height)
	case EventPaste:
		out = edit.Edit(edit.InsertString(normalizeNewlines(ev.Text)))
	default:
		out = edit.None()
	}

	v.stats.recordOutput(out)
	for _, e := range v.hooks {
		e.hook.PostEvent(ev, out)
	}
	return out
}

// handleKey routes a key press. The order of the cases decides whether a
// direct binding or the command grammar wins.
func (v *Vi) handleKey(k key.Event) edit.Event {
	mods := k.Modifiers

	switch {
	case k.Key == key.KeyRune && v.state.mode == mode.Normal:
		return v.normalChar(mods, k.Rune)
	case k.Key == key.KeyRune:
		return v.insertChar(mods, k.Rune)
	case k.Key == key.KeyEscape && mods == key.ModNone:
		return v.escape()
	case k.Key == key.KeyEnter && mods == key.ModNone:
		v.clearCache()
		v.setMode(mode.Insert)
		return edit.Notify(edit.KindEnter)
	}

	if bound, ok := v.table().Find(mods, k.Code()); ok {
		return bound
	}
	return edit.None()
}

// normalChar handles a character in Normal mode.
func (v *Vi) normalChar(mods key.Modifier, r rune) edit.Event {
	c := key.ToLowerASCII(r)
	bound, hasBinding := v.normal.Find(mods, key.Char(c))

	plain := mods == key.ModNone || mods == key.ModShift
	if v.state.seqCompleted && (hasBinding || !plain) {
		if hasBinding {
			return bound
		}
		return edit.None()
	}

	if mods == key.ModShift {
		c = key.ToUpperASCII(c)
	}
	v.state.cache = append(v.state.cache, c)

	res := vim.Parse(v.state.cache)
	v.state.seqCompleted = res.Status != vim.StatusIncomplete

	if !res.IsValid() {
		v.stats.SequencesInvalid++
		v.logger.Debug("invalid sequence %q", string(v.state.cache))
		v.clearCache()
		return edit.None()
	}
	if !res.IsComplete() {
		return edit.None()
	}

	cmd := res.Command
	v.stats.SequencesCompleted++
	events := vim.Lower(cmd, &v.state.vim)
	v.logger.Debug("command %q lowered to %d events", cmd.String(), len(events))
	v.clearCache()

	// A command with nothing to do leaves the mode alone.
	if cmd.EntersInsert() && len(events) > 0 {
		v.setMode(mode.Insert)
	}
	return edit.Combine(events)
}

// insertChar handles a character in Insert mode.
func (v *Vi) insertChar(mods key.Modifier, r rune) edit.Event {
	c := r
	if mods != key.ModNone {
		// Composed input (AltGr, dead keys) must not read as upper case
		c = key.ToLowerASCII(r)
	}

	if bound, ok := v.insert.Find(mods, key.Char(c)); ok {
		return bound
	}

	switch mods {
	case key.ModNone, key.ModShift, key.ModCtrl | key.ModAlt, key.ModCtrl | key.ModAlt | key.ModShift:
		if mods == key.ModShift {
			c = key.ToUpperASCII(c)
		}
		return edit.Edit(edit.InsertChar(c))
	default:
		return edit.None()
	}
}

// escape clears any pending sequence and leaves Insert mode.
func (v *Vi) escape() edit.Event {
	v.clearCache()

	events := make([]edit.Event, 0, 3)
	if v.state.mode == mode.Insert {
		events = append(events, edit.Notify(edit.KindLeft))
		v.setMode(mode.Normal)
	}
	events = append(events, edit.Notify(edit.KindEsc), edit.Notify(edit.KindRepaint))
	return edit.Multiple(events...)
}

func (v *Vi) clearCache() {
	v.state.cache = v.state.cache[:0]
	v.state.seqCompleted = true
}

func (v *Vi) setMode(m mode.Mode) {
	if v.state.mode == m {
		return
	}
	v.logger.Debug("mode %s -> %s", v.state.mode, m)
	v.stats.ModeSwitches++
	v.state.mode = m
}

// table returns the keybindings of the active mode.
func (v *Vi) table() *keymap.Keybindings {
	if v.state.mode == mode.Normal {
		return v.normal
	}
	return v.insert
}

// Mode returns the current mode.
func (v *Vi) Mode() mode.Mode {
	return v.state.mode
}

// EditMode returns the prompt indicator for the current mode.
func (v *Vi) EditMode() string {
	return v.state.mode.DisplayName()
}

// Pending returns the keys of the pending Normal mode sequence.
func (v *Vi) Pending() string {
	return string(v.state.cache)
}

// LastCharSearch returns the remembered find/till motion, if any.
func (v *Vi) LastCharSearch() (vim.CharSearch, bool) {
	if v.state.vim.CharSearch == nil {
		return vim.CharSearch{}, false
	}
	return *v.state.vim.CharSearch, true
}

// Keybindings returns the table of mode m. Changes to it take effect on the
// next event.
func (v *Vi) Keybindings(m mode.Mode) *keymap.Keybindings {
	if m == mode.Normal {
		return v.normal
	}
	return v.insert
}

// SetKeybindings replaces both tables. A nil table is left unchanged.
func (v *Vi) SetKeybindings(insert, normal *keymap.Keybindings) {
	WithKeybindings(insert, normal)(v)
}

// Bind adds or replaces a binding in the table of mode m.
func (v *Vi) Bind(m mode.Mode, mods key.Modifier, code key.Code, ev edit.Event) {
	v.Keybindings(m).Bind(mods, code, ev)
}

// Unbind removes a binding from the table of mode m.
func (v *Vi) Unbind(m mode.Mode, mods key.Modifier, code key.Code) bool {
	return v.Keybindings(m).Remove(mods, code)
}

// AddHook registers a hook and returns a function that unregisters it.
func (v *Vi) AddHook(h Hook) (remove func()) {
	v.nextHookID++
	id := v.nextHookID
	v.hooks = append(v.hooks, hookEntry{id: id, hook: h})

	return func() {
		for i, e := range v.hooks {
			if e.id == id {
				v.hooks = append(v.hooks[:i], v.hooks[i+1:]...)
				return
			}
		}
	}
}

// Stats returns the counters collected so far.
func (v *Vi) Stats() Stats {
	return v.stats
}

// Reset returns to the starting mode and forgets the pending sequence, the
// character search and the repeatable event. Keybindings are kept.
func (v *Vi) Reset() {
	v.state = newViState(v.initialMode)
}

// normalizeNewlines converts CRLF and bare CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
