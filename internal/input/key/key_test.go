package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyUp, "Up"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyClassification(t *testing.T) {
	if KeyRune.IsSpecial() || KeyNone.IsSpecial() {
		t.Error("rune and none keys should not be special")
	}
	if !KeyEscape.IsSpecial() {
		t.Error("expected Escape to be special")
	}
	if !KeyF5.IsFunctionKey() || KeyUp.IsFunctionKey() {
		t.Error("function key classification is wrong")
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("arrow key classification is wrong")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := map[string]Key{
		"esc":     KeyEscape,
		" Enter ": KeyEnter,
		"PGDN":    KeyPageDown,
		"f10":     KeyF10,
		"bogus":   KeyNone,
	}
	for name, want := range tests {
		if got := KeyFromName(name); got != want {
			t.Errorf("KeyFromName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestCode(t *testing.T) {
	if c := Char('x'); !c.IsRune() || c.Rune != 'x' || c.String() != "x" {
		t.Errorf("unexpected char code %+v", c)
	}
	if c := Char(' '); c.String() != "Space" {
		t.Errorf("expected Space, got %q", c.String())
	}
	if c := Named(KeyEnter); c.IsRune() || c.String() != "Enter" {
		t.Errorf("unexpected named code %+v", c)
	}
	ev := NewRuneEvent('q', ModCtrl)
	if ev.Code() != Char('q') {
		t.Errorf("expected Char('q'), got %+v", ev.Code())
	}
	if NewSpecialEvent(KeyTab, ModShift).Code() != Named(KeyTab) {
		t.Error("expected Named(KeyTab)")
	}
}

func TestModifiers(t *testing.T) {
	m := ModCtrl.With(ModAlt)
	if !m.HasCtrl() || !m.HasAlt() || m.HasShift() {
		t.Errorf("unexpected modifier set %v", m)
	}
	if m.String() != "Ctrl+Alt" {
		t.Errorf("expected Ctrl+Alt, got %q", m.String())
	}
	if m.ShortString() != "C-A" {
		t.Errorf("expected C-A, got %q", m.ShortString())
	}
	if m.Without(ModCtrl) != ModAlt {
		t.Error("Without did not remove Ctrl")
	}
	if !ModNone.IsEmpty() || ModShift.IsEmpty() {
		t.Error("IsEmpty is wrong")
	}
	if ParseModifiers("ctrl+shift") != ModCtrl|ModShift {
		t.Error("ParseModifiers(ctrl+shift) failed")
	}
	if ParseModifiers("C-A") != ModCtrl|ModAlt {
		t.Error("ParseModifiers(C-A) failed")
	}
	if ParseModifiers("none") != ModNone {
		t.Error("ParseModifiers(none) should be empty")
	}
}

func TestEventStrings(t *testing.T) {
	tests := []struct {
		event Event
		str   string
		vim   string
	}{
		{NewRuneEvent('a', ModNone), "a", "a"},
		{NewRuneEvent('A', ModShift), "A", "A"},
		{NewRuneEvent('l', ModCtrl), "C-l", "<C-l>"},
		{NewRuneEvent(' ', ModNone), "Space", "<Space>"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter", "<CR>"},
		{NewSpecialEvent(KeyTab, ModShift), "S-Tab", "<S-Tab>"},
		{NewSpecialEvent(KeyEscape, ModNone), "Escape", "<Esc>"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.event.VimString(); got != tt.vim {
			t.Errorf("VimString() = %q, want %q", got, tt.vim)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	if !NewSpecialEvent(KeyEscape, ModNone).IsEscape() {
		t.Error("expected bare Escape")
	}
	if NewSpecialEvent(KeyEscape, ModAlt).IsEscape() {
		t.Error("Alt+Escape is not a bare Escape")
	}
	if !NewSpecialEvent(KeyEnter, ModNone).IsEnter() {
		t.Error("expected bare Enter")
	}
	if NewRuneEvent('\x01', ModNone).IsChar() {
		t.Error("control character is not printable")
	}
	if !NewRuneEvent('é', ModNone).IsChar() {
		t.Error("expected printable character")
	}
}

func TestCaseFolding(t *testing.T) {
	tests := []struct {
		in, lower, upper rune
	}{
		{'a', 'a', 'A'},
		{'Z', 'z', 'Z'},
		{'$', '$', '$'},
		{'é', 'é', 'é'},
		{'É', 'É', 'É'},
	}

	for _, tt := range tests {
		if got := ToLowerASCII(tt.in); got != tt.lower {
			t.Errorf("ToLowerASCII(%q) = %q, want %q", tt.in, got, tt.lower)
		}
		if got := ToUpperASCII(tt.in); got != tt.upper {
			t.Errorf("ToUpperASCII(%q) = %q, want %q", tt.in, got, tt.upper)
		}
	}

	if got := Char('Q').Lower(); got != Char('q') {
		t.Errorf("Char('Q').Lower() = %v, want q", got)
	}
	if got := Named(KeyEnter).Lower(); got != Named(KeyEnter) {
		t.Errorf("Named(KeyEnter).Lower() = %v, want Enter", got)
	}
}
