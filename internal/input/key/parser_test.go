package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"A", NewRuneEvent('A', ModShift)},
		{"$", NewRuneEvent('$', ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"F12", NewSpecialEvent(KeyF12, ModNone)},
		{"Ctrl+L", NewRuneEvent('l', ModCtrl)},
		{"ctrl+alt+x", NewRuneEvent('x', ModCtrl|ModAlt)},
		{"Shift+Tab", NewSpecialEvent(KeyTab, ModShift)},
		{"Ctrl++", NewRuneEvent('+', ModCtrl)},
		{"Ctrl+Left", NewSpecialEvent(KeyLeft, ModCtrl)},
		{"<C-r>", NewRuneEvent('r', ModCtrl)},
		{"<A-f>", NewRuneEvent('f', ModAlt)},
		{"<S-Tab>", NewSpecialEvent(KeyTab, ModShift)},
		{"<CR>", NewSpecialEvent(KeyEnter, ModNone)},
		{"<Esc>", NewSpecialEvent(KeyEscape, ModNone)},
		{"<C-Space>", NewRuneEvent(' ', ModCtrl)},
		{"<lt>", NewRuneEvent('<', ModNone)},
		{"<C-->", NewRuneEvent('-', ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("   "); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("expected ErrEmptySpec, got %v", err)
	}

	for _, spec := range []string{"Hyper+x", "<Q-x>", "notakey", "<>x"} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q): expected ErrInvalidSpec, got %v", spec, err)
		}
	}
}

func TestFormatSpecRoundTrip(t *testing.T) {
	for _, spec := range []string{"x", "X", "<C-l>", "<A-b>", "<S-Tab>", "<CR>", "<Esc>", "<Space>"} {
		ev := MustParse(spec)
		back, err := Parse(FormatSpec(ev))
		if err != nil {
			t.Fatalf("re-parsing %q: %v", FormatSpec(ev), err)
		}
		if back != ev {
			t.Errorf("round trip of %q: got %#v, want %#v", spec, back, ev)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("")
}
