package mode

import "testing"

func TestModeNames(t *testing.T) {
	if Normal.String() != "normal" || Insert.String() != "insert" {
		t.Errorf("unexpected names %q %q", Normal, Insert)
	}
	if Normal.DisplayName() != "NORMAL" || Insert.DisplayName() != "INSERT" {
		t.Error("unexpected display names")
	}
	if Mode(7).String() != "Mode(7)" {
		t.Errorf("expected Mode(7), got %q", Mode(7).String())
	}
}

func TestModeCursorStyle(t *testing.T) {
	if Normal.CursorStyle() != CursorBlock {
		t.Errorf("expected block cursor in normal mode, got %v", Normal.CursorStyle())
	}
	if Insert.CursorStyle() != CursorBar {
		t.Errorf("expected bar cursor in insert mode, got %v", Insert.CursorStyle())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"normal", Normal, false},
		{" INSERT ", Insert, false},
		{"i", Insert, false},
		{"n", Normal, false},
		{"visual", Normal, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
