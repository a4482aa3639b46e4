// Package terminal connects a tcell screen to the vi interpreter: it turns
// terminal events into input events and draws a few lines of status text.
package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimode/internal/input"
	"github.com/dshills/vimode/internal/input/mode"
)

// Screen wraps a tcell screen.
type Screen struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewScreen creates a screen on the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// NewScreenFrom wraps an existing tcell screen, such as a simulation screen.
func NewScreenFrom(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init initializes the terminal with mouse, bracketed paste and focus
// reporting enabled.
func (s *Screen) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.EnablePaste()
	s.screen.EnableFocus()
	return nil
}

// Fini restores the terminal. PollEvent returns nil afterwards, which ends
// the Events loop.
func (s *Screen) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Fini()
}

// Size returns the screen size in cells.
func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.screen.Size()
}

// Events converts terminal events until ctx is done or the screen is
// finalized, then closes the returned channel.
func (s *Screen) Events(ctx context.Context) <-chan input.Event {
	out := make(chan input.Event, 16)
	go func() {
		defer close(out)
		conv := NewConverter()
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			in, ok := conv.Convert(ev)
			if !ok {
				continue
			}
			select {
			case out <- in:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// DrawLines clears the screen and writes lines from the top left.
func (s *Screen) DrawLines(lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	width, height := s.screen.Size()
	style := tcell.StyleDefault
	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			s.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
	s.screen.Show()
}

// SetCursor places the cursor and sets its shape.
func (s *Screen) SetCursor(x, y int, style mode.CursorStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tcellStyle := tcell.CursorStyleSteadyBlock
	if style == mode.CursorBar {
		tcellStyle = tcell.CursorStyleSteadyBar
	}
	s.screen.SetCursorStyle(tcellStyle)
	s.screen.ShowCursor(x, y)
	s.screen.Show()
}

// Beep rings the terminal bell, if supported.
func (s *Screen) Beep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.screen.Beep() // best-effort; terminal may not support beep
}
