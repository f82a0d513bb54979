// Package ui is the terminal client: it draws the session with tcell and
// turns key presses into game commands.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with the few drawing calls the client needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

// newScreen initializes an existing tcell screen, real or simulated.
func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for the next terminal event. It returns nil once the
// screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a full redraw, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// SetContent sets one cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes str starting at (x, y), clipped to the screen width.
// It returns the column after the last rune written.
func (s *Screen) DrawText(x, y int, str string, style tcell.Style) int {
	w, _ := s.screen.Size()
	for _, r := range str {
		if x >= w {
			break
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}
