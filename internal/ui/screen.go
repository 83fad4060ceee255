// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a screen on the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s and wraps it. Tests pass a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// SetString writes str starting at (x, y), one rune per column.
func (s *Screen) SetString(x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, style)
		x++
	}
}

// Interrupt wakes PollEvent with an *tcell.EventInterrupt. Safe to call from
// any goroutine.
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Content returns the rune and style stored at (x, y).
func (s *Screen) Content(x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.screen.GetContent(x, y)
	return r, style
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
