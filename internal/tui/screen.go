package tui

import "github.com/feduss/CustomInfiniTime/pkg/timer"

// Screen is the render sink of the terminal watch face. It keeps the last
// text and colour the engine produced for each slot.
type Screen struct {
	slots   [2]timer.Display
	renders int
}

// NewScreen creates an empty screen.
func NewScreen() *Screen {
	return &Screen{}
}

// SetTimerDisplay implements timer.RenderSink.
func (s *Screen) SetTimerDisplay(slot timer.Slot, minutes, seconds uint32, hint timer.ColorHint) {
	if !slot.Valid() {
		return
	}
	s.slots[slot] = timer.Display{Minutes: minutes, Seconds: seconds, Hint: hint}
	s.renders++
}

// Slot returns what a slot currently shows.
func (s *Screen) Slot(slot timer.Slot) timer.Display {
	return s.slots[slot]
}

// Renders returns how many display updates were received.
func (s *Screen) Renders() int {
	return s.renders
}

var _ timer.RenderSink = (*Screen)(nil)
