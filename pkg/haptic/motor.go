package haptic

import (
	"sync"
	"time"
)

// DefaultUnit is the wall-clock length of one pulse unit.
const DefaultUnit = time.Millisecond

// Buzzer renders a pulse as something the user can perceive.
type Buzzer interface {
	Buzz(d time.Duration)
}

// Pulse is one recorded vibration request.
type Pulse struct {
	At       time.Time
	Duration uint32
}

// Motor is a haptic sink that records pulses.
// It is safe for concurrent use.
type Motor struct {
	mu sync.Mutex

	unit        time.Duration
	now         func() time.Time
	buzzer      Buzzer
	onPulse     func(Pulse)
	pulses      []Pulse
	activeUntil time.Time
}

// NewMotor creates a motor where one pulse unit lasts unit.
// A non-positive unit selects DefaultUnit.
func NewMotor(unit time.Duration) *Motor {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return &Motor{
		unit: unit,
		now:  time.Now,
	}
}

// SetBuzzer attaches a buzzer that plays every subsequent pulse.
func (m *Motor) SetBuzzer(b Buzzer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buzzer = b
}

// SetClock replaces the wall clock used to timestamp pulses.
func (m *Motor) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// OnPulse sets a callback invoked after every pulse.
func (m *Motor) OnPulse(fn func(Pulse)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onPulse = fn
}

// Pulse vibrates for d units. Overlapping pulses extend the active window.
func (m *Motor) Pulse(d uint32) {
	m.mu.Lock()
	p := Pulse{At: m.now(), Duration: d}
	m.pulses = append(m.pulses, p)
	if end := p.At.Add(time.Duration(d) * m.unit); end.After(m.activeUntil) {
		m.activeUntil = end
	}
	buzzer := m.buzzer
	cb := m.onPulse
	unit := m.unit
	m.mu.Unlock()

	if buzzer != nil {
		buzzer.Buzz(time.Duration(d) * unit)
	}
	if cb != nil {
		cb(p)
	}
}

// Active reports whether the motor is vibrating at now.
func (m *Motor) Active(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return now.Before(m.activeUntil)
}

// Pulses returns a copy of all recorded pulses.
func (m *Motor) Pulses() []Pulse {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Pulse, len(m.pulses))
	copy(out, m.pulses)
	return out
}

// Count returns how many pulses of exactly d units were recorded.
func (m *Motor) Count(d uint32) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.pulses {
		if p.Duration == d {
			n++
		}
	}
	return n
}

// Reset forgets recorded pulses and stops vibrating.
func (m *Motor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pulses = nil
	m.activeUntil = time.Time{}
}
