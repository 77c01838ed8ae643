package haptic

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBuzzer struct {
	mu     sync.Mutex
	buzzes []time.Duration
}

func (b *fakeBuzzer) Buzz(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buzzes = append(b.buzzes, d)
}

func TestMotorRecordsPulses(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := NewMotor(0)
	m.SetClock(func() time.Time { return base })

	m.Pulse(90)
	m.Pulse(180)
	m.Pulse(90)

	pulses := m.Pulses()
	require.Len(t, pulses, 3)
	assert.Equal(t, Pulse{At: base, Duration: 90}, pulses[0])
	assert.Equal(t, 2, m.Count(90))
	assert.Equal(t, 1, m.Count(180))
	assert.Equal(t, 0, m.Count(1))
}

func TestMotorActiveWindow(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := NewMotor(time.Millisecond)
	m.SetClock(func() time.Time { return base })

	assert.False(t, m.Active(base))

	m.Pulse(90)
	assert.True(t, m.Active(base))
	assert.True(t, m.Active(base.Add(89*time.Millisecond)))
	assert.False(t, m.Active(base.Add(90*time.Millisecond)))

	// A shorter pulse does not shorten the window.
	m.Pulse(10)
	assert.True(t, m.Active(base.Add(50*time.Millisecond)))
}

func TestMotorBuzzerAndCallback(t *testing.T) {
	m := NewMotor(2 * time.Millisecond)
	b := &fakeBuzzer{}
	m.SetBuzzer(b)

	var got []Pulse
	m.OnPulse(func(p Pulse) { got = append(got, p) })

	m.Pulse(180)

	require.Len(t, b.buzzes, 1)
	assert.Equal(t, 360*time.Millisecond, b.buzzes[0])
	require.Len(t, got, 1)
	assert.Equal(t, uint32(180), got[0].Duration)
}

func TestMotorReset(t *testing.T) {
	m := NewMotor(0)
	m.Pulse(90)
	m.Reset()

	assert.Empty(t, m.Pulses())
	assert.False(t, m.Active(time.Now()))
}

func TestMotorConcurrentPulses(t *testing.T) {
	m := NewMotor(0)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Pulse(90)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, m.Count(90))
}
