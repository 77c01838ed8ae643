package ticks

import (
	"errors"
	"sync/atomic"
	"time"
)

// DefaultRate is the tick rate of the reference hardware (configTICK_RATE_HZ).
const DefaultRate uint32 = 1024

// ErrInvalidRate is returned when a clock is created with a zero rate.
var ErrInvalidRate = errors.New("tick rate must be positive")

// Clock supplies the current tick count.
// Implementations must be safe to read from any goroutine.
type Clock interface {
	// Now returns the current tick count.
	Now() Count

	// Rate returns the fixed number of ticks per second.
	Rate() uint32
}

// SystemClock derives ticks from the process monotonic clock.
type SystemClock struct {
	rate   uint32
	offset Count
	epoch  time.Time
	since  func(time.Time) time.Duration
}

// NewSystemClock creates a clock ticking at rate, starting at offset.
// A non-zero offset lets a host exercise counter wraparound early.
func NewSystemClock(rate uint32, offset Count) (*SystemClock, error) {
	if rate == 0 {
		return nil, ErrInvalidRate
	}
	return &SystemClock{
		rate:   rate,
		offset: offset,
		epoch:  time.Now(),
		since:  time.Since,
	}, nil
}

// Now returns the current tick count.
func (c *SystemClock) Now() Count {
	d := c.since(c.epoch)
	n := uint64(d) / uint64(time.Second) * uint64(c.rate)
	n += uint64(d) % uint64(time.Second) * uint64(c.rate) / uint64(time.Second)
	return c.offset + Count(n)
}

// Rate returns ticks per second.
func (c *SystemClock) Rate() uint32 {
	return c.rate
}

// ManualClock is a Clock that only moves when told to.
// It is safe for concurrent use.
type ManualClock struct {
	rate uint32
	now  atomic.Uint32
}

// NewManualClock creates a manual clock at the given start count.
func NewManualClock(rate uint32, start Count) (*ManualClock, error) {
	if rate == 0 {
		return nil, ErrInvalidRate
	}
	c := &ManualClock{rate: rate}
	c.now.Store(uint32(start))
	return c, nil
}

// Now returns the current tick count.
func (c *ManualClock) Now() Count {
	return Count(c.now.Load())
}

// Rate returns ticks per second.
func (c *ManualClock) Rate() uint32 {
	return c.rate
}

// Set moves the clock to an absolute count.
func (c *ManualClock) Set(n Count) {
	c.now.Store(uint32(n))
}

// AdvanceTicks moves the clock forward by n ticks, wrapping at 2^32.
func (c *ManualClock) AdvanceTicks(n Count) Count {
	return Count(c.now.Add(uint32(n)))
}

// Advance moves the clock forward by d, truncated to whole ticks.
func (c *ManualClock) Advance(d time.Duration) Count {
	if d <= 0 {
		return c.Now()
	}
	n := uint64(d) / uint64(time.Second) * uint64(c.rate)
	n += uint64(d) % uint64(time.Second) * uint64(c.rate) / uint64(time.Second)
	return c.AdvanceTicks(Count(n))
}

// Compile-time interface satisfaction checks.
var (
	_ Clock = (*SystemClock)(nil)
	_ Clock = (*ManualClock)(nil)
)
