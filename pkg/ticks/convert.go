package ticks

// Count is a raw tick counter value. It wraps at 2^32.
type Count uint32

// Segments is a tick delta decomposed for display.
type Segments struct {
	Minutes      uint32
	Seconds      uint32
	Centiseconds uint32
}

// TotalSeconds returns Minutes*60 + Seconds.
func (s Segments) TotalSeconds() uint32 {
	return s.Minutes*60 + s.Seconds
}

// Elapsed returns now - start modulo 2^32.
func Elapsed(start, now Count) Count {
	return now - start
}

// centis converts a delta to hundredths of a second. The product is taken in
// 64 bits so that large deltas do not overflow before the division.
func centis(delta Count, rate uint32) uint64 {
	return uint64(delta) * 100 / uint64(rate)
}

// ToSeconds converts a tick delta to whole elapsed seconds.
func ToSeconds(delta Count, rate uint32) uint32 {
	return uint32(centis(delta, rate) / 100)
}

// ToSegments converts a tick delta to minutes, seconds and centiseconds.
func ToSegments(delta Count, rate uint32) Segments {
	c := centis(delta, rate)
	return Segments{
		Minutes:      uint32(c / 100 / 60),
		Seconds:      uint32(c / 100 % 60),
		Centiseconds: uint32(c % 100),
	}
}

// FromSeconds returns the number of ticks in the given number of seconds,
// truncated to the counter width.
func FromSeconds(seconds, rate uint32) Count {
	return Count(uint64(seconds) * uint64(rate))
}
