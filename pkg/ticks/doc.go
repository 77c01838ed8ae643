// Package ticks models the host's monotonic tick counter.
//
// The counter is an unsigned 32-bit value that advances at a fixed rate
// (ticks per second) and wraps at 2^32. All elapsed-time arithmetic is done
// modulo the counter width, so a delta computed across a wrap is identical
// to the delta computed without one.
//
// # Conversion
//
// Tick deltas are converted to wall-clock segments through a centisecond
// intermediate:
//
//	centis  = delta * 100 / rate
//	seconds = centis / 100
//
// Truncating once at centisecond precision keeps repeated conversions free
// of rounding drift under integer arithmetic.
//
// # Clocks
//
// A Clock supplies the current count. SystemClock derives it from the
// process monotonic clock; ManualClock is advanced explicitly and is used by
// tests and the scenario runner.
package ticks
