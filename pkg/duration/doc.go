// Package duration defines the immutable target duration of a timer slot.
//
// A Duration is configured once, when the watch face is created, and is never
// mutated afterwards. It is expressed in whole minutes and seconds, matching
// what the display shows, and normalized to a total number of seconds for
// the countdown arithmetic.
//
// # Text Form
//
// Targets are written as MM:SS ("01:30") in configuration and scenario
// files. Go duration strings ("90s", "1m30s") are accepted as well and are
// truncated to whole seconds.
//
// # Limits
//
// A target must be at least one second and fit the two-digit minute field of
// the display (at most 99:59).
package duration
