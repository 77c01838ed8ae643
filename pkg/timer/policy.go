package timer

import "github.com/feduss/CustomInfiniTime/pkg/duration"

// WarningSeconds is the remaining time at or below which the timer flavor
// shows the warning colour and pulses.
const WarningSeconds = 5

// policy captures everything that differs between the two flavors.
type policy struct {
	// stopState is where a running slot goes on stop.
	stopState State

	// expireState is where a running slot goes when remaining reaches zero.
	expireState State

	// exclusive forbids starting a slot while the other one runs.
	exclusive bool

	// alerts enables warning colour and haptic pulses.
	alerts bool

	// resetIdle re-renders non-running slots to their target on refresh.
	resetIdle bool

	// dismissExpired lets stop move an expired slot back to stopState.
	dismissExpired bool

	// sleepState is the state both slots must be in for stop to
	// re-enable host sleep.
	sleepState State

	// defaults are the targets used when none are configured.
	defaults [2]duration.Duration
}

var policies = map[Flavor]policy{
	FlavorStopwatch: {
		stopState:   StateHalted,
		expireState: StateHalted,
		resetIdle:   true,
		sleepState:  StateHalted,
		defaults: [2]duration.Duration{
			{Minutes: 0, Seconds: 30},
			{Minutes: 1, Seconds: 0},
		},
	},
	FlavorTimer: {
		stopState:      StateInit,
		expireState:    StateExpired,
		exclusive:      true,
		alerts:         true,
		dismissExpired: true,
		sleepState:     StateInit,
		defaults: [2]duration.Duration{
			{Minutes: 1, Seconds: 30},
			{Minutes: 2, Seconds: 30},
		},
	},
}

// DefaultTargets returns the targets a flavor uses when none are configured.
func DefaultTargets(f Flavor) [2]duration.Duration {
	return policies[f].defaults
}
