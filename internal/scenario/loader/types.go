// Package loader provides YAML scenario loading for the scenario harness.
package loader

import (
	"fmt"

	"github.com/feduss/CustomInfiniTime/pkg/duration"
)

// Step actions.
const (
	ActionPlay    = "play"
	ActionStop    = "stop"
	ActionPress   = "press"
	ActionAdvance = "advance"
	ActionRefresh = "refresh"
	ActionClose   = "close"
)

// Scenario is a scripted run of the timer engine against a manual clock.
type Scenario struct {
	// ID is the unique scenario identifier (e.g., "SC-TIMER-002").
	ID string `yaml:"id"`

	// Name is a human-readable name.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description"`

	// Flavor is "stopwatch" or "timer".
	Flavor string `yaml:"flavor"`

	// TickRate is the manual clock rate. Zero selects the default rate.
	TickRate uint32 `yaml:"tick_rate,omitempty"`

	// StartTick is the initial clock count.
	StartTick uint32 `yaml:"start_tick,omitempty"`

	// Targets are the first and second slot targets. Missing entries use
	// flavor defaults.
	Targets []duration.Duration `yaml:"targets,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`

	// Tags for categorizing scenarios.
	Tags []string `yaml:"tags,omitempty"`
}

// Step is one action followed by optional expectations.
type Step struct {
	// Action is one of play, stop, press, advance, refresh, close.
	Action string `yaml:"action"`

	// Slot is "1"/"first" or "2"/"second" for play, stop and press.
	// Expectations without a slot prefix also apply to it (default first).
	Slot string `yaml:"slot,omitempty"`

	// Duration is how far advance moves the clock ("85s" or "01:25").
	Duration string `yaml:"duration,omitempty"`

	// Ticks advances the clock by a raw tick count instead of Duration.
	Ticks uint32 `yaml:"ticks,omitempty"`

	// Repeat runs refresh this many times (default 1).
	Repeat int `yaml:"repeat,omitempty"`

	// Expect maps expectation keys to expected values. The nested keys
	// "first" and "second" hold per-slot expectations.
	Expect map[string]interface{} `yaml:"expect,omitempty"`

	// Description explains what this step does.
	Description string `yaml:"description,omitempty"`
}

// LoadError provides details about a scenario loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Step is the 1-based step index where the error occurred (0 if none).
	Step int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Step > 0 {
		msg = fmt.Sprintf("step %d: %s", e.Step, msg)
	}
	if e.Cause != nil {
		msg = msg + ": " + e.Cause.Error()
	}
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
