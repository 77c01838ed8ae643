package timer

import (
	"fmt"
	"strings"

	"github.com/feduss/CustomInfiniTime/pkg/log"
)

// Flavor selects the engine behaviour.
type Flavor uint8

const (
	// FlavorStopwatch runs both slots independently without alerts.
	FlavorStopwatch Flavor = iota

	// FlavorTimer runs one slot at a time with warning and expiry alerts.
	FlavorTimer
)

// String returns a human-readable flavor name.
func (f Flavor) String() string {
	switch f {
	case FlavorStopwatch:
		return "STOPWATCH"
	case FlavorTimer:
		return "TIMER"
	default:
		return "UNKNOWN"
	}
}

// ParseFlavor parses a flavor name (case-insensitive).
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stopwatch":
		return FlavorStopwatch, nil
	case "timer":
		return FlavorTimer, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be stopwatch or timer)", ErrInvalidFlavor, s)
	}
}

// State is the state of one slot.
type State uint8

const (
	// StateInit is the idle state showing the configured target.
	StateInit State = iota

	// StateRunning counts down from the captured start tick.
	StateRunning

	// StateHalted is a stopped stopwatch slot.
	StateHalted

	// StateExpired is a timer slot that reached zero.
	StateExpired
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateRunning:
		return "RUNNING"
	case StateHalted:
		return "HALTED"
	case StateExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// Slot identifies one of the two timers.
type Slot uint8

const (
	// SlotFirst is the left timer.
	SlotFirst Slot = iota

	// SlotSecond is the right timer.
	SlotSecond
)

// Slots lists both slots in display order.
var Slots = [2]Slot{SlotFirst, SlotSecond}

// String returns a human-readable slot name.
func (s Slot) String() string {
	switch s {
	case SlotFirst:
		return "FIRST"
	case SlotSecond:
		return "SECOND"
	default:
		return "UNKNOWN"
	}
}

// Other returns the opposite slot.
func (s Slot) Other() Slot {
	if s == SlotFirst {
		return SlotSecond
	}
	return SlotFirst
}

// Valid reports whether s names one of the two slots.
func (s Slot) Valid() bool {
	return s == SlotFirst || s == SlotSecond
}

// journal converts the slot to its journal representation.
func (s Slot) journal() log.Slot {
	return log.Slot(s + 1)
}

// ParseSlot parses "1", "first", "left", "2", "second" or "right".
func ParseSlot(s string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "first", "left":
		return SlotFirst, nil
	case "2", "second", "right":
		return SlotSecond, nil
	default:
		return 0, fmt.Errorf("%w: %q (must be 1 or 2)", ErrInvalidSlot, s)
	}
}

// ColorHint tells the presentation layer how to colour a slot.
type ColorHint uint8

const (
	// HintNormal is the default colour.
	HintNormal ColorHint = iota

	// HintWarning marks the last seconds before expiry.
	HintWarning

	// HintExpired marks an expired slot.
	HintExpired
)

// String returns a human-readable hint name.
func (h ColorHint) String() string {
	switch h {
	case HintNormal:
		return "NORMAL"
	case HintWarning:
		return "WARNING"
	case HintExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// ParseHint parses a colour hint name (case-insensitive).
func ParseHint(s string) (ColorHint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return HintNormal, nil
	case "warning":
		return HintWarning, nil
	case "expired":
		return HintExpired, nil
	default:
		return 0, fmt.Errorf("invalid hint: %q (must be normal, warning or expired)", s)
	}
}

// ParseState parses a state name (case-insensitive).
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "init":
		return StateInit, nil
	case "running":
		return StateRunning, nil
	case "halted":
		return StateHalted, nil
	case "expired":
		return StateExpired, nil
	default:
		return 0, fmt.Errorf("invalid state: %q", s)
	}
}

// Display is what a slot currently shows.
type Display struct {
	Minutes uint32
	Seconds uint32
	Hint    ColorHint
}

// String formats the display as MM:SS.
func (d Display) String() string {
	return fmt.Sprintf("%02d:%02d", d.Minutes, d.Seconds)
}
