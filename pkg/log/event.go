package log

import (
	"time"
)

// Event is one journal record. Exactly one of the payload pointers is set,
// matching Category. CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp is the host wall-clock time of the event.
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies one engine lifetime (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Tick is the raw tick count at which the event happened.
	Tick uint32 `cbor:"3,keyasint"`

	// Flavor is the engine flavor name ("STOPWATCH" or "TIMER").
	Flavor string `cbor:"4,keyasint,omitempty"`

	// Category classifies the payload.
	Category Category `cbor:"5,keyasint"`

	// Slot is the timer slot the event concerns, SlotNone for engine-wide events.
	Slot Slot `cbor:"6,keyasint,omitempty"`

	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"`
	Haptic      *HapticEvent      `cbor:"11,keyasint,omitempty"`
	Power       *PowerEvent       `cbor:"12,keyasint,omitempty"`
	Input       *InputEvent       `cbor:"13,keyasint,omitempty"`
	Render      *RenderEvent      `cbor:"14,keyasint,omitempty"`
	Lifecycle   *LifecycleEvent   `cbor:"15,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState is a slot state transition.
	CategoryState Category = 0
	// CategoryHaptic is a vibration pulse request.
	CategoryHaptic Category = 1
	// CategoryPower is a sleep enable/disable request.
	CategoryPower Category = 2
	// CategoryInput is a button press or direct play/stop call.
	CategoryInput Category = 3
	// CategoryRender is a change of the displayed text or colour.
	CategoryRender Category = 4
	// CategoryLifecycle is engine creation or teardown.
	CategoryLifecycle Category = 5
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryHaptic:
		return "HAPTIC"
	case CategoryPower:
		return "POWER"
	case CategoryInput:
		return "INPUT"
	case CategoryRender:
		return "RENDER"
	case CategoryLifecycle:
		return "LIFECYCLE"
	default:
		return "UNKNOWN"
	}
}

// Slot identifies a timer slot in the journal.
type Slot uint8

const (
	// SlotNone marks engine-wide events.
	SlotNone Slot = 0
	// SlotFirst is the left timer.
	SlotFirst Slot = 1
	// SlotSecond is the right timer.
	SlotSecond Slot = 2
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotNone:
		return "-"
	case SlotFirst:
		return "FIRST"
	case SlotSecond:
		return "SECOND"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a slot state transition.
type StateChangeEvent struct {
	OldState string `cbor:"1,keyasint"`
	NewState string `cbor:"2,keyasint"`

	// Reason is what triggered the change (PLAY, STOP, EXPIRED, CLOSE).
	Reason string `cbor:"3,keyasint,omitempty"`

	// Remaining is the remaining whole seconds when the change happened.
	Remaining int64 `cbor:"4,keyasint,omitempty"`
}

// HapticKind distinguishes the two alert pulses.
type HapticKind uint8

const (
	// HapticWarning is the short near-expiry pulse.
	HapticWarning HapticKind = 0
	// HapticExpired is the long expiry pulse.
	HapticExpired HapticKind = 1
)

// String returns the haptic kind name.
func (k HapticKind) String() string {
	switch k {
	case HapticWarning:
		return "WARNING"
	case HapticExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// HapticEvent captures a vibration pulse request.
type HapticEvent struct {
	Kind     HapticKind `cbor:"1,keyasint"`
	Duration uint32     `cbor:"2,keyasint"`
}

// PowerEvent captures a sleep-inhibit request sent to the host.
type PowerEvent struct {
	// SleepEnabled is true for an enable request, false for disable.
	SleepEnabled bool `cbor:"1,keyasint"`
}

// InputEvent captures a user request and whether the engine acted on it.
type InputEvent struct {
	// Action is PRESS, PLAY or STOP.
	Action string `cbor:"1,keyasint"`

	// Accepted is false when the request was silently ignored.
	Accepted bool `cbor:"2,keyasint"`

	// Reason explains an ignored request.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// RenderEvent captures a change of a slot's display.
type RenderEvent struct {
	Minutes uint32 `cbor:"1,keyasint"`
	Seconds uint32 `cbor:"2,keyasint"`
	Hint    string `cbor:"3,keyasint"`
}

// LifecycleEvent captures engine creation and teardown.
type LifecycleEvent struct {
	// Phase is OPEN or CLOSE.
	Phase string `cbor:"1,keyasint"`

	// TickRate is the clock rate in ticks per second (OPEN only).
	TickRate uint32 `cbor:"2,keyasint,omitempty"`

	// Targets are the configured slot targets as MM:SS (OPEN only).
	Targets []string `cbor:"3,keyasint,omitempty"`
}

// TypeLabel returns a short label for the payload carried by the event.
func (e Event) TypeLabel() string {
	switch {
	case e.StateChange != nil:
		return "State"
	case e.Haptic != nil:
		return "Haptic"
	case e.Power != nil:
		return "Power"
	case e.Input != nil:
		return "Input"
	case e.Render != nil:
		return "Render"
	case e.Lifecycle != nil:
		return "Lifecycle"
	default:
		return "Unknown"
	}
}
