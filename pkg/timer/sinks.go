package timer

// Haptic pulse durations, in motor time units (milliseconds on the
// reference hardware).
const (
	// WarningPulse is the short pulse fired during the last seconds.
	WarningPulse uint32 = 90

	// ExpiryPulse is the long pulse fired once on expiry.
	ExpiryPulse uint32 = 180
)

// HapticSink receives vibration requests. Pulse is fire-and-forget.
type HapticSink interface {
	Pulse(duration uint32)
}

// PowerSink receives host sleep-inhibit requests.
// Both calls are idempotent and fire-and-forget.
type PowerSink interface {
	RequestSleepDisabled()
	RequestSleepEnabled()
}

// RenderSink receives the display of a slot once per refresh.
type RenderSink interface {
	SetTimerDisplay(slot Slot, minutes, seconds uint32, hint ColorHint)
}

// NoopHaptic discards pulses.
type NoopHaptic struct{}

// Pulse does nothing.
func (NoopHaptic) Pulse(uint32) {}

// NoopPower discards sleep requests.
type NoopPower struct{}

// RequestSleepDisabled does nothing.
func (NoopPower) RequestSleepDisabled() {}

// RequestSleepEnabled does nothing.
func (NoopPower) RequestSleepEnabled() {}

// NoopRender discards display updates.
type NoopRender struct{}

// SetTimerDisplay does nothing.
func (NoopRender) SetTimerDisplay(Slot, uint32, uint32, ColorHint) {}

// Compile-time interface satisfaction checks.
var (
	_ HapticSink = NoopHaptic{}
	_ PowerSink  = NoopPower{}
	_ RenderSink = NoopRender{}
)
