package timer

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/feduss/CustomInfiniTime/pkg/duration"
	"github.com/feduss/CustomInfiniTime/pkg/log"
	"github.com/feduss/CustomInfiniTime/pkg/ticks"
)

// Errors returned by New.
var (
	ErrNoClock       = errors.New("timer: clock is required")
	ErrInvalidFlavor = errors.New("timer: invalid flavor")
	ErrInvalidSlot   = errors.New("timer: invalid slot")
)

// Config holds engine configuration.
type Config struct {
	// Flavor selects stopwatch or timer behaviour.
	Flavor Flavor

	// Targets are the countdown targets of the first and second slot.
	// A zero target is replaced by the flavor default.
	Targets [2]duration.Duration

	// Clock provides the tick counter. Required.
	Clock ticks.Clock

	// Haptic, Power and Render receive side effects. Nil sinks discard.
	Haptic HapticSink
	Power  PowerSink
	Render RenderSink

	// Logger receives journal events. Nil disables the journal.
	Logger log.Logger

	// Now supplies journal timestamps. Defaults to time.Now.
	Now func() time.Time

	// SessionID overrides the generated journal session ID.
	SessionID string
}

// slot is the per-timer state owned by the engine.
type slot struct {
	state         State
	target        duration.Duration
	startTick     ticks.Count
	lastBlinkTick ticks.Count
	display       Display
	rendered      bool
}

// Engine drives two countdown slots against a shared clock.
// It is not safe for concurrent use.
type Engine struct {
	flavor    Flavor
	policy    policy
	clock     ticks.Clock
	haptic    HapticSink
	power     PowerSink
	render    RenderSink
	logger    log.Logger
	now       func() time.Time
	sessionID string

	slots  [2]slot
	closed bool
}

// New creates an engine and renders both slots at their targets.
func New(cfg Config) (*Engine, error) {
	if cfg.Clock == nil {
		return nil, ErrNoClock
	}
	p, ok := policies[cfg.Flavor]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFlavor, cfg.Flavor)
	}

	e := &Engine{
		flavor:    cfg.Flavor,
		policy:    p,
		clock:     cfg.Clock,
		haptic:    cfg.Haptic,
		power:     cfg.Power,
		render:    cfg.Render,
		logger:    cfg.Logger,
		now:       cfg.Now,
		sessionID: cfg.SessionID,
	}
	if e.haptic == nil {
		e.haptic = NoopHaptic{}
	}
	if e.power == nil {
		e.power = NoopPower{}
	}
	if e.render == nil {
		e.render = NoopRender{}
	}
	if e.logger == nil {
		e.logger = log.NoopLogger{}
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.sessionID == "" {
		e.sessionID = uuid.NewString()
	}

	targets := make([]string, 0, len(Slots))
	for _, s := range Slots {
		target := cfg.Targets[s]
		if target.IsZero() {
			target = p.defaults[s]
		}
		e.slots[s] = slot{state: StateInit, target: target}
		targets = append(targets, target.String())
	}

	e.emit(e.clock.Now(), log.Event{
		Category: log.CategoryLifecycle,
		Lifecycle: &log.LifecycleEvent{
			Phase:    "OPEN",
			TickRate: e.clock.Rate(),
			Targets:  targets,
		},
	})
	for _, s := range Slots {
		e.resetDisplay(s)
	}
	return e, nil
}

// Flavor returns the engine flavor.
func (e *Engine) Flavor() Flavor {
	return e.flavor
}

// SessionID returns the journal session ID.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Clock returns the engine clock.
func (e *Engine) Clock() ticks.Clock {
	return e.clock
}

// State returns the state of a slot.
func (e *Engine) State(s Slot) State {
	return e.slots[s].state
}

// Display returns what a slot last rendered.
func (e *Engine) Display(s Slot) Display {
	return e.slots[s].display
}

// Target returns the configured target of a slot.
func (e *Engine) Target(s Slot) duration.Duration {
	return e.slots[s].target
}

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool {
	return e.closed
}

// Press toggles a slot: a running slot is stopped, anything else is played.
func (e *Engine) Press(s Slot) {
	if !s.Valid() {
		return
	}
	if e.slots[s].state == StateRunning {
		e.Stop(s)
		return
	}
	e.Play(s)
}

// Play starts a slot. It is ignored when the slot already runs, or in the
// timer flavor when the other slot runs.
func (e *Engine) Play(s Slot) {
	if !s.Valid() {
		return
	}
	now := e.clock.Now()
	if e.closed {
		e.reject(now, s, "PLAY", "engine closed")
		return
	}
	sl := &e.slots[s]
	if sl.state == StateRunning {
		e.reject(now, s, "PLAY", "already running")
		return
	}
	if e.policy.exclusive && e.slots[s.Other()].state == StateRunning {
		e.reject(now, s, "PLAY", "other slot running")
		return
	}

	e.accept(now, s, "PLAY")
	old := sl.state
	sl.state = StateRunning
	sl.startTick = now
	sl.lastBlinkTick = now
	e.stateChanged(now, s, old, "PLAY", int64(sl.target.TotalSeconds()))
	e.resetDisplay(s)

	if e.anyRunning() {
		e.requestSleep(now, false)
	}
}

// Stop stops a running slot, or dismisses an expired one in the timer
// flavor. Other requests are ignored.
func (e *Engine) Stop(s Slot) {
	if !s.Valid() {
		return
	}
	now := e.clock.Now()
	if e.closed {
		e.reject(now, s, "STOP", "engine closed")
		return
	}
	sl := &e.slots[s]
	switch {
	case sl.state == StateRunning:
	case sl.state == StateExpired && e.policy.dismissExpired:
	default:
		e.reject(now, s, "STOP", "not running")
		return
	}

	e.accept(now, s, "STOP")
	old := sl.state
	remaining := int64(0)
	if old == StateRunning {
		remaining = e.remaining(sl, now)
	}
	sl.state = e.policy.stopState
	e.stateChanged(now, s, old, "STOP", remaining)
	if !e.policy.resetIdle {
		e.resetDisplay(s)
	}

	if e.allIn(e.policy.sleepState) {
		e.requestSleep(now, true)
	}
}

// Refresh recomputes every running slot from the clock and renders both
// slots. Call it once per display frame.
func (e *Engine) Refresh() {
	if e.closed {
		return
	}
	now := e.clock.Now()
	for _, s := range Slots {
		sl := &e.slots[s]
		switch {
		case sl.state == StateRunning:
			e.refreshRunning(now, s)
		case e.policy.resetIdle:
			e.resetDisplay(s)
		}
	}
}

// Close stops both slots, re-enables sleep and marks the engine closed.
// Calling Close more than once has no further effect.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	now := e.clock.Now()
	for _, s := range Slots {
		sl := &e.slots[s]
		if sl.state == StateRunning || sl.state == StateExpired {
			old := sl.state
			sl.state = e.policy.stopState
			e.stateChanged(now, s, old, "CLOSE", 0)
		}
	}
	e.closed = true
	e.requestSleep(now, true)
	e.emit(now, log.Event{
		Category:  log.CategoryLifecycle,
		Lifecycle: &log.LifecycleEvent{Phase: "CLOSE"},
	})
}

func (e *Engine) refreshRunning(now ticks.Count, s Slot) {
	sl := &e.slots[s]
	remaining := e.remaining(sl, now)
	if remaining > 0 {
		hint := HintNormal
		if e.policy.alerts && remaining <= WarningSeconds {
			hint = HintWarning
			if ticks.Elapsed(sl.lastBlinkTick, now) >= ticks.Count(e.clock.Rate()) {
				sl.lastBlinkTick = now
				e.pulse(now, s, log.HapticWarning, WarningPulse)
			}
		}
		e.setDisplay(now, s, Display{
			Minutes: uint32(remaining / 60),
			Seconds: uint32(remaining % 60),
			Hint:    hint,
		})
		return
	}

	sl.state = e.policy.expireState
	e.stateChanged(now, s, StateRunning, "EXPIRED", 0)
	e.setDisplay(now, s, Display{Hint: HintExpired})
	if e.policy.alerts {
		e.pulse(now, s, log.HapticExpired, ExpiryPulse)
	}
}

// remaining returns target minus elapsed whole seconds; negative once past
// the target.
func (e *Engine) remaining(sl *slot, now ticks.Count) int64 {
	elapsed := ticks.ToSeconds(ticks.Elapsed(sl.startTick, now), e.clock.Rate())
	return int64(sl.target.TotalSeconds()) - int64(elapsed)
}

func (e *Engine) anyRunning() bool {
	for i := range e.slots {
		if e.slots[i].state == StateRunning {
			return true
		}
	}
	return false
}

// allIn reports whether both slots are in state st.
func (e *Engine) allIn(st State) bool {
	for i := range e.slots {
		if e.slots[i].state != st {
			return false
		}
	}
	return true
}

func (e *Engine) resetDisplay(s Slot) {
	target := e.slots[s].target
	e.setDisplay(e.clock.Now(), s, Display{
		Minutes: target.Minutes,
		Seconds: target.Seconds,
		Hint:    HintNormal,
	})
}

func (e *Engine) setDisplay(now ticks.Count, s Slot, d Display) {
	sl := &e.slots[s]
	changed := !sl.rendered || sl.display != d
	sl.display = d
	sl.rendered = true
	e.render.SetTimerDisplay(s, d.Minutes, d.Seconds, d.Hint)
	if !changed {
		return
	}
	e.emit(now, log.Event{
		Category: log.CategoryRender,
		Slot:     s.journal(),
		Render: &log.RenderEvent{
			Minutes: d.Minutes,
			Seconds: d.Seconds,
			Hint:    d.Hint.String(),
		},
	})
}

func (e *Engine) pulse(now ticks.Count, s Slot, kind log.HapticKind, d uint32) {
	e.haptic.Pulse(d)
	e.emit(now, log.Event{
		Category: log.CategoryHaptic,
		Slot:     s.journal(),
		Haptic:   &log.HapticEvent{Kind: kind, Duration: d},
	})
}

func (e *Engine) requestSleep(now ticks.Count, enabled bool) {
	if enabled {
		e.power.RequestSleepEnabled()
	} else {
		e.power.RequestSleepDisabled()
	}
	e.emit(now, log.Event{
		Category: log.CategoryPower,
		Power:    &log.PowerEvent{SleepEnabled: enabled},
	})
}

func (e *Engine) stateChanged(now ticks.Count, s Slot, old State, reason string, remaining int64) {
	e.emit(now, log.Event{
		Category: log.CategoryState,
		Slot:     s.journal(),
		StateChange: &log.StateChangeEvent{
			OldState:  old.String(),
			NewState:  e.slots[s].state.String(),
			Reason:    reason,
			Remaining: remaining,
		},
	})
}

func (e *Engine) accept(now ticks.Count, s Slot, action string) {
	e.emit(now, log.Event{
		Category: log.CategoryInput,
		Slot:     s.journal(),
		Input:    &log.InputEvent{Action: action, Accepted: true},
	})
}

func (e *Engine) reject(now ticks.Count, s Slot, action, reason string) {
	e.emit(now, log.Event{
		Category: log.CategoryInput,
		Slot:     s.journal(),
		Input:    &log.InputEvent{Action: action, Reason: reason},
	})
}

func (e *Engine) emit(now ticks.Count, ev log.Event) {
	ev.Timestamp = e.now()
	ev.SessionID = e.sessionID
	ev.Tick = uint32(now)
	ev.Flavor = e.flavor.String()
	e.logger.Log(ev)
}
