// Package timer implements the dual timer state engine of the watch face.
//
// The engine owns exactly two slots, First and Second, each an independent
// countdown against a fixed target duration. It converts the host tick
// counter into remaining time on every refresh, detects expiry and drives
// the slot state machines. Side effects are requests to collaborators
// passed in at construction:
//
//   - HapticSink receives vibration pulses
//   - PowerSink receives sleep disable/enable requests
//   - RenderSink receives the text and colour hint of each slot
//
// # Flavors
//
// Two flavors share the engine:
//
//   - Stopwatch: states Init, Running, Halted. Both slots may run at the
//     same time. Stopping halts a slot; a halted slot is reset to its
//     target display on every refresh. No haptic alerts.
//   - Timer: states Init, Running, Expired. At most one slot runs at a time;
//     a press on the other slot is ignored. The last five seconds are shown
//     as a warning with a short pulse at most once per second, and expiry
//     fires one long pulse and freezes the slot at 00:00.
//
// # Slot State Machine
//
//	Init    --play--> Running   (start tick captured)
//	Halted  --play--> Running   (start tick captured)
//	Expired --play--> Running   (start tick captured)
//	Running --stop--> Halted (stopwatch) / Init (timer)
//	Running --refresh, remaining <= 0--> Halted (stopwatch) / Expired (timer)
//	Expired --stop--> Init (timer)
//
// # Sleep Policy
//
// After a play that leaves any slot running, sleep is disabled. A stop
// enables sleep only once both slots have settled: both HALTED in the
// stopwatch flavor, both INIT in the timer flavor. Expiry never enables
// sleep. Close always enables sleep exactly once.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Hosts serialize input and
// refresh on a single goroutine, either their own event loop or Loop.
//
// # Ignored Requests
//
// Play on a running slot, play while the other slot runs (timer flavor) and
// stop on an idle slot are silently ignored. They are recorded in the
// journal as rejected input but never surface as errors.
package timer
