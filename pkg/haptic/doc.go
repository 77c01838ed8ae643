// Package haptic provides the vibration motor used by the timer engine.
//
// Motor records every pulse it receives and reports whether it is still
// vibrating at a given instant, which hosts without a real motor use to
// draw an indicator. An optional Buzzer turns each pulse into sound; the
// Speaker buzzer plays a square-wave tone on the default audio device.
package haptic
