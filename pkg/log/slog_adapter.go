package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes journal events to an slog.Logger.
// Useful during development when the events should show up on the console.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a SlogAdapter that writes at Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// WithLevel returns a copy of the adapter logging at the given level.
func (a *SlogAdapter) WithLevel(level slog.Level) *SlogAdapter {
	return &SlogAdapter{logger: a.logger, level: level}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", ShortID(event.SessionID)),
		slog.Uint64("tick", uint64(event.Tick)),
		slog.String("category", event.Category.String()),
	}

	if event.Slot != SlotNone {
		attrs = append(attrs, slog.String("slot", event.Slot.String()))
	}

	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Haptic != nil:
		attrs = append(attrs,
			slog.String("kind", event.Haptic.Kind.String()),
			slog.Uint64("duration", uint64(event.Haptic.Duration)),
		)
	case event.Power != nil:
		attrs = append(attrs, slog.Bool("sleep_enabled", event.Power.SleepEnabled))
	case event.Input != nil:
		attrs = append(attrs,
			slog.String("action", event.Input.Action),
			slog.Bool("accepted", event.Input.Accepted),
		)
		if event.Input.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.Input.Reason))
		}
	case event.Render != nil:
		attrs = append(attrs,
			slog.Uint64("minutes", uint64(event.Render.Minutes)),
			slog.Uint64("seconds", uint64(event.Render.Seconds)),
			slog.String("hint", event.Render.Hint),
		)
	case event.Lifecycle != nil:
		attrs = append(attrs, slog.String("phase", event.Lifecycle.Phase))
		if event.Flavor != "" {
			attrs = append(attrs, slog.String("flavor", event.Flavor))
		}
	}

	a.logger.LogAttrs(context.Background(), a.level, "engine", attrs...)
}

// ShortID returns the first 8 characters of a session ID.
func ShortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
