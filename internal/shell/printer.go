package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/feduss/CustomInfiniTime/pkg/log"
)

// EventPrinter is a journal logger that prints state changes, pulses,
// sleep requests and ignored input as one line each. Render events are
// skipped.
type EventPrinter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewEventPrinter creates a printer writing to w. A nil w discards output
// until SetOutput is called.
func NewEventPrinter(w io.Writer) *EventPrinter {
	return &EventPrinter{out: w}
}

// SetOutput redirects the printer.
func (p *EventPrinter) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
}

// Log implements log.Logger.
func (p *EventPrinter) Log(ev log.Event) {
	line := formatEvent(ev)
	if line == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out == nil {
		return
	}
	fmt.Fprintf(p.out, "  [%s] %s\n", ev.Slot, line)
}

func formatEvent(ev log.Event) string {
	switch {
	case ev.StateChange != nil:
		sc := ev.StateChange
		return fmt.Sprintf("%s -> %s (%s)", sc.OldState, sc.NewState, sc.Reason)
	case ev.Haptic != nil:
		return fmt.Sprintf("bzz %s %d", ev.Haptic.Kind, ev.Haptic.Duration)
	case ev.Power != nil:
		if ev.Power.SleepEnabled {
			return "sleep enabled"
		}
		return "sleep disabled"
	case ev.Input != nil && !ev.Input.Accepted:
		return fmt.Sprintf("ignored %s: %s", ev.Input.Action, ev.Input.Reason)
	default:
		return ""
	}
}

var _ log.Logger = (*EventPrinter)(nil)
