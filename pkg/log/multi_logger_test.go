package log

import "testing"

type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.events = append(c.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &captureLogger{}
	b := &captureLogger{}

	m := NewMultiLogger(a, nil, b)
	m.Log(Event{SessionID: "x"})
	m.Log(Event{SessionID: "y"})

	if len(a.events) != 2 || len(b.events) != 2 {
		t.Fatalf("got %d and %d events, want 2 each", len(a.events), len(b.events))
	}
	if b.events[1].SessionID != "y" {
		t.Errorf("second event = %q, want y", b.events[1].SessionID)
	}
}

func TestFilterLoggerDropsRender(t *testing.T) {
	var kept []Category
	next := LoggerFunc(func(ev Event) { kept = append(kept, ev.Category) })

	f := NewFilterLogger(next, Filter{Skip: []Category{CategoryRender}})
	f.Log(Event{Category: CategoryState})
	f.Log(Event{Category: CategoryRender})
	f.Log(Event{Category: CategoryRender})
	f.Log(Event{Category: CategoryHaptic})

	if len(kept) != 2 || kept[0] != CategoryState || kept[1] != CategoryHaptic {
		t.Errorf("kept = %v, want [STATE HAPTIC]", kept)
	}
}

func TestFilterLoggerBySlot(t *testing.T) {
	c := &captureLogger{}
	slot := SlotSecond

	f := NewFilterLogger(c, Filter{Slot: &slot})
	f.Log(Event{Slot: SlotFirst})
	f.Log(Event{Slot: SlotSecond})
	f.Log(Event{Slot: SlotNone})

	if len(c.events) != 1 || c.events[0].Slot != SlotSecond {
		t.Errorf("events = %+v, want one SECOND event", c.events)
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{})
}
