package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeDecodeStateChange(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	event := Event{
		Timestamp: ts,
		SessionID: "6f1c2a9e-0000-4000-8000-000000000001",
		Tick:      4294967000,
		Flavor:    "TIMER",
		Category:  CategoryState,
		Slot:      SlotSecond,
		StateChange: &StateChangeEvent{
			OldState:  "RUNNING",
			NewState:  "EXPIRED",
			Reason:    "EXPIRED",
			Remaining: 0,
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !got.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v (nanosecond precision)", got.Timestamp, ts)
	}
	if got.Tick != event.Tick {
		t.Errorf("Tick = %d, want %d", got.Tick, event.Tick)
	}
	if got.Slot != SlotSecond {
		t.Errorf("Slot = %v, want SECOND", got.Slot)
	}
	if got.StateChange == nil || got.StateChange.NewState != "EXPIRED" {
		t.Fatalf("StateChange = %+v, want NewState EXPIRED", got.StateChange)
	}
	if got.Haptic != nil || got.Power != nil || got.Input != nil {
		t.Error("unset payloads should decode as nil")
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Unix(1700000000, 0).UTC(),
		SessionID: "abc",
		Category:  CategoryHaptic,
		Slot:      SlotFirst,
		Haptic:    &HapticEvent{Kind: HapticExpired, Duration: 180},
	}

	a, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	b, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("canonical encoding produced different bytes for the same event")
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)

	for i, cat := range []Category{CategoryInput, CategoryPower, CategoryRender} {
		ev := Event{Tick: uint32(i), Category: cat}
		if err := enc.Encode(ev); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i, want := range []Category{CategoryInput, CategoryPower, CategoryRender} {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("Decode %d failed: %v", i, err)
		}
		if ev.Category != want || ev.Tick != uint32(i) {
			t.Errorf("event %d = (%v, %d), want (%v, %d)", i, ev.Category, ev.Tick, want, i)
		}
	}
}

func TestStringers(t *testing.T) {
	if CategoryLifecycle.String() != "LIFECYCLE" {
		t.Errorf("CategoryLifecycle.String() = %q", CategoryLifecycle.String())
	}
	if Category(99).String() != "UNKNOWN" {
		t.Errorf("Category(99).String() = %q", Category(99).String())
	}
	if SlotNone.String() != "-" || SlotFirst.String() != "FIRST" {
		t.Errorf("slot names = %q, %q", SlotNone.String(), SlotFirst.String())
	}
	if HapticWarning.String() != "WARNING" {
		t.Errorf("HapticWarning.String() = %q", HapticWarning.String())
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{Event{StateChange: &StateChangeEvent{}}, "State"},
		{Event{Haptic: &HapticEvent{}}, "Haptic"},
		{Event{Power: &PowerEvent{}}, "Power"},
		{Event{Input: &InputEvent{}}, "Input"},
		{Event{Render: &RenderEvent{}}, "Render"},
		{Event{Lifecycle: &LifecycleEvent{}}, "Lifecycle"},
		{Event{}, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.event.TypeLabel(); got != tt.want {
			t.Errorf("TypeLabel() = %q, want %q", got, tt.want)
		}
	}
}
