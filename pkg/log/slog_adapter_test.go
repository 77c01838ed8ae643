package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func decodeSlogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	if buf.Len() == 0 {
		t.Fatal("no output produced")
	}
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	return entry
}

func TestSlogAdapterLogsStateChange(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Log(Event{
		Timestamp: time.Now(),
		SessionID: "0123456789abcdef",
		Tick:      2048,
		Category:  CategoryState,
		Slot:      SlotFirst,
		StateChange: &StateChangeEvent{
			OldState: "INIT",
			NewState: "RUNNING",
			Reason:   "PLAY",
		},
	})

	entry := decodeSlogLine(t, &buf)
	if entry["session"] != "01234567" {
		t.Errorf("session: got %v, want 01234567", entry["session"])
	}
	if entry["slot"] != "FIRST" {
		t.Errorf("slot: got %v, want FIRST", entry["slot"])
	}
	if entry["new_state"] != "RUNNING" {
		t.Errorf("new_state: got %v, want RUNNING", entry["new_state"])
	}
	if entry["tick"] != float64(2048) {
		t.Errorf("tick: got %v, want 2048", entry["tick"])
	}
}

func TestSlogAdapterLogsHaptic(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Log(Event{
		Category: CategoryHaptic,
		Slot:     SlotSecond,
		Haptic:   &HapticEvent{Kind: HapticWarning, Duration: 90},
	})

	entry := decodeSlogLine(t, &buf)
	if entry["kind"] != "WARNING" {
		t.Errorf("kind: got %v, want WARNING", entry["kind"])
	}
	if entry["duration"] != float64(90) {
		t.Errorf("duration: got %v, want 90", entry["duration"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	NewSlogAdapter(logger).Log(Event{Category: CategoryPower, Power: &PowerEvent{SleepEnabled: true}})
	if buf.Len() != 0 {
		t.Fatalf("debug event written at info level: %s", buf.String())
	}

	NewSlogAdapter(logger).WithLevel(slog.LevelInfo).Log(Event{Category: CategoryPower, Power: &PowerEvent{SleepEnabled: true}})
	entry := decodeSlogLine(t, &buf)
	if entry["sleep_enabled"] != true {
		t.Errorf("sleep_enabled: got %v, want true", entry["sleep_enabled"])
	}
}
