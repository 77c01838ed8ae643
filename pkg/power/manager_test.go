package power

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestManagerRequests(t *testing.T) {
	m := NewManager(nil)

	if m.SleepInhibited() {
		t.Fatal("SleepInhibited() = true on a new manager")
	}

	m.RequestSleepDisabled()
	m.RequestSleepDisabled()
	if !m.SleepInhibited() {
		t.Error("SleepInhibited() = false after disable")
	}

	m.RequestSleepEnabled()
	if m.SleepInhibited() {
		t.Error("SleepInhibited() = true after enable")
	}

	disabled, enabled := m.Counts()
	if disabled != 2 || enabled != 1 {
		t.Errorf("Counts() = %d, %d, want 2, 1", disabled, enabled)
	}
}

func TestManagerOnChangeFiresOnFlipOnly(t *testing.T) {
	m := NewManager(nil)
	var changes []bool
	m.OnChange(func(inhibited bool) { changes = append(changes, inhibited) })

	m.RequestSleepEnabled()
	m.RequestSleepDisabled()
	m.RequestSleepDisabled()
	m.RequestSleepEnabled()

	if len(changes) != 2 || changes[0] != true || changes[1] != false {
		t.Errorf("changes = %v, want [true false]", changes)
	}
}

func TestManagerLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	m := NewManager(logger)

	m.RequestSleepDisabled()
	m.RequestSleepEnabled()

	out := buf.String()
	if !strings.Contains(out, "sleep disabled") || !strings.Contains(out, "sleep enabled") {
		t.Errorf("log output missing transitions: %q", out)
	}
}
