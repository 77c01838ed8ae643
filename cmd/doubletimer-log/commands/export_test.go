package commands

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/feduss/CustomInfiniTime/pkg/log"
)

// createTestLogFile creates a temporary journal file with the given events.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test"+log.FileExt)

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func TestExportToJSONL(t *testing.T) {
	ts := time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)
	events := []log.Event{
		{
			Timestamp: ts,
			SessionID: "abc12345-0000",
			Tick:      1024,
			Flavor:    "TIMER",
			Category:  log.CategoryState,
			Slot:      log.SlotFirst,
			StateChange: &log.StateChangeEvent{
				OldState: "INIT",
				NewState: "RUNNING",
				Reason:   "PLAY",
			},
		},
		{
			Timestamp: ts.Add(time.Second),
			SessionID: "abc12345-0000",
			Tick:      2048,
			Category:  log.CategoryHaptic,
			Slot:      log.SlotFirst,
			Haptic:    &log.HapticEvent{Kind: log.HapticWarning, Duration: 90},
		},
	}

	path := createTestLogFile(t, events)

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	err := RunExport(path, "jsonl", outPath)
	if err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var event1 map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event1); err != nil {
		t.Fatalf("failed to parse line 1: %v", err)
	}
	if event1["SessionID"] != "abc12345-0000" {
		t.Errorf("expected SessionID abc12345-0000, got %v", event1["SessionID"])
	}
	if event1["Tick"] != float64(1024) {
		t.Errorf("expected Tick 1024, got %v", event1["Tick"])
	}
}

func TestExportToCSV(t *testing.T) {
	ts := time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)
	events := []log.Event{
		{
			Timestamp: ts,
			SessionID: "abc12345",
			Tick:      4096,
			Flavor:    "TIMER",
			Category:  log.CategoryInput,
			Slot:      log.SlotSecond,
			Input:     &log.InputEvent{Action: "PLAY", Reason: "other slot running"},
		},
	}

	path := createTestLogFile(t, events)

	outPath := filepath.Join(t.TempDir(), "out.csv")
	err := RunExport(path, "csv", outPath)
	if err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "timestamp" || records[0][7] != "detail" {
		t.Errorf("unexpected header: %v", records[0])
	}

	row := records[1]
	if row[1] != "abc12345" {
		t.Errorf("expected session abc12345, got %s", row[1])
	}
	if row[2] != "4096" {
		t.Errorf("expected tick 4096, got %s", row[2])
	}
	if row[4] != "INPUT" || row[5] != "SECOND" || row[6] != "Input" {
		t.Errorf("unexpected category/slot/type: %v", row[4:7])
	}
	if row[7] != "PLAY ignored: other slot running" {
		t.Errorf("unexpected detail: %s", row[7])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, nil)
	err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out.xml"))
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEventDetail(t *testing.T) {
	tests := []struct {
		name  string
		event log.Event
		want  string
	}{
		{"state", log.Event{StateChange: &log.StateChangeEvent{OldState: "RUNNING", NewState: "EXPIRED", Reason: "EXPIRED"}}, "RUNNING->EXPIRED EXPIRED"},
		{"haptic", log.Event{Haptic: &log.HapticEvent{Kind: log.HapticExpired, Duration: 180}}, "EXPIRED 180"},
		{"power", log.Event{Power: &log.PowerEvent{SleepEnabled: true}}, "sleep enabled"},
		{"input", log.Event{Input: &log.InputEvent{Action: "STOP", Accepted: true}}, "STOP"},
		{"render", log.Event{Render: &log.RenderEvent{Minutes: 1, Seconds: 5, Hint: "WARNING"}}, "01:05 WARNING"},
		{"lifecycle", log.Event{Lifecycle: &log.LifecycleEvent{Phase: "OPEN"}}, "OPEN"},
		{"empty", log.Event{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eventDetail(tt.event); got != tt.want {
				t.Errorf("eventDetail() = %q, want %q", got, tt.want)
			}
		})
	}
}
