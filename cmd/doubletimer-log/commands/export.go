package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/feduss/CustomInfiniTime/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "tick", "flavor", "category", "slot", "type", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			strconv.FormatUint(uint64(event.Tick), 10),
			event.Flavor,
			event.Category.String(),
			event.Slot.String(),
			event.TypeLabel(),
			eventDetail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// eventDetail is a one-cell summary of the event payload.
func eventDetail(event log.Event) string {
	switch {
	case event.StateChange != nil:
		sc := event.StateChange
		return fmt.Sprintf("%s->%s %s", sc.OldState, sc.NewState, sc.Reason)
	case event.Haptic != nil:
		return fmt.Sprintf("%s %d", event.Haptic.Kind, event.Haptic.Duration)
	case event.Power != nil:
		if event.Power.SleepEnabled {
			return "sleep enabled"
		}
		return "sleep disabled"
	case event.Input != nil:
		if event.Input.Accepted {
			return event.Input.Action
		}
		return event.Input.Action + " ignored: " + event.Input.Reason
	case event.Render != nil:
		return fmt.Sprintf("%02d:%02d %s", event.Render.Minutes, event.Render.Seconds, event.Render.Hint)
	case event.Lifecycle != nil:
		return event.Lifecycle.Phase
	default:
		return ""
	}
}
