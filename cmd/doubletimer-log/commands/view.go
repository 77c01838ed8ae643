// Package commands implements the doubletimer-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/feduss/CustomInfiniTime/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	SessionID string
	Slot      *log.Slot
	Category  *log.Category
	Skip      []log.Category
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] tick SLOT CATEGORY Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] tick=%d %-6s %s %s\n",
		ts, log.ShortID(event.SessionID), event.Tick,
		event.Slot.String(), event.Category.String(), event.TypeLabel())

	switch {
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Haptic != nil:
		fmt.Fprintf(w, "  Pulse: %s %dms\n", event.Haptic.Kind, event.Haptic.Duration)
	case event.Power != nil:
		if event.Power.SleepEnabled {
			fmt.Fprintln(w, "  Sleep: enabled")
		} else {
			fmt.Fprintln(w, "  Sleep: disabled")
		}
	case event.Input != nil:
		formatInputDetails(w, event.Input)
	case event.Render != nil:
		fmt.Fprintf(w, "  Display: %02d:%02d (%s)\n",
			event.Render.Minutes, event.Render.Seconds, event.Render.Hint)
	case event.Lifecycle != nil:
		formatLifecycleDetails(w, event)
	}

	fmt.Fprintln(w) // Blank line between events
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
	if sc.Remaining != 0 {
		fmt.Fprintf(w, "  Remaining: %ds\n", sc.Remaining)
	}
}

func formatInputDetails(w io.Writer, in *log.InputEvent) {
	if in.Accepted {
		fmt.Fprintf(w, "  %s accepted\n", in.Action)
		return
	}
	fmt.Fprintf(w, "  %s ignored: %s\n", in.Action, in.Reason)
}

func formatLifecycleDetails(w io.Writer, event log.Event) {
	lc := event.Lifecycle
	fmt.Fprintf(w, "  Phase: %s\n", lc.Phase)
	if event.Flavor != "" {
		fmt.Fprintf(w, "  Flavor: %s\n", event.Flavor)
	}
	if lc.TickRate != 0 {
		fmt.Fprintf(w, "  TickRate: %d Hz\n", lc.TickRate)
	}
	if len(lc.Targets) > 0 {
		fmt.Fprintf(w, "  Targets: %s\n", strings.Join(lc.Targets, ", "))
	}
}

// ParseSlotFlag parses a slot string from command-line flag (case-insensitive).
func ParseSlotFlag(s string) (log.Slot, error) {
	return parseSlot(s)
}

// parseSlot parses a slot string (case-insensitive).
func parseSlot(s string) (log.Slot, error) {
	switch strings.ToLower(s) {
	case "none", "-":
		return log.SlotNone, nil
	case "first", "1":
		return log.SlotFirst, nil
	case "second", "2":
		return log.SlotSecond, nil
	default:
		return 0, fmt.Errorf("invalid slot: %s (must be first, second, or none)", s)
	}
}

// ParseCategoryList parses a comma-separated list of categories.
func ParseCategoryList(s string) ([]log.Category, error) {
	var cats []log.Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := parseCategory(part)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "haptic":
		return log.CategoryHaptic, nil
	case "power":
		return log.CategoryPower, nil
	case "input":
		return log.CategoryInput, nil
	case "render":
		return log.CategoryRender, nil
	case "lifecycle":
		return log.CategoryLifecycle, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be state, haptic, power, input, render, or lifecycle)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		SessionID: filter.SessionID,
		Slot:      filter.Slot,
		Category:  filter.Category,
		Skip:      filter.Skip,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
