package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/feduss/CustomInfiniTime/pkg/log"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output    string
	SessionID string
	TimeStart string
	TimeEnd   string
	Slot      string
	Category  string

	// Flavor keeps events emitted by engines of this flavor.
	Flavor string

	// State keeps state changes that entered this state.
	State string

	// Hint keeps render events drawn with this colour hint.
	Hint string
}

// errStateAndHint is returned when both State and Hint are set. They select
// different event categories, so the result would always be empty.
var errStateAndHint = errors.New("-state and -hint cannot be combined")

// timerMatch narrows journal events by engine semantics.
type timerMatch struct {
	flavor string
	state  string
	hint   string
}

func (m timerMatch) matches(ev log.Event) bool {
	if m.flavor != "" && ev.Flavor != m.flavor {
		return false
	}
	if m.state != "" && (ev.StateChange == nil || ev.StateChange.NewState != m.state) {
		return false
	}
	if m.hint != "" && (ev.Render == nil || ev.Render.Hint != m.hint) {
		return false
	}
	return true
}

func parseTimerMatch(opts FilterOptions) (timerMatch, error) {
	var m timerMatch
	if opts.State != "" && opts.Hint != "" {
		return m, errStateAndHint
	}
	if opts.Flavor != "" {
		f, err := timer.ParseFlavor(opts.Flavor)
		if err != nil {
			return m, err
		}
		m.flavor = f.String()
	}
	if opts.State != "" {
		s, err := timer.ParseState(opts.State)
		if err != nil {
			return m, err
		}
		m.state = s.String()
	}
	if opts.Hint != "" {
		h, err := timer.ParseHint(opts.Hint)
		if err != nil {
			return m, err
		}
		m.hint = h.String()
	}
	return m, nil
}

func parseJournalFilter(opts FilterOptions) (log.Filter, error) {
	filter := log.Filter{SessionID: opts.SessionID}

	for _, bound := range []struct {
		name  string
		value string
		dst   **time.Time
	}{
		{"time-start", opts.TimeStart, &filter.TimeStart},
		{"time-end", opts.TimeEnd, &filter.TimeEnd},
	} {
		if bound.value == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, bound.value)
		if err != nil {
			return filter, fmt.Errorf("invalid %s format: %w", bound.name, err)
		}
		*bound.dst = &t
	}

	if opts.Slot != "" {
		s, err := parseSlot(opts.Slot)
		if err != nil {
			return filter, err
		}
		filter.Slot = &s
	}

	if opts.Category != "" {
		c, err := parseCategory(opts.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// RunFilter copies the events of path that match opts into opts.Output.
func RunFilter(path string, opts FilterOptions) error {
	filter, err := parseJournalFilter(opts)
	if err != nil {
		return err
	}
	match, err := parseTimerMatch(opts)
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	kept := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if !match.matches(event) {
			continue
		}
		logger.Log(event)
		kept++
	}

	fmt.Printf("Filtered %d events to %s\n", kept, opts.Output)
	return nil
}
