package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/feduss/CustomInfiniTime/pkg/log"
)

// Stats holds aggregate statistics about a journal file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	EventsBySlot     map[log.Slot]int
	Sessions         map[string]*SessionStats
	WarningPulses    int
	ExpiryPulses     int
	Ignored          int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single engine session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Flavor    string
	Plays     int
	Expiries  int
	Closed    bool
}

// RunStats analyzes the journal file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		EventsBySlot:     make(map[log.Slot]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		stats.EventsBySlot[event.Slot]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Flavor != "" && sess.Flavor == "" {
			sess.Flavor = event.Flavor
		}

		switch {
		case event.StateChange != nil:
			switch event.StateChange.Reason {
			case "PLAY":
				sess.Plays++
			case "EXPIRED":
				sess.Expiries++
			}
		case event.Haptic != nil:
			if event.Haptic.Kind == log.HapticExpired {
				stats.ExpiryPulses++
			} else {
				stats.WarningPulses++
			}
		case event.Input != nil:
			if !event.Input.Accepted {
				stats.Ignored++
			}
		case event.Lifecycle != nil:
			if event.Lifecycle.Phase == "CLOSE" {
				sess.Closed = true
			}
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Timer Journal Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryState, log.CategoryHaptic, log.CategoryPower,
		log.CategoryInput, log.CategoryRender, log.CategoryLifecycle} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Slot:")
	for _, slot := range []log.Slot{log.SlotFirst, log.SlotSecond, log.SlotNone} {
		if count := stats.EventsBySlot[slot]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", slot.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if stats.WarningPulses+stats.ExpiryPulses > 0 {
		fmt.Fprintf(w, "Pulses: %d warning, %d expiry\n", stats.WarningPulses, stats.ExpiryPulses)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", log.ShortID(s.id), s.stats.Events, duration)
			if s.stats.Flavor != "" {
				fmt.Fprintf(w, "           Flavor: %s\n", s.stats.Flavor)
			}
			fmt.Fprintf(w, "           Plays: %d, expiries: %d\n", s.stats.Plays, s.stats.Expiries)
			if !s.stats.Closed {
				fmt.Fprintln(w, "           Not closed")
			}
		}
	}

	if stats.Ignored > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Ignored inputs: %d\n", stats.Ignored)
	}
}
