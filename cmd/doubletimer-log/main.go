// Command doubletimer-log is a tool for viewing and analyzing timer event
// journals.
//
// Journals are written by doubletimer with the -journal-path flag and by
// doubletimer-scenario with -journal.
//
// Usage:
//
//	doubletimer-log <command> [flags] <file.dtlog>
//
// Commands:
//
//	view     View journal in human-readable format
//	export   Export journal to JSON or CSV format
//	filter   Filter journal and write to new file
//	stats    Show statistics about the journal
//
// Examples:
//
//	# View all events
//	doubletimer-log view run.dtlog
//
//	# View everything except display updates
//	doubletimer-log view -skip render run.dtlog
//
//	# View only haptic pulses of the second slot
//	doubletimer-log view -slot second -category haptic run.dtlog
//
//	# Export to JSONL
//	doubletimer-log export -format jsonl run.dtlog
//
//	# Keep one session and save to new file
//	doubletimer-log filter -session 3f2a9c1e-... -o session.dtlog run.dtlog
//
//	# Keep every timer expiry
//	doubletimer-log filter -flavor timer -state expired -o expiries.dtlog run.dtlog
//
//	# Show statistics
//	doubletimer-log stats run.dtlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/feduss/CustomInfiniTime/cmd/doubletimer-log/commands"
)

const usage = `doubletimer-log - Timer Journal Analyzer

Usage:
  doubletimer-log <command> [flags] <file.dtlog>

Commands:
  view     View journal in human-readable format
  export   Export journal to JSON or CSV format
  filter   Filter journal and write to new file
  stats    Show statistics about the journal

Use "doubletimer-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `doubletimer-log view - View journal in human-readable format

Usage:
  doubletimer-log view [flags] <file.dtlog>

Flags:
`)
		fs.PrintDefaults()
	}

	session := fs.String("session", "", "Filter by session ID")
	slot := fs.String("slot", "", "Filter by slot (first, second, none)")
	category := fs.String("category", "", "Filter by category (state, haptic, power, input, render, lifecycle)")
	skip := fs.String("skip", "", "Comma-separated categories to hide (e.g. render)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter := commands.ViewFilter{SessionID: *session}

	if *skip != "" {
		cats, err := commands.ParseCategoryList(*skip)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Skip = cats
	}

	if *slot != "" {
		s, err := commands.ParseSlotFlag(*slot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Slot = &s
	}

	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `doubletimer-log export - Export journal to JSON or CSV format

Usage:
  doubletimer-log export [flags] <file.dtlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `doubletimer-log filter - Filter journal and write to new file

Usage:
  doubletimer-log filter [flags] <file.dtlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	session := fs.String("session", "", "Filter by session ID")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	slot := fs.String("slot", "", "Filter by slot (first, second, none)")
	category := fs.String("category", "", "Filter by category (state, haptic, power, input, render, lifecycle)")
	flavor := fs.String("flavor", "", "Filter by engine flavor (stopwatch, timer)")
	state := fs.String("state", "", "Keep state changes into this state (init, running, halted, expired)")
	hint := fs.String("hint", "", "Keep renders with this colour hint (normal, warning, expired)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		SessionID: *session,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Slot:      *slot,
		Category:  *category,
		Flavor:    *flavor,
		State:     *state,
		Hint:      *hint,
	}

	if err := commands.RunFilter(fs.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `doubletimer-log stats - Show statistics about the journal

Usage:
  doubletimer-log stats <file.dtlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
