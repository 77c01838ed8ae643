// Command doubletimer-scenario replays YAML timer scenarios against the
// engine on a manual clock and reports which expectations held.
//
// Usage:
//
//	doubletimer-scenario [flags] [id-pattern]
//
// Flags:
//
//	-dir string        Directory of scenario files (default "internal/scenario/testdata")
//	-file string       Run a single scenario file instead of a directory
//	-parallel int      Number of scenarios run at once (default 1)
//	-verbose           Show every step and expectation
//	-json              Output results as JSON
//	-junit             Output results as JUnit XML
//	-journal string    File path for the CBOR event journal
//	-log-level string  Log level: debug, info, warn, error (default "warn")
//
// Examples:
//
//	# Run all bundled scenarios
//	doubletimer-scenario
//
//	# Run the timer scenarios only, with details
//	doubletimer-scenario -verbose "SC-TIMER-*"
//
//	# Produce a JUnit report for CI
//	doubletimer-scenario -junit > scenarios.xml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/feduss/CustomInfiniTime/internal/scenario/loader"
	"github.com/feduss/CustomInfiniTime/internal/scenario/reporter"
	"github.com/feduss/CustomInfiniTime/internal/scenario/runner"
	"github.com/feduss/CustomInfiniTime/pkg/log"
)

var (
	dir      = flag.String("dir", "internal/scenario/testdata", "Directory of scenario files")
	file     = flag.String("file", "", "Run a single scenario file instead of a directory")
	parallel = flag.Int("parallel", 1, "Number of scenarios run at once")
	verbose  = flag.Bool("verbose", false, "Show every step and expectation")
	jsonOut  = flag.Bool("json", false, "Output results as JSON")
	junitOut = flag.Bool("junit", false, "Output results as JUnit XML")
	journal  = flag.String("journal", "", "File path for the CBOR event journal")
	logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	pattern := ""
	if flag.NArg() > 0 {
		pattern = flag.Arg(0)
	}

	outputFormat := "text"
	if *jsonOut {
		outputFormat = "json"
	} else if *junitOut {
		outputFormat = "junit"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	scenarios, source, err := load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scenarios, err = selectScenarios(scenarios, pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(scenarios) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no scenarios match %q in %s\n", pattern, source)
		os.Exit(1)
	}
	logger.Info("scenarios loaded", "source", source, "count", len(scenarios), "pattern", pattern)

	cfg := runner.Config{
		Logger:   logger,
		Parallel: *parallel,
	}

	var journalLogger *log.FileLogger
	if *journal != "" {
		journalLogger, err = log.NewFileLogger(*journal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create journal: %v\n", err)
			os.Exit(1)
		}
		// Only set the journal when non-nil to avoid a typed-nil interface.
		cfg.Journal = journalLogger
		logger.Info("journal enabled", "path", *journal)
	}

	rep, err := reporter.New(outputFormat, os.Stdout, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := runner.New(cfg).RunSuite(ctx, source, scenarios)
	if journalLogger != nil {
		journalLogger.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rep.ReportSuite(result)

	if result.FailCount > 0 {
		os.Exit(1)
	}
}

// load reads the scenarios named by -file or -dir.
func load() ([]*loader.Scenario, string, error) {
	if *file != "" {
		sc, err := loader.LoadScenario(*file)
		if err != nil {
			return nil, *file, err
		}
		return []*loader.Scenario{sc}, *file, nil
	}

	scenarios, err := loader.LoadDirectory(*dir)
	return scenarios, *dir, err
}

// selectScenarios keeps the scenarios whose ID matches the glob pattern.
// An empty pattern keeps all.
func selectScenarios(scenarios []*loader.Scenario, pattern string) ([]*loader.Scenario, error) {
	if pattern == "" {
		return scenarios, nil
	}

	var selected []*loader.Scenario
	for _, sc := range scenarios {
		ok, err := path.Match(pattern, sc.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			selected = append(selected, sc)
		}
	}
	return selected, nil
}
