// Command doubletimer runs the dual timer watch face in a terminal.
//
// The face shows two independent slots. In the timer flavor only one slot
// runs at a time and a slot counting down buzzes in its last five seconds
// and again on expiry. In the stopwatch flavor both slots may run and a
// slot that reaches its target simply halts.
//
// Usage:
//
//	doubletimer [flags]
//
// Flags:
//
//	-config string          Configuration file (default $HOME/.config/doubletimer/config.yml)
//	-flavor string          Engine flavor: stopwatch, timer (default "timer")
//	-first-target string    Target of the first slot as MM:SS
//	-second-target string   Target of the second slot as MM:SS
//	-mode string            Host mode: tui, shell (default "tui")
//	-clock string           Clock source: system, manual (default "system")
//	-journal-path string    Write the CBOR event journal to this file
//	-log-level string       Log level: debug, info, warn, error (default "info")
//	-audio                  Play pulses as tones on the speaker
//
// Every flag can also be set in the config file or through a DOUBLETIMER_
// environment variable (DOUBLETIMER_FIRST_TARGET=00:45).
//
// Examples:
//
//	# Boil an egg and steep tea at the same time
//	doubletimer -first-target 07:00 -second-target 03:00
//
//	# Step through a countdown by hand and keep the journal
//	doubletimer -mode shell -clock manual -journal-path run.cbor
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/feduss/CustomInfiniTime/internal/shell"
	"github.com/feduss/CustomInfiniTime/internal/tui"
	"github.com/feduss/CustomInfiniTime/pkg/haptic"
	"github.com/feduss/CustomInfiniTime/pkg/log"
	"github.com/feduss/CustomInfiniTime/pkg/power"
	"github.com/feduss/CustomInfiniTime/pkg/ticks"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// Set by ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "doubletimer: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("doubletimer", flag.ContinueOnError)
	configPath := fs.String("config", "", "Configuration file path")
	showVersion := fs.Bool("version", false, "Print version and exit")
	registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Println("doubletimer", version)
		return nil
	}

	cfg, err := loadConfig(*configPath, fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := cfg.settings()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogging(st)
	if err != nil {
		return err
	}
	defer closeLog()

	journal, closeJournal, err := openJournal(st, logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	clock, err := newClock(st)
	if err != nil {
		return err
	}

	motor := haptic.NewMotor(haptic.DefaultUnit)
	if st.audio {
		spk, err := haptic.NewSpeaker(haptic.SpeakerConfig{Volume: -1})
		if err != nil {
			logger.Warn("audio unavailable, pulses stay silent", "error", err)
		} else {
			motor.SetBuzzer(spk)
		}
	}
	pm := power.NewManager(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		"version", version,
		"mode", st.mode,
		"flavor", st.flavor,
		"rate", st.rate,
		"offset", st.offset)

	if st.mode == modeShell {
		return runShell(ctx, st, clock, journal, motor, pm)
	}
	return runTUI(ctx, st, clock, journal, motor, pm)
}

func runTUI(ctx context.Context, st settings, clock ticks.Clock, journal log.Logger, motor *haptic.Motor, pm *power.Manager) error {
	screen := tui.NewScreen()
	engine, err := timer.New(timer.Config{
		Flavor:  st.flavor,
		Targets: st.targets,
		Clock:   clock,
		Haptic:  motor,
		Power:   pm,
		Render:  screen,
		Logger:  journal,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	m := tui.NewModel(tui.Config{
		Engine: engine,
		Screen: screen,
		Motor:  motor,
		Power:  pm,
		Period: st.period,
	})
	return tui.Run(ctx, m)
}

func runShell(ctx context.Context, st settings, clock ticks.Clock, journal log.Logger, motor *haptic.Motor, pm *power.Manager) error {
	printer := shell.NewEventPrinter(nil)
	engine, err := timer.New(timer.Config{
		Flavor:  st.flavor,
		Targets: st.targets,
		Clock:   clock,
		Haptic:  motor,
		Power:   pm,
		Logger:  log.NewMultiLogger(journal, printer),
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	loop := timer.NewLoop(engine, st.period)
	sh, err := shell.New(shell.Config{
		Loop:  loop,
		Clock: clock,
		Motor: motor,
		Power: pm,
	})
	if err != nil {
		engine.Close()
		return err
	}
	printer.SetOutput(sh.Stdout())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		sh.Run(gctx, cancel)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return sh.Close()
	})
	return g.Wait()
}

func newClock(st settings) (ticks.Clock, error) {
	if st.manual {
		return ticks.NewManualClock(st.rate, st.offset)
	}
	return ticks.NewSystemClock(st.rate, st.offset)
}

// setupLogging builds the operational logger. The TUI owns the terminal, so
// without a log file its logs are discarded.
func setupLogging(st settings) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	switch {
	case st.logFile != "":
		f, err := os.OpenFile(st.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	case st.mode == modeTUI:
		return slog.New(slog.DiscardHandler), closer, nil
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: st.level}))
	return logger, closer, nil
}

// openJournal returns the engine event logger: the CBOR file when a path is
// configured, plus the operational log at debug level without render events.
func openJournal(st settings, logger *slog.Logger) (log.Logger, func(), error) {
	console := log.NewFilterLogger(log.NewSlogAdapter(logger), log.Filter{
		Skip: []log.Category{log.CategoryRender},
	})
	loggers := []log.Logger{console}
	closer := func() {}

	if st.journal != "" {
		fl, err := log.NewFileLogger(st.journal)
		if err != nil {
			return nil, nil, fmt.Errorf("open journal: %w", err)
		}
		loggers = append(loggers, fl)
		closer = func() {
			if err := fl.Close(); err != nil {
				logger.Warn("close journal", "error", err)
			}
		}
		logger.Info("journal enabled", "path", st.journal)
	}

	return log.NewMultiLogger(loggers...), closer, nil
}
