// Package shell provides the interactive command-line interface for the
// timer engine.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/feduss/CustomInfiniTime/internal/scenario/loader"
	"github.com/feduss/CustomInfiniTime/pkg/haptic"
	"github.com/feduss/CustomInfiniTime/pkg/log"
	"github.com/feduss/CustomInfiniTime/pkg/power"
	"github.com/feduss/CustomInfiniTime/pkg/ticks"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// Config wires the shell to a running engine loop.
type Config struct {
	// Loop runs the engine. Required.
	Loop *timer.Loop

	// Clock is the engine clock; advance only works on a *ticks.ManualClock.
	Clock ticks.Clock

	// Motor and Power are shown by status. Optional.
	Motor *haptic.Motor
	Power *power.Manager
}

// Shell handles interactive mode.
type Shell struct {
	loop  *timer.Loop
	clock ticks.Clock
	motor *haptic.Motor
	power *power.Manager
	rl    *readline.Instance
	out   io.Writer

	closeOnce sync.Once
}

// New creates a shell reading commands from the terminal.
func New(cfg Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "timer> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(cfg, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newShell(cfg Config, out io.Writer) *Shell {
	return &Shell{
		loop:  cfg.Loop,
		clock: cfg.Clock,
		motor: cfg.Motor,
		power: cfg.Power,
		out:   out,
	}
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop. It calls cancel when the user
// quits or input ends.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if quit := s.Execute(ctx, line); quit {
			cancel()
			return
		}
	}
}

// Close releases the terminal. A Readline blocked in Run returns.
func (s *Shell) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.rl != nil {
			err = s.rl.Close()
		}
	})
	return err
}

// Execute runs one command line and reports whether the user asked to quit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()

	case "press", "p":
		err = s.cmdSlot(ctx, args, s.loop.Press)

	case "play":
		err = s.cmdSlot(ctx, args, s.loop.Play)

	case "stop", "s":
		err = s.cmdSlot(ctx, args, s.loop.Stop)

	case "status", "st":
		err = s.cmdStatus(ctx)

	case "advance", "a":
		err = s.cmdAdvance(ctx, args)

	case "quit", "exit", "q":
		if err := s.loop.Close(ctx); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Timer Commands:
  Control:
    press <1|2>        - Play a stopped slot or stop a running one
    play <1|2>         - Start a slot
    stop <1|2>         - Stop a slot (dismisses an expired timer)

  Inspection:
    status             - Show both slots, sleep state and pulses
    advance <dur>      - Move a manual clock forward (e.g. 5s, 01:30)

  General:
    help               - Show this help
    quit               - Exit`)
}

func (s *Shell) cmdSlot(ctx context.Context, args []string, fn func(context.Context, timer.Slot) error) error {
	if len(args) != 1 {
		return errors.New("usage: <command> <1|2>")
	}
	slot, err := timer.ParseSlot(args[0])
	if err != nil {
		return err
	}
	if err := fn(ctx, slot); err != nil {
		return err
	}
	return s.printSlot(ctx, slot)
}

func (s *Shell) cmdAdvance(ctx context.Context, args []string) error {
	manual, ok := s.clock.(*ticks.ManualClock)
	if !ok {
		return errors.New("advance needs the manual clock (start with -clock manual)")
	}
	if len(args) != 1 {
		return errors.New("usage: advance <duration>")
	}
	d, err := loader.ParseAdvance(args[0])
	if err != nil {
		return err
	}

	now := manual.Advance(d)
	if err := s.loop.Do(ctx, func(e *timer.Engine) { e.Refresh() }); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Clock at tick %d\n", now)
	return s.cmdStatus(ctx)
}

// slotView is a copy of one slot taken on the loop goroutine.
type slotView struct {
	state   timer.State
	display timer.Display
	target  string
}

func (s *Shell) snapshot(ctx context.Context) (flavor timer.Flavor, session string, slots [2]slotView, err error) {
	err = s.loop.Do(ctx, func(e *timer.Engine) {
		flavor = e.Flavor()
		session = e.SessionID()
		for _, sl := range timer.Slots {
			slots[sl] = slotView{
				state:   e.State(sl),
				display: e.Display(sl),
				target:  e.Target(sl).String(),
			}
		}
	})
	return flavor, session, slots, err
}

func (s *Shell) printSlot(ctx context.Context, slot timer.Slot) error {
	_, _, slots, err := s.snapshot(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "  %s\n", formatSlot(slot, slots[slot]))
	return nil
}

func (s *Shell) cmdStatus(ctx context.Context) error {
	flavor, session, slots, err := s.snapshot(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nTimer Status")
	fmt.Fprintln(s.out, "-------------------------------------------")
	fmt.Fprintf(s.out, "  Flavor:         %s\n", flavor)
	fmt.Fprintf(s.out, "  Session:        %s\n", log.ShortID(session))
	fmt.Fprintf(s.out, "  Tick:           %d @ %d Hz\n", s.clock.Now(), s.clock.Rate())
	for _, sl := range timer.Slots {
		fmt.Fprintf(s.out, "  %s\n", formatSlot(sl, slots[sl]))
	}
	if s.power != nil {
		disabled, enabled := s.power.Counts()
		state := "allowed"
		if s.power.SleepInhibited() {
			state = "blocked"
		}
		fmt.Fprintf(s.out, "  Sleep:          %s (%d disable, %d enable)\n", state, disabled, enabled)
	}
	if s.motor != nil {
		fmt.Fprintf(s.out, "  Pulses:         %d short, %d long\n",
			s.motor.Count(timer.WarningPulse), s.motor.Count(timer.ExpiryPulse))
	}
	fmt.Fprintln(s.out)
	return nil
}

var slotLabels = [2]string{"First:", "Second:"}

func formatSlot(slot timer.Slot, v slotView) string {
	return fmt.Sprintf("%-16s%-8s %s (%s, target %s)",
		slotLabels[slot], v.state, v.display, strings.ToLower(v.display.Hint.String()), v.target)
}
