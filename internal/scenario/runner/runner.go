package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/feduss/CustomInfiniTime/internal/scenario/loader"
	"github.com/feduss/CustomInfiniTime/pkg/duration"
	"github.com/feduss/CustomInfiniTime/pkg/haptic"
	"github.com/feduss/CustomInfiniTime/pkg/log"
	"github.com/feduss/CustomInfiniTime/pkg/power"
	"github.com/feduss/CustomInfiniTime/pkg/ticks"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// Config configures a Runner.
type Config struct {
	// Journal receives engine events of every scenario. Optional.
	Journal log.Logger

	// Logger receives operational messages. Nil discards them.
	Logger *slog.Logger

	// Parallel is the number of scenarios run at once (default 1).
	Parallel int
}

// Runner executes scenarios. Each scenario gets its own engine, manual
// clock, motor and power manager.
type Runner struct {
	journal  log.Logger
	logger   *slog.Logger
	parallel int
}

// New creates a runner.
func New(cfg Config) *Runner {
	r := &Runner{
		journal:  cfg.Journal,
		logger:   cfg.Logger,
		parallel: cfg.Parallel,
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	if r.parallel < 1 {
		r.parallel = 1
	}
	return r
}

// execution holds the state of one scenario run.
type execution struct {
	engine *timer.Engine
	clock  *ticks.ManualClock
	motor  *haptic.Motor
	power  *power.Manager
}

// RunSuite runs scenarios and aggregates their results in input order.
// It stops early only when ctx is cancelled.
func (r *Runner) RunSuite(ctx context.Context, name string, scenarios []*loader.Scenario) (*SuiteResult, error) {
	start := time.Now()
	results := make([]*Result, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.Run(sc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	suite := &SuiteResult{
		SuiteName: name,
		Results:   results,
		Duration:  time.Since(start),
	}
	for _, res := range results {
		if res.Passed {
			suite.PassCount++
		} else {
			suite.FailCount++
		}
	}
	return suite, nil
}

// Run executes one scenario. Execution stops at the first failing step.
func (r *Runner) Run(sc *loader.Scenario) *Result {
	start := time.Now()
	result := &Result{Scenario: sc}
	defer func() { result.Duration = time.Since(start) }()

	x, err := r.setup(sc)
	if err != nil {
		result.Error = err
		return result
	}
	defer x.engine.Close()
	result.SessionID = x.engine.SessionID()

	r.logger.Debug("scenario started", "id", sc.ID, "session", log.ShortID(result.SessionID))

	for i := range sc.Steps {
		sr := x.runStep(i, &sc.Steps[i])
		result.StepResults = append(result.StepResults, sr)
		if !sr.Passed {
			result.Error = fmt.Errorf("step %d (%s): %w", i+1, sc.Steps[i].Action, sr.Error)
			r.logger.Debug("scenario failed", "id", sc.ID, "step", i+1, "error", sr.Error)
			return result
		}
	}

	result.Passed = true
	r.logger.Debug("scenario passed", "id", sc.ID)
	return result
}

func (r *Runner) setup(sc *loader.Scenario) (*execution, error) {
	flavor, err := timer.ParseFlavor(sc.Flavor)
	if err != nil {
		return nil, err
	}
	rate := sc.TickRate
	if rate == 0 {
		rate = ticks.DefaultRate
	}
	clock, err := ticks.NewManualClock(rate, ticks.Count(sc.StartTick))
	if err != nil {
		return nil, err
	}

	var targets [2]duration.Duration
	copy(targets[:], sc.Targets)

	x := &execution{
		clock: clock,
		motor: haptic.NewMotor(0),
		power: power.NewManager(r.logger),
	}
	x.engine, err = timer.New(timer.Config{
		Flavor:  flavor,
		Targets: targets,
		Clock:   clock,
		Haptic:  x.motor,
		Power:   x.power,
		Logger:  r.journal,
	})
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return x, nil
}

func (x *execution) runStep(index int, step *loader.Step) *StepResult {
	start := time.Now()
	sr := &StepResult{Step: step, StepIndex: index}
	defer func() { sr.Duration = time.Since(start) }()

	slot := timer.SlotFirst
	if step.Slot != "" {
		s, err := timer.ParseSlot(step.Slot)
		if err != nil {
			sr.Error = err
			return sr
		}
		slot = s
	}

	if err := x.apply(step, slot); err != nil {
		sr.Error = err
		return sr
	}

	sr.ExpectResults = x.checkAll(step.Expect, slot)
	var failed []string
	for key, er := range sr.ExpectResults {
		if !er.Passed {
			failed = append(failed, key+": "+er.Message)
		}
	}
	if len(failed) > 0 {
		sort.Strings(failed)
		sr.Error = fmt.Errorf("expectation failed: %s", strings.Join(failed, "; "))
		return sr
	}

	sr.Passed = true
	return sr
}

func (x *execution) apply(step *loader.Step, slot timer.Slot) error {
	switch step.Action {
	case loader.ActionPlay:
		x.engine.Play(slot)
	case loader.ActionStop:
		x.engine.Stop(slot)
	case loader.ActionPress:
		x.engine.Press(slot)
	case loader.ActionAdvance:
		if step.Ticks > 0 {
			x.clock.AdvanceTicks(ticks.Count(step.Ticks))
		}
		if step.Duration != "" {
			d, err := loader.ParseAdvance(step.Duration)
			if err != nil {
				return err
			}
			x.clock.Advance(d)
		}
	case loader.ActionRefresh:
		n := step.Repeat
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			x.engine.Refresh()
		}
	case loader.ActionClose:
		x.engine.Close()
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	return nil
}
