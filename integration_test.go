package doubletimer_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feduss/CustomInfiniTime/internal/scenario/loader"
	"github.com/feduss/CustomInfiniTime/internal/scenario/runner"
	"github.com/feduss/CustomInfiniTime/internal/tui"
	"github.com/feduss/CustomInfiniTime/pkg/duration"
	"github.com/feduss/CustomInfiniTime/pkg/haptic"
	"github.com/feduss/CustomInfiniTime/pkg/log"
	"github.com/feduss/CustomInfiniTime/pkg/power"
	"github.com/feduss/CustomInfiniTime/pkg/ticks"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// TestE2E_ScenarioSuiteJournal runs the bundled scenarios in parallel into
// one journal file and checks every session is complete on disk.
func TestE2E_ScenarioSuiteJournal(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	scenarios, err := loader.LoadDirectory("internal/scenario/testdata")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	path := filepath.Join(t.TempDir(), "suite"+log.FileExt)
	journal, err := log.NewFileLogger(path)
	require.NoError(t, err)

	r := runner.New(runner.Config{Journal: journal, Parallel: 4})
	suite, err := r.RunSuite(context.Background(), "bundled", scenarios)
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	for _, res := range suite.Results {
		assert.True(t, res.Passed, "%s: %v", res.Scenario.ID, res.Error)
	}
	assert.Equal(t, len(scenarios), suite.PassCount)

	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()
	events, err := reader.ReadAll()
	require.NoError(t, err)

	phases := map[string][]string{}
	for _, ev := range events {
		if ev.Lifecycle != nil {
			phases[ev.SessionID] = append(phases[ev.SessionID], ev.Lifecycle.Phase)
		}
	}
	for _, res := range suite.Results {
		assert.Equal(t, []string{"OPEN", "CLOSE"}, phases[res.SessionID], res.Scenario.ID)
	}
}

// TestE2E_LoopCountdown drives a timer through warning, expiry and dismissal
// on the loop goroutine with the real motor, power manager and screen.
func TestE2E_LoopCountdown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	clock, err := ticks.NewManualClock(ticks.DefaultRate, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "loop"+log.FileExt)
	journal, err := log.NewFileLogger(path)
	require.NoError(t, err)

	motor := haptic.NewMotor(haptic.DefaultUnit)
	pm := power.NewManager(nil)
	screen := tui.NewScreen()

	engine, err := timer.New(timer.Config{
		Flavor:  timer.FlavorTimer,
		Targets: [2]duration.Duration{duration.MustParse("00:06"), {}},
		Clock:   clock,
		Haptic:  motor,
		Power:   pm,
		Render:  screen,
		Logger:  journal,
	})
	require.NoError(t, err)

	loop := timer.NewLoop(engine, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	refresh := func() {
		require.NoError(t, loop.Do(ctx, func(e *timer.Engine) { e.Refresh() }))
	}

	require.NoError(t, loop.Press(ctx, timer.SlotFirst))
	assert.True(t, pm.SleepInhibited())

	clock.Advance(2 * time.Second)
	refresh()
	assert.Equal(t, 1, motor.Count(timer.WarningPulse))
	assert.Equal(t, timer.HintWarning, screen.Slot(timer.SlotFirst).Hint)

	clock.Advance(4 * time.Second)
	refresh()
	assert.Equal(t, 1, motor.Count(timer.ExpiryPulse))
	assert.Equal(t, timer.Display{Hint: timer.HintExpired}, screen.Slot(timer.SlotFirst))
	assert.True(t, pm.SleepInhibited(), "expiry keeps sleep blocked until dismissed")

	require.NoError(t, loop.Stop(ctx, timer.SlotFirst))
	assert.False(t, pm.SleepInhibited())
	assert.Equal(t, timer.Display{Minutes: 0, Seconds: 6}, screen.Slot(timer.SlotFirst))

	require.NoError(t, loop.Close(ctx))
	require.NoError(t, <-errCh)
	require.NoError(t, journal.Close())

	cat := log.CategoryHaptic
	reader, err := log.NewFilteredReader(path, log.Filter{Category: &cat})
	require.NoError(t, err)
	defer reader.Close()
	pulses, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, pulses, 2)
	assert.Equal(t, log.HapticWarning, pulses[0].Haptic.Kind)
	assert.Equal(t, log.HapticExpired, pulses[1].Haptic.Kind)
}
