package timer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feduss/CustomInfiniTime/pkg/ticks"
)

func startLoop(t *testing.T, e *Engine) (*Loop, context.CancelFunc, chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(e, time.Millisecond)
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()
	t.Cleanup(cancel)
	return l, cancel, errCh
}

func TestNewLoopDefaultPeriod(t *testing.T) {
	l := NewLoop(nil, 0)
	assert.Equal(t, DefaultRefreshPeriod, l.Period())
}

func TestLoopCommands(t *testing.T) {
	e, clock, rec := newTestEngine(t, FlavorTimer, targets("01:30", "02:30"), 0)
	l, cancel, errCh := startLoop(t, e)
	ctx := context.Background()

	require.NoError(t, l.Play(ctx, SlotFirst))

	var state State
	require.NoError(t, l.Do(ctx, func(e *Engine) { state = e.State(SlotFirst) }))
	assert.Equal(t, StateRunning, state)

	clock.Advance(30 * time.Second)
	require.Eventually(t, func() bool {
		var shown string
		_ = l.Do(ctx, func(e *Engine) { shown = e.Display(SlotFirst).String() })
		return shown == "01:00"
	}, time.Second, time.Millisecond)

	require.NoError(t, l.Press(ctx, SlotFirst))
	require.NoError(t, l.Do(ctx, func(e *Engine) { state = e.State(SlotFirst) }))
	assert.Equal(t, StateInit, state)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	<-l.Done()
	assert.True(t, e.Closed())
	assert.Equal(t, 2, rec.enabled, "one from stop, one from close")

	err := l.Stop(ctx, SlotFirst)
	assert.True(t, errors.Is(err, ErrLoopStopped))
}

func TestLoopCloseStopsRun(t *testing.T) {
	e, _, _ := newTestEngine(t, FlavorStopwatch, targets("00:30", "01:00"), 0)
	l, _, errCh := startLoop(t, e)

	require.NoError(t, l.Close(context.Background()))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}

	// Closing again after exit is not an error.
	assert.NoError(t, l.Close(context.Background()))
}

func TestLoopOnRefresh(t *testing.T) {
	clock, err := ticks.NewManualClock(ticks.DefaultRate, 0)
	require.NoError(t, err)
	e, err := New(Config{Flavor: FlavorTimer, Clock: clock})
	require.NoError(t, err)

	var refreshes atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := NewLoop(e, time.Millisecond)
	l.OnRefresh = func(*Engine) { refreshes.Add(1) }
	go func() { _ = l.Run(ctx) }()

	assert.Eventually(t, func() bool { return refreshes.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestLoopDoHonoursContext(t *testing.T) {
	e, _, _ := newTestEngine(t, FlavorTimer, targets("01:30", "02:30"), 0)
	l := NewLoop(e, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Run was never started, so only the context can end the wait.
	err := l.Play(ctx, SlotFirst)
	assert.ErrorIs(t, err, context.Canceled)
}
