package timer

import (
	"context"
	"errors"
	"time"
)

// DefaultRefreshPeriod is the display refresh period used when none is set.
const DefaultRefreshPeriod = 30 * time.Millisecond

// ErrLoopStopped is returned when a command is sent to a loop that has exited.
var ErrLoopStopped = errors.New("timer: loop stopped")

// Loop serializes input and periodic refresh onto one goroutine.
// Every engine call made through a Loop happens inside Run.
type Loop struct {
	engine *Engine
	period time.Duration

	cmds chan func(*Engine)
	done chan struct{}

	// OnRefresh is called after every periodic refresh. Must be set before Run.
	OnRefresh func(*Engine)
}

// NewLoop creates a loop refreshing engine every period.
// A non-positive period selects DefaultRefreshPeriod.
func NewLoop(engine *Engine, period time.Duration) *Loop {
	if period <= 0 {
		period = DefaultRefreshPeriod
	}
	return &Loop{
		engine: engine,
		period: period,
		cmds:   make(chan func(*Engine)),
		done:   make(chan struct{}),
	}
}

// Period returns the refresh period.
func (l *Loop) Period() time.Duration {
	return l.period
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run refreshes the engine on every tick and executes queued commands until
// ctx is cancelled or the engine is closed. The engine is closed on return.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)
	defer l.engine.Close()

	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	l.engine.Refresh()
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.cmds:
			fn(l.engine)
		case <-ticker.C:
			l.engine.Refresh()
			if l.OnRefresh != nil {
				l.OnRefresh(l.engine)
			}
		}
		if l.engine.Closed() {
			return nil
		}
	}
}

// Do runs fn on the loop goroutine and waits for it to finish.
func (l *Loop) Do(ctx context.Context, fn func(*Engine)) error {
	finished := make(chan struct{})
	cmd := func(e *Engine) {
		defer close(finished)
		fn(e)
	}

	select {
	case l.cmds <- cmd:
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	<-finished
	return nil
}

// Press toggles a slot on the loop goroutine.
func (l *Loop) Press(ctx context.Context, s Slot) error {
	return l.Do(ctx, func(e *Engine) { e.Press(s) })
}

// Play starts a slot on the loop goroutine.
func (l *Loop) Play(ctx context.Context, s Slot) error {
	return l.Do(ctx, func(e *Engine) { e.Play(s) })
}

// Stop stops a slot on the loop goroutine.
func (l *Loop) Stop(ctx context.Context, s Slot) error {
	return l.Do(ctx, func(e *Engine) { e.Stop(s) })
}

// Close closes the engine on the loop goroutine, which makes Run return.
func (l *Loop) Close(ctx context.Context) error {
	err := l.Do(ctx, func(e *Engine) { e.Close() })
	if errors.Is(err, ErrLoopStopped) {
		return nil
	}
	return err
}
