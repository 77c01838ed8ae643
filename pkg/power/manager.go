// Package power tracks the host sleep-inhibit state requested by the timer
// engine.
package power

import (
	"log/slog"
	"sync"
)

// Manager is a power sink that remembers whether sleep is inhibited.
// It is safe for concurrent use.
type Manager struct {
	mu sync.Mutex

	inhibited bool
	disabled  int
	enabled   int
	onChange  func(inhibited bool)
	logger    *slog.Logger
}

// NewManager creates a manager with sleep allowed.
// A nil logger discards log output.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{logger: logger}
}

// OnChange sets a callback invoked when the inhibited state flips.
func (m *Manager) OnChange(fn func(inhibited bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// RequestSleepDisabled keeps the host awake.
func (m *Manager) RequestSleepDisabled() {
	m.request(true)
}

// RequestSleepEnabled lets the host sleep again.
func (m *Manager) RequestSleepEnabled() {
	m.request(false)
}

func (m *Manager) request(inhibit bool) {
	m.mu.Lock()
	if inhibit {
		m.disabled++
	} else {
		m.enabled++
	}
	changed := m.inhibited != inhibit
	m.inhibited = inhibit
	cb := m.onChange
	m.mu.Unlock()

	if !changed {
		m.logger.Debug("sleep request unchanged", "inhibited", inhibit)
		return
	}
	if inhibit {
		m.logger.Info("sleep disabled")
	} else {
		m.logger.Info("sleep enabled")
	}
	if cb != nil {
		cb(inhibit)
	}
}

// SleepInhibited reports whether the last request disabled sleep.
func (m *Manager) SleepInhibited() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inhibited
}

// Counts returns how many disable and enable requests were received.
func (m *Manager) Counts() (disabled, enabled int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disabled, m.enabled
}
