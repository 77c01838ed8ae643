// Package tui implements the terminal watch face for the timer engine.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/feduss/CustomInfiniTime/pkg/haptic"
	"github.com/feduss/CustomInfiniTime/pkg/power"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// TickMsg drives the periodic refresh.
type TickMsg time.Time

// Config wires a Model to its engine and collaborators.
type Config struct {
	// Engine must render into Screen.
	Engine *timer.Engine
	Screen *Screen

	// Motor and Power feed the status line. Optional.
	Motor *haptic.Motor
	Power *power.Manager

	// Period is the refresh period (default timer.DefaultRefreshPeriod).
	Period time.Duration

	// Keys overrides the default key map.
	Keys *KeyMap
}

// Model is the Bubble Tea model of the watch face. All engine calls happen
// inside Update, which Bubble Tea serializes.
type Model struct {
	engine *timer.Engine
	screen *Screen
	motor  *haptic.Motor
	power  *power.Manager
	period time.Duration
	keys   KeyMap
	help   help.Model
	now    func() time.Time
	width  int
}

// NewModel creates the watch face model.
func NewModel(cfg Config) *Model {
	m := &Model{
		engine: cfg.Engine,
		screen: cfg.Screen,
		motor:  cfg.Motor,
		power:  cfg.Power,
		period: cfg.Period,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		now:    time.Now,
	}
	if cfg.Keys != nil {
		m.keys = *cfg.Keys
	}
	if m.period <= 0 {
		m.period = timer.DefaultRefreshPeriod
	}
	return m
}

// Init starts the refresh tick.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case TickMsg:
		if m.engine.Closed() {
			return m, nil
		}
		m.engine.Refresh()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
		m.engine.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.PressFirst):
		m.engine.Press(timer.SlotFirst)
	case key.Matches(msg, m.keys.PressSecond):
		m.engine.Press(timer.SlotSecond)
	case key.Matches(msg, m.keys.StopFirst):
		m.engine.Stop(timer.SlotFirst)
	case key.Matches(msg, m.keys.StopSecond):
		m.engine.Stop(timer.SlotSecond)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders both slots, the status line and help.
func (m *Model) View() string {
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSlot(timer.SlotFirst),
		" ",
		m.renderSlot(timer.SlotSecond),
	)

	var b strings.Builder
	b.WriteString(panels)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) renderSlot(s timer.Slot) string {
	d := m.screen.Slot(s)
	state := m.engine.State(s)

	// The button shows the action a press would take.
	icon := "▶"
	if state == timer.StateRunning {
		icon = "■"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("%d · %s", s+1, strings.ToLower(state.String()))),
		hintStyle(d.Hint).Render(d.String()),
		icon,
	)

	style := panelStyle
	if state == timer.StateRunning {
		style = runningPanelStyle
	}
	return style.Render(body)
}

func (m *Model) statusLine() string {
	parts := []string{strings.ToLower(m.engine.Flavor().String())}

	if m.motor != nil && m.motor.Active(m.now()) {
		parts = append(parts, activeStyle.Render("~ bzz ~"))
	}
	if m.power != nil {
		if m.power.SleepInhibited() {
			parts = append(parts, "sleep blocked")
		} else {
			parts = append(parts, "sleep allowed")
		}
	}
	if m.engine.Closed() {
		parts = append(parts, "closed")
	}
	return strings.Join(parts, " | ")
}
