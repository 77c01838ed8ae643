package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feduss/CustomInfiniTime/pkg/duration"
	"github.com/feduss/CustomInfiniTime/pkg/ticks"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := loadConfig(path, newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, "timer", cfg.Flavor)
	assert.Equal(t, clockSystem, cfg.Clock)
	assert.Equal(t, ticks.DefaultRate, cfg.TickRate)
	assert.Equal(t, timer.DefaultRefreshPeriod, cfg.RefreshPeriod)
	assert.Equal(t, modeTUI, cfg.Mode)
	assert.False(t, cfg.Audio)

	st, err := cfg.settings()
	require.NoError(t, err)
	assert.Equal(t, timer.FlavorTimer, st.flavor)
	assert.True(t, st.targets[0].IsZero())
	assert.Equal(t, slog.LevelInfo, st.level)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
flavor: stopwatch
first-target: "00:45"
second-target: "10:00"
tick-rate: 100
tick-offset: 4294966272
refresh-period: 50ms
mode: shell
clock: manual
log-level: debug
`)

	cfg, err := loadConfig(path, newFlagSet(t))
	require.NoError(t, err)

	st, err := cfg.settings()
	require.NoError(t, err)
	assert.Equal(t, timer.FlavorStopwatch, st.flavor)
	assert.Equal(t, duration.MustParse("00:45"), st.targets[0])
	assert.Equal(t, duration.MustParse("10:00"), st.targets[1])
	assert.Equal(t, uint32(100), st.rate)
	assert.Equal(t, ticks.Count(4294966272), st.offset)
	assert.Equal(t, 50*time.Millisecond, st.period)
	assert.True(t, st.manual)
	assert.Equal(t, modeShell, st.mode)
	assert.Equal(t, slog.LevelDebug, st.level)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "flavor: stopwatch\nfirst-target: \"00:45\"\n")
	t.Setenv("DOUBLETIMER_FIRST_TARGET", "01:00")
	t.Setenv("DOUBLETIMER_SECOND_TARGET", "02:00")

	cfg, err := loadConfig(path, newFlagSet(t, "-flavor", "timer", "-second-target", "03:00"))
	require.NoError(t, err)

	assert.Equal(t, "timer", cfg.Flavor, "flag beats file")
	assert.Equal(t, "01:00", cfg.FirstTarget, "env beats file")
	assert.Equal(t, "03:00", cfg.SecondTarget, "flag beats env")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"), newFlagSet(t))
	assert.Error(t, err)
}

func TestSettingsRejectsInvalid(t *testing.T) {
	base := appConfig{
		Flavor:   "timer",
		Clock:    clockSystem,
		TickRate: ticks.DefaultRate,
		LogLevel: "info",
		Mode:     modeTUI,
	}

	tests := []struct {
		name   string
		modify func(*appConfig)
	}{
		{"flavor", func(c *appConfig) { c.Flavor = "egg" }},
		{"target", func(c *appConfig) { c.FirstTarget = "1:2:3" }},
		{"clock", func(c *appConfig) { c.Clock = "sundial" }},
		{"rate", func(c *appConfig) { c.TickRate = 0 }},
		{"level", func(c *appConfig) { c.LogLevel = "loud" }},
		{"mode", func(c *appConfig) { c.Mode = "web" }},
		{"manual clock in tui", func(c *appConfig) { c.Clock = clockManual }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			_, err := cfg.settings()
			assert.Error(t, err)
		})
	}

	_, err := base.settings()
	assert.NoError(t, err)
}

func TestRunVersion(t *testing.T) {
	assert.NoError(t, run([]string{"-version"}))
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := writeConfig(t, "mode: web\n")
	err := run([]string{"-config", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
