package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/feduss/CustomInfiniTime/pkg/duration"
	"github.com/feduss/CustomInfiniTime/pkg/ticks"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// Host modes.
const (
	modeTUI   = "tui"
	modeShell = "shell"
)

// Clock sources.
const (
	clockSystem = "system"
	clockManual = "manual"
)

// appConfig holds the merged configuration of defaults, config file,
// environment and flags.
type appConfig struct {
	Flavor        string        `mapstructure:"flavor"`
	FirstTarget   string        `mapstructure:"first-target"`
	SecondTarget  string        `mapstructure:"second-target"`
	Clock         string        `mapstructure:"clock"`
	TickRate      uint32        `mapstructure:"tick-rate"`
	TickOffset    uint32        `mapstructure:"tick-offset"`
	RefreshPeriod time.Duration `mapstructure:"refresh-period"`
	JournalPath   string        `mapstructure:"journal-path"`
	LogLevel      string        `mapstructure:"log-level"`
	LogFile       string        `mapstructure:"log-file"`
	Audio         bool          `mapstructure:"audio"`
	Mode          string        `mapstructure:"mode"`
}

// settings is appConfig after validation.
type settings struct {
	flavor  timer.Flavor
	targets [2]duration.Duration
	manual  bool
	rate    uint32
	offset  ticks.Count
	period  time.Duration
	level   slog.Level
	mode    string
	journal string
	logFile string
	audio   bool
}

func registerFlags(fs *flag.FlagSet) {
	fs.String("flavor", "timer", "Engine flavor: stopwatch, timer")
	fs.String("first-target", "", "Target of the first slot as MM:SS (flavor default if empty)")
	fs.String("second-target", "", "Target of the second slot as MM:SS (flavor default if empty)")
	fs.String("clock", clockSystem, "Clock source: system, manual (shell mode only)")
	fs.Uint("tick-rate", uint(ticks.DefaultRate), "Clock rate in ticks per second")
	fs.Uint("tick-offset", 0, "Initial tick count (to exercise counter wraparound)")
	fs.Duration("refresh-period", timer.DefaultRefreshPeriod, "Display refresh period")
	fs.String("journal-path", "", "Write the CBOR event journal to this file")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.String("log-file", "", "Write operational logs to this file")
	fs.Bool("audio", false, "Play pulses as tones on the speaker")
	fs.String("mode", modeTUI, "Host mode: tui, shell")
}

func loadConfig(configPath string, fs *flag.FlagSet) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix("DOUBLETIMER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("flavor", "timer")
	v.SetDefault("first-target", "")
	v.SetDefault("second-target", "")
	v.SetDefault("clock", clockSystem)
	v.SetDefault("tick-rate", ticks.DefaultRate)
	v.SetDefault("tick-offset", 0)
	v.SetDefault("refresh-period", timer.DefaultRefreshPeriod)
	v.SetDefault("journal-path", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-file", "")
	v.SetDefault("audio", false)
	v.SetDefault("mode", modeTUI)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.SetConfigFile(filepath.Join(home, ".config", "doubletimer", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if configPath != "" || (!errors.As(err, &configFileNotFound) && !os.IsNotExist(err)) {
			return cfg, err
		}
	}

	// Flags given on the command line win over everything else.
	if fs != nil {
		fs.Visit(func(f *flag.Flag) {
			v.Set(f.Name, f.Value.String())
		})
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c appConfig) settings() (settings, error) {
	var s settings

	flavor, err := timer.ParseFlavor(c.Flavor)
	if err != nil {
		return s, err
	}
	s.flavor = flavor

	for i, raw := range []string{c.FirstTarget, c.SecondTarget} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		d, err := duration.Parse(raw)
		if err != nil {
			return s, fmt.Errorf("%s target: %w", timer.Slots[i], err)
		}
		s.targets[i] = d
	}

	switch strings.ToLower(c.Clock) {
	case clockSystem:
	case clockManual:
		s.manual = true
	default:
		return s, fmt.Errorf("unknown clock %q (want system or manual)", c.Clock)
	}

	if c.TickRate == 0 {
		return s, ticks.ErrInvalidRate
	}
	s.rate = c.TickRate
	s.offset = ticks.Count(c.TickOffset)

	s.period = c.RefreshPeriod
	if s.period <= 0 {
		s.period = timer.DefaultRefreshPeriod
	}

	if err := s.level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return s, fmt.Errorf("log level: %w", err)
	}

	s.mode = strings.ToLower(c.Mode)
	switch s.mode {
	case modeTUI:
		if s.manual {
			return s, errors.New("manual clock requires -mode shell")
		}
	case modeShell:
	default:
		return s, fmt.Errorf("unknown mode %q (want tui or shell)", c.Mode)
	}

	s.journal = c.JournalPath
	s.logFile = c.LogFile
	s.audio = c.Audio
	return s, nil
}
