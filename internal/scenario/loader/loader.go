package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/feduss/CustomInfiniTime/pkg/duration"
	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// ParseScenario parses and validates a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks required fields and step parameters.
func Validate(sc *Scenario) error {
	if sc.ID == "" {
		return &LoadError{Message: "scenario ID is required"}
	}
	if _, err := timer.ParseFlavor(sc.Flavor); err != nil {
		return &LoadError{Message: "invalid flavor", Cause: err}
	}
	if len(sc.Targets) > 2 {
		return &LoadError{Message: "at most two targets allowed"}
	}
	if len(sc.Steps) == 0 {
		return &LoadError{Message: "scenario must have at least one step"}
	}

	for i, step := range sc.Steps {
		if err := validateStep(&step); err != nil {
			var le *LoadError
			if errors.As(err, &le) {
				le.Step = i + 1
				return le
			}
			return &LoadError{Step: i + 1, Message: err.Error()}
		}
	}
	return nil
}

func validateStep(step *Step) error {
	if step.Slot != "" {
		if _, err := timer.ParseSlot(step.Slot); err != nil {
			return &LoadError{Message: "invalid slot", Cause: err}
		}
	}

	switch step.Action {
	case ActionPlay, ActionStop, ActionPress:
		if step.Slot == "" {
			return &LoadError{Message: step.Action + " requires a slot"}
		}
	case ActionAdvance:
		if step.Duration == "" && step.Ticks == 0 {
			return &LoadError{Message: "advance requires duration or ticks"}
		}
		if step.Duration != "" {
			if _, err := ParseAdvance(step.Duration); err != nil {
				return &LoadError{Message: "invalid duration", Cause: err}
			}
		}
	case ActionRefresh, ActionClose:
	case "":
		return &LoadError{Message: "action is required"}
	default:
		return &LoadError{Message: "unknown action " + step.Action}
	}

	if step.Repeat < 0 {
		return &LoadError{Message: "repeat must not be negative"}
	}
	return nil
}

// ParseAdvance parses an advance duration. Unlike slot targets it accepts
// zero and sub-second values ("500ms").
func ParseAdvance(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		if d < 0 {
			return 0, errors.New("negative duration")
		}
		return d, nil
	}
	d, err := duration.Parse(s)
	if err != nil {
		return 0, err
	}
	return d.Std(), nil
}

// LoadScenario loads a scenario from a file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	sc, err := ParseScenario(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return sc, nil
}

// LoadDirectory loads all scenarios from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Scenario, error) {
	var scenarios []*Scenario

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		sc, err := LoadScenario(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}
