// Package runner executes loaded scenarios against the timer engine.
package runner

import (
	"time"

	"github.com/feduss/CustomInfiniTime/internal/scenario/loader"
)

// Result represents the outcome of a single scenario.
type Result struct {
	// Scenario is the scenario that was executed.
	Scenario *loader.Scenario

	// Passed indicates if all steps passed.
	Passed bool

	// Error is the error that caused failure, if any.
	Error error

	// StepResults contains results for each executed step.
	StepResults []*StepResult

	// SessionID is the journal session of the engine under test.
	SessionID string

	// Duration is how long the scenario took.
	Duration time.Duration
}

// StepResult represents the outcome of a single step.
type StepResult struct {
	// Step is the step that was executed.
	Step *loader.Step

	// StepIndex is the index of this step (0-based).
	StepIndex int

	// Passed indicates if the step passed.
	Passed bool

	// Error is the error that caused failure, if any.
	Error error

	// ExpectResults maps expectation keys to their assertion results.
	ExpectResults map[string]*ExpectResult

	// Duration is how long the step took.
	Duration time.Duration
}

// ExpectResult represents the result of checking an expectation.
type ExpectResult struct {
	// Key is the expectation key, prefixed with the slot for slot checks
	// (e.g., "first.state").
	Key string

	// Expected is the expected value.
	Expected interface{}

	// Actual is the actual value.
	Actual interface{}

	// Passed indicates if the expectation was met.
	Passed bool

	// Message describes the result.
	Message string
}

// SuiteResult represents the outcome of running many scenarios.
type SuiteResult struct {
	// SuiteName identifies the suite.
	SuiteName string

	// Results contains results in scenario order.
	Results []*Result

	// PassCount is the number of passed scenarios.
	PassCount int

	// FailCount is the number of failed scenarios.
	FailCount int

	// Duration is the total wall time.
	Duration time.Duration
}
