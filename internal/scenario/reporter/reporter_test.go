package reporter_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/feduss/CustomInfiniTime/internal/scenario/loader"
	"github.com/feduss/CustomInfiniTime/internal/scenario/reporter"
	"github.com/feduss/CustomInfiniTime/internal/scenario/runner"
)

func createResult(id, name string, passed bool, err error) *runner.Result {
	return &runner.Result{
		Scenario:  &loader.Scenario{ID: id, Name: name},
		Passed:    passed,
		Error:     err,
		SessionID: "0123456789abcdef",
		Duration:  100 * time.Millisecond,
		StepResults: []*runner.StepResult{
			{
				Step:      &loader.Step{Action: "advance", Duration: "85s"},
				StepIndex: 0,
				Passed:    true,
			},
			{
				Step:      &loader.Step{Action: "refresh", Repeat: 3},
				StepIndex: 1,
				Passed:    passed,
				ExpectResults: map[string]*runner.ExpectResult{
					"display": {
						Key:      "display",
						Expected: "00:05",
						Actual:   "00:05",
						Passed:   passed,
						Message:  "00:05",
					},
				},
			},
		},
	}
}

func createSuiteResult() *runner.SuiteResult {
	return &runner.SuiteResult{
		SuiteName: "Scenarios",
		Results: []*runner.Result{
			createResult("SC-001", "First", true, nil),
			createResult("SC-002", "Second & <more>", false, errors.New("step 2 (refresh): boom")),
		},
		PassCount: 1,
		FailCount: 1,
		Duration:  500 * time.Millisecond,
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, false)

	r.ReportSuite(createSuiteResult())
	output := buf.String()

	for _, want := range []string{
		"=== Suite: Scenarios ===",
		"[PASS] SC-001 - First",
		"[FAIL] SC-002",
		"Error: step 2 (refresh): boom",
		"Total:   2",
		"Passed:  1",
		"Failed:  1",
		"Pass Rate: 50.0%",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}
	if strings.Contains(output, "Step 1") {
		t.Error("non-verbose output should not list steps")
	}
}

func TestTextReporterVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewTextReporter(&buf, true)

	r.ReportScenario(createResult("SC-001", "First", true, nil))
	output := buf.String()

	if !strings.Contains(output, "[PASS] Step 1: advance 85s") {
		t.Errorf("missing advance step:\n%s", output)
	}
	if !strings.Contains(output, "[PASS] Step 2: refresh x3") {
		t.Errorf("missing refresh step:\n%s", output)
	}
	if !strings.Contains(output, "[OK] display: 00:05") {
		t.Errorf("missing expectation line:\n%s", output)
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(&buf, false)

	r.ReportSuite(createSuiteResult())

	var result reporter.JSONSuiteResult
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if result.SuiteName != "Scenarios" {
		t.Errorf("SuiteName = %q, want Scenarios", result.SuiteName)
	}
	if result.Total != 2 || result.Passed != 1 || result.Failed != 1 {
		t.Errorf("totals = %d/%d/%d, want 2/1/1", result.Total, result.Passed, result.Failed)
	}
	if len(result.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, want 2", len(result.Scenarios))
	}
	failed := result.Scenarios[1]
	if failed.Status != "failed" || failed.Error == "" {
		t.Errorf("failed scenario = %+v", failed)
	}
	if failed.SessionID != "0123456789abcdef" {
		t.Errorf("SessionID = %q", failed.SessionID)
	}
	if len(failed.Steps) != 2 || failed.Steps[1].Expects["display"].Expected != "00:05" {
		t.Errorf("steps = %+v", failed.Steps)
	}
}

func TestJSONReporterPretty(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJSONReporter(&buf, true)

	r.ReportScenario(createResult("SC-001", "First", true, nil))

	if !strings.Contains(buf.String(), "\n  \"id\": \"SC-001\"") {
		t.Errorf("pretty output not indented:\n%s", buf.String())
	}
}

func TestJUnitReporter(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJUnitReporter(&buf)

	r.ReportSuite(createSuiteResult())
	output := buf.String()

	if !strings.HasPrefix(output, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(output, `<testsuite name="Scenarios" tests="2" failures="1"`) {
		t.Errorf("bad testsuite element:\n%s", output)
	}
	if !strings.Contains(output, `name="Second &amp; &lt;more&gt;"`) {
		t.Errorf("name not escaped:\n%s", output)
	}
	if strings.Count(output, "<failure") != 1 {
		t.Errorf("want exactly one failure:\n%s", output)
	}
}

func TestJUnitReporterSingleScenario(t *testing.T) {
	var buf bytes.Buffer
	r := reporter.NewJUnitReporter(&buf)

	r.ReportScenario(createResult("SC-009", "Solo", true, nil))

	if !strings.Contains(buf.String(), `<testsuite name="SC-009" tests="1" failures="0"`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range []string{"", "text", "json", "junit"} {
		if _, err := reporter.New(format, &buf, false); err != nil {
			t.Errorf("New(%q) error = %v", format, err)
		}
	}
	if _, err := reporter.New("csv", &buf, false); err == nil {
		t.Error("New(csv) succeeded")
	}
}
