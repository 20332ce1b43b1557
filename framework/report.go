package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Process exit codes for a finished run.
const (
	ExitOK            = 0
	ExitFailures      = 1
	ExitHalted        = 2
	ExitInvalidParams = 3
	ExitInterrupted   = 130
)

const summaryRule = "============================================================"

// Report aggregates the results of a run. Total counts executed steps only, so Total is always
// Passed + Failed; skipped steps are counted separately.
type Report struct {
	RunID   string
	State   RunState
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Results []StepResult
}

func NewReport(runID string) *Report {
	return &Report{RunID: runID, State: Running}
}

// Record adds a step result and updates the counters.
func (r *Report) Record(result StepResult) {
	r.Results = append(r.Results, result)
	switch result.Status() {
	case StatusPassed:
		r.Total++
		r.Passed++
	case StatusFailed:
		r.Total++
		r.Failed++
	case StatusSkipped:
		r.Skipped++
	}
}

// OK is true if no executed step failed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Result returns the recorded result for a step name, if there is one.
func (r *Report) Result(name string) (StepResult, bool) {
	for _, res := range r.Results {
		if res.StepID.String() == name {
			return res, true
		}
	}
	return StepResult{}, false
}

func (r *Report) Failures() []StepFailure {
	var ret []StepFailure
	for _, res := range r.Results {
		if f, ok := res.Outcome.(Failed); ok {
			ret = append(ret, StepFailure{ID: res.StepID, Reason: f.Reason})
		}
	}
	return ret
}

func (r *Report) Warnings() []StepResult {
	var ret []StepResult
	for _, res := range r.Results {
		if res.Warning() != "" {
			ret = append(ret, res)
		}
	}
	return ret
}

func (r *Report) ExitCode() int {
	switch {
	case r.State == Interrupted:
		return ExitInterrupted
	case r.State == HaltedByCriticalFailure:
		return ExitHalted
	case !r.OK():
		return ExitFailures
	default:
		return ExitOK
	}
}

// Console colors shared by the report and the step logger.
var (
	InfoColor = color.New(color.FgBlue)
	PassColor = color.New(color.FgGreen)
	FailColor = color.New(color.FgRed)
	WarnColor = color.New(color.FgYellow)
)

// PrintReport renders the summary of a run.
func PrintReport(w io.Writer, r *Report) {
	fmt.Fprintln(w, summaryRule)
	fmt.Fprintf(w, "Test summary (run %s)\n", r.RunID)
	fmt.Fprintln(w, summaryRule)
	fmt.Fprintf(w, "Total:   %d\n", r.Total)
	PassColor.Fprintf(w, "Passed:  %d\n", r.Passed)
	FailColor.Fprintf(w, "Failed:  %d\n", r.Failed)
	WarnColor.Fprintf(w, "Skipped: %d\n", r.Skipped)

	if failures := r.Failures(); len(failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed steps:")
		for _, f := range failures {
			FailColor.Fprintf(w, "  %s: %s\n", f.ID, firstLine(f.Reason))
		}
	}
	if warnings := r.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, res := range warnings {
			WarnColor.Fprintf(w, "  %s: %s\n", res.StepID, res.Warning())
		}
	}

	fmt.Fprintln(w)
	switch r.State {
	case HaltedByCriticalFailure:
		WarnColor.Fprintln(w, "Run halted after a critical failure; remaining steps were skipped")
	case Interrupted:
		WarnColor.Fprintln(w, "Run interrupted; remaining steps were skipped")
	}
	if r.OK() {
		PassColor.Fprintln(w, "✓ All tests passed")
	} else {
		WarnColor.Fprintln(w, "⚠ Some tests failed")
	}
	fmt.Fprintln(w, summaryRule)
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}
