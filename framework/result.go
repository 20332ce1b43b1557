package framework

import (
	"fmt"
	"strings"
	"time"
)

// StepID identifies a step by its path, such as ["register", "supplier"].
type StepID struct {
	Path []string
}

func NewStepID(name string) StepID {
	return StepID{Path: strings.Split(name, "/")}
}

func (t StepID) String() string {
	return strings.Join(t.Path, "/")
}

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Outcome is what a step reports about itself. It is always one of Passed, Failed or Skipped.
type Outcome interface {
	Status() Status
	Description() string
}

// Passed is a successful step. Exports are written to the Store once the step has finished.
// Warning is set when the step passed only because a known failure was tolerated.
type Passed struct {
	Message string
	Warning string
	Exports map[Key]string
}

// Failed is a step that ran and did not succeed.
type Failed struct {
	Reason string
}

// Skipped is a step that was never attempted. Missing lists the Store keys whose absence
// prevented it from running, if that was the reason.
type Skipped struct {
	Reason  string
	Missing []Key
}

func (Passed) Status() Status  { return StatusPassed }
func (Failed) Status() Status  { return StatusFailed }
func (Skipped) Status() Status { return StatusSkipped }

func (p Passed) Description() string {
	if p.Warning != "" {
		return p.Message + " (warning: " + p.Warning + ")"
	}
	return p.Message
}

func (f Failed) Description() string { return f.Reason }

func (s Skipped) Description() string {
	if len(s.Missing) == 0 {
		return s.Reason
	}
	names := make([]string, 0, len(s.Missing))
	for _, k := range s.Missing {
		names = append(names, string(k))
	}
	return fmt.Sprintf("%s: %s", s.Reason, strings.Join(names, ", "))
}

// Fail is a shortcut for a Failed outcome with a formatted reason.
func Fail(format string, args ...interface{}) Outcome {
	return Failed{Reason: fmt.Sprintf(format, args...)}
}

// StepResult is the recorded outcome of one scheduled step.
type StepResult struct {
	StepID   StepID
	Critical bool
	Outcome  Outcome
	Duration time.Duration
}

func (r StepResult) Status() Status {
	return r.Outcome.Status()
}

// Warning returns the warning attached to a passed step, if any.
func (r StepResult) Warning() string {
	if p, ok := r.Outcome.(Passed); ok {
		return p.Warning
	}
	return ""
}

type StepFailure struct {
	ID     StepID
	Reason string
}

func (f StepFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Reason)
}
