package framework

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

const (
	reasonFiltered            = "excluded by filter parameters"
	reasonMissingPrecondition = "missing precondition"
	reasonInterrupted         = "run interrupted"
)

// RunState is the state of a run. A run starts Running and ends in exactly one of the others.
type RunState int

const (
	Running RunState = iota
	HaltedByCriticalFailure
	Interrupted
	Completed
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case HaltedByCriticalFailure:
		return "halted by critical failure"
	case Interrupted:
		return "interrupted"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

type RunnerConfig struct {
	Client     *Client
	Filter     Filter
	StepLogger StepLogger
	// DebugLogger receives harness-level messages such as state changes. May be nil.
	DebugLogger Logger
	// RunID tags every request of the run. A random one is generated if it is empty.
	RunID string
}

// Runner executes an ordered list of steps one at a time, threading a Store through them.
type Runner struct {
	client      *Client
	filter      Filter
	stepLogger  StepLogger
	debugLogger Logger
	runID       string
}

func NewRunner(config RunnerConfig) *Runner {
	r := &Runner{
		client:      config.Client,
		filter:      config.Filter,
		stepLogger:  config.StepLogger,
		debugLogger: config.DebugLogger,
		runID:       config.RunID,
	}
	if r.client == nil {
		r.client = NewClient("", nil)
	}
	if r.stepLogger == nil {
		r.stepLogger = nullStepLogger{}
	}
	if r.runID == "" {
		r.runID = uuid.New().String()
	}
	r.debugLogger = LoggerWithPrefix(config.DebugLogger, "["+r.runID+"] ")
	return r
}

func (r *Runner) RunID() string {
	return r.runID
}

// Run executes the steps in order and returns the finished report.
//
// A step is skipped, without being attempted, if it is excluded by the filter or if any of its
// required keys are missing from the Store. If a critical step fails, every step after it is
// skipped and the run ends HaltedByCriticalFailure. If ctx is cancelled, the step in progress
// and every step after it are skipped and the run ends Interrupted.
func (r *Runner) Run(ctx context.Context, steps []Step) *Report {
	report := NewReport(r.runID)
	store := NewStore()
	r.debugLogger.Printf("Run started with %d steps", len(steps))

	for i, step := range steps {
		id := step.ID()

		if ctx.Err() != nil {
			r.halt(report, Interrupted, steps[i:], reasonInterrupted)
			break
		}

		if r.filter != nil && !r.filter(id) {
			r.skip(report, step, Skipped{Reason: reasonFiltered})
			continue
		}

		if missing := store.Missing(step.Requires...); len(missing) > 0 {
			r.skip(report, step, Skipped{Reason: reasonMissingPrecondition, Missing: missing})
			continue
		}

		r.stepLogger.StepStarted(id)
		started := time.Now()
		outcome, debugOutput := r.runStep(ctx, step, store)
		if _, failed := outcome.(Failed); failed && ctx.Err() != nil {
			outcome = Skipped{Reason: reasonInterrupted}
		}
		result := StepResult{
			StepID:   id,
			Critical: step.Critical,
			Outcome:  outcome,
			Duration: time.Since(started),
		}
		report.Record(result)
		r.stepLogger.StepFinished(result, debugOutput)

		switch o := outcome.(type) {
		case Passed:
			for k, v := range o.Exports {
				if v != "" {
					store.Set(k, v)
				}
			}
		case Failed:
			if step.Critical {
				r.halt(report, HaltedByCriticalFailure, steps[i+1:],
					fmt.Sprintf("critical step %s failed", id))
			}
		case Skipped:
			if o.Reason == reasonInterrupted {
				r.halt(report, Interrupted, steps[i+1:], reasonInterrupted)
			}
		}
		if report.State != Running {
			break
		}
	}

	if report.State == Running {
		report.State = Completed
	}
	r.debugLogger.Printf("Run ended: %s; stored values: %v", report.State, store.Keys())
	return report
}

func (r *Runner) runStep(ctx context.Context, step Step, store *Store) (outcome Outcome, output CapturedOutput) {
	c := &StepContext{
		ctx:    ctx,
		id:     step.ID(),
		runID:  r.runID,
		store:  store,
		client: r.client,
	}
	defer func() {
		if rec := recover(); rec != nil {
			outcome = Fail("unexpected panic in step: %+v\n%s", rec, string(debug.Stack()))
		}
		output = c.debugLogger.Output()
	}()

	outcome = step.Action(c)
	if outcome == nil {
		outcome = Fail("step did not report an outcome")
	}
	return outcome, output
}

func (r *Runner) skip(report *Report, step Step, skipped Skipped) {
	report.Record(StepResult{StepID: step.ID(), Critical: step.Critical, Outcome: skipped})
	r.stepLogger.StepSkipped(step.ID(), skipped.Description())
}

func (r *Runner) halt(report *Report, state RunState, remaining []Step, reason string) {
	r.debugLogger.Printf("Run %s (%s)", state, reason)
	report.State = state
	for _, step := range remaining {
		r.skip(report, step, Skipped{Reason: reason})
	}
}
