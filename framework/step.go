package framework

import "context"

// Step describes one unit of the workflow.
//
// Requires lists the Store keys that must hold values before the step may run; if any are
// missing, the Runner records the step as skipped without calling Action. If a Critical step
// fails, the Runner stops and skips everything scheduled after it.
type Step struct {
	Name     string
	Critical bool
	Requires []Key
	Action   func(*StepContext) Outcome
}

func (s Step) ID() StepID {
	return NewStepID(s.Name)
}

// StepContext is what a step's Action sees: a read-only view of the Store and a way to talk to
// the API under test.
type StepContext struct {
	ctx         context.Context
	id          StepID
	runID       string
	store       *Store
	client      *Client
	debugLogger CapturingLogger
}

func (c *StepContext) ID() StepID {
	return c.id
}

func (c *StepContext) Context() context.Context {
	return c.ctx
}

// Value returns a value exported by an earlier step. Keys listed in the step's Requires are
// guaranteed to be present.
func (c *StepContext) Value(key Key) string {
	return c.store.Value(key)
}

// Send performs a request against the API under test, logging it to the step's debug output.
func (c *StepContext) Send(r Request) Response {
	if r.RequestID == "" && c.runID != "" {
		r.RequestID = c.runID + "/" + c.id.String()
	}
	return c.client.Send(c.ctx, r, &c.debugLogger)
}

// Debug logs some debug output for the step. The output is passed to the step logger when the
// step finishes.
func (c *StepContext) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *StepContext) DebugLogger() Logger {
	return &c.debugLogger
}
