package framework

// StepLogger receives progress notifications from the Runner as a run proceeds.
type StepLogger interface {
	StepStarted(id StepID)
	StepFinished(result StepResult, debugOutput CapturedOutput)
	StepSkipped(id StepID, reason string)
}

type nullStepLogger struct{}

func (n nullStepLogger) StepStarted(StepID)                      {}
func (n nullStepLogger) StepFinished(StepResult, CapturedOutput) {}
func (n nullStepLogger) StepSkipped(StepID, string)              {}
