package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scf-platform/api-contract-tests/framework"
)

type ConsoleStepLogger struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleStepLogger) StepStarted(id framework.StepID) {
	framework.InfoColor.Fprintf(c.Output, "ℹ [%s]\n", id)
}

func (c *ConsoleStepLogger) StepFinished(result framework.StepResult, debugOutput framework.CapturedOutput) {
	failed := false
	switch o := result.Outcome.(type) {
	case framework.Passed:
		framework.PassColor.Fprintf(c.Output, "  ✓ %s\n", o.Message)
		if o.Warning != "" {
			framework.WarnColor.Fprintf(c.Output, "  ⚠ %s\n", o.Warning)
		}
	case framework.Failed:
		failed = true
		for _, line := range strings.Split(o.Reason, "\n") {
			framework.FailColor.Fprintf(c.Output, "  ✗ %s\n", line)
		}
		if result.Critical {
			framework.FailColor.Fprintf(c.Output, "  FAILED (critical): %s\n", result.StepID)
		} else {
			framework.FailColor.Fprintf(c.Output, "  FAILED: %s\n", result.StepID)
		}
	case framework.Skipped:
		c.StepSkipped(result.StepID, o.Description())
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Output, "    DEBUG ")
	}
}

func (c *ConsoleStepLogger) StepSkipped(id framework.StepID, reason string) {
	if reason == "" {
		framework.WarnColor.Fprintf(c.Output, "  SKIPPED: %s\n", id)
	} else {
		framework.WarnColor.Fprintf(c.Output, "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "Supply chain finance API - end-to-end tests")
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w)
}
