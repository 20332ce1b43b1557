package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/scf-platform/api-contract-tests/framework"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withoutColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })
}

func TestConsoleStepLogger(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	logger := &ConsoleStepLogger{Output: &buf, DebugOutputOnFailure: true}
	debugOutput := framework.CapturedOutput{{Time: time.Now(), Message: ">> POST /auth/login"}}

	logger.StepStarted(framework.NewStepID("register/supplier"))
	logger.StepFinished(framework.StepResult{
		StepID:  framework.NewStepID("register/supplier"),
		Outcome: framework.Passed{Message: "registered 供应商B", Warning: "供应商B is already registered"},
	}, debugOutput)
	logger.StepFinished(framework.StepResult{
		StepID:   framework.NewStepID("login/core_company"),
		Critical: true,
		Outcome:  framework.Failed{Reason: "login failed: HTTP 401"},
	}, debugOutput)
	logger.StepSkipped(framework.NewStepID("receivables/create"), "critical step login/core_company failed")

	out := buf.String()
	assert.Contains(t, out, "ℹ [register/supplier]\n")
	assert.Contains(t, out, "  ✓ registered 供应商B\n")
	assert.Contains(t, out, "  ⚠ 供应商B is already registered\n")
	assert.Contains(t, out, "  ✗ login failed: HTTP 401\n")
	assert.Contains(t, out, "  FAILED (critical): login/core_company\n")
	assert.Contains(t, out, "  SKIPPED: receivables/create (critical step login/core_company failed)\n")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("DEBUG")), "debug output should only follow the failure")
}

func TestConsoleStepLoggerUsesReportColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })

	var buf bytes.Buffer
	logger := &ConsoleStepLogger{Output: &buf}
	logger.StepFinished(framework.StepResult{
		StepID:  framework.NewStepID("health"),
		Outcome: framework.Passed{Message: "backend is up"},
	}, nil)
	logger.StepSkipped(framework.NewStepID("finance/apply"), "missing precondition")

	assert.Equal(t,
		framework.PassColor.Sprintf("  ✓ %s\n", "backend is up")+
			framework.WarnColor.Sprintf("  SKIPPED: %s (%s)\n", "finance/apply", "missing precondition"),
		buf.String())
}
