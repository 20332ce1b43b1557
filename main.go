package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/scf-platform/api-contract-tests/framework"
	"github.com/scf-platform/api-contract-tests/scftests"

	"github.com/fatih/color"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes the suite and returns the process exit code. Cancelling ctx interrupts the run.
func run(ctx context.Context, args []string, out io.Writer) int {
	var params commandParams
	if !params.Read(args) {
		return framework.ExitInvalidParams
	}
	if params.noColor {
		color.NoColor = true
	}

	cfg, err := params.SuiteConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		return framework.ExitInvalidParams
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(out, "", log.LstdFlags)
	}

	runner := framework.NewRunner(framework.RunnerConfig{
		Client: framework.NewClient(cfg.BaseURL, &http.Client{Timeout: params.timeout}),
		Filter: params.filters.AsFilter,
		StepLogger: &ConsoleStepLogger{
			Output:               out,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		DebugLogger: mainDebugLogger,
	})

	printBanner(out)
	fmt.Fprintf(out, "API: %s\nHealth check: %s\n\n", cfg.BaseURL, cfg.HealthURL)
	framework.PrintFilterDescription(out, params.filters)
	framework.WarnColor.Fprintln(out, "Logins use a placeholder signature; a server that verifies signatures will reject them")
	fmt.Fprintln(out)

	report := scftests.RunTestSuite(ctx, runner, scftests.Suite{
		Config: cfg,
		Signer: scftests.PlaceholderSigner{},
	})

	fmt.Fprintln(out)
	if report.State == framework.Interrupted {
		framework.WarnColor.Fprintln(out, "Test run was interrupted by the user")
		fmt.Fprintln(out)
	}
	framework.PrintReport(out, report)
	return report.ExitCode()
}
