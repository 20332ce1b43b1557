package scftests

import (
	"context"
	"time"

	"github.com/scf-platform/api-contract-tests/framework"
	"github.com/scf-platform/api-contract-tests/servicedef"
)

// Suite is the supply chain finance workflow for one environment.
type Suite struct {
	Config Config
	// Signer produces login credentials. PlaceholderSigner is used if it is nil.
	Signer Signer
	// Now is the clock for timestamps, due dates and contract numbers. time.Now is used if it
	// is nil.
	Now func() time.Time
}

// Steps returns the workflow in execution order.
//
// The core company's login is critical, since the receivable it creates is the input to
// everything after it. The other actors' logins are not; if one fails, only the steps that
// need that actor's token are skipped.
func (s Suite) Steps() []framework.Step {
	cfg := s.Config.WithDefaults()
	signer := s.Signer
	if signer == nil {
		signer = PlaceholderSigner{}
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}
	core := cfg.Actors.CoreCompany
	supplier := cfg.Actors.Supplier
	financier := cfg.Actors.Financier

	steps := []framework.Step{healthStep(cfg.HealthURL)}
	for _, actor := range cfg.Actors.All() {
		steps = append(steps, registerStep(actor))
	}
	steps = append(steps,
		loginStep(core, signer, now, true),
		loginStep(supplier, signer, now, false),
		loginStep(financier, signer, now, false),
		profileStep(core),

		createReceivableStep(cfg, now),
		listStep("receivables/list", core.Role, servicedef.PathReceivables, "receivables"),
		receivableDetailStep(core.Role),
		confirmReceivableStep(supplier.Role),

		applyFinanceStep(cfg, supplier.Role),
		listStep("finance/list", supplier.Role, servicedef.PathFinanceApplication, "finance applications"),
		applicationDetailStep(supplier.Role),
		approveFinanceStep(cfg),
	)
	return steps
}

// RunTestSuite runs the whole workflow and returns its report.
func RunTestSuite(ctx context.Context, runner *framework.Runner, suite Suite) *framework.Report {
	return runner.Run(ctx, suite.Steps())
}
