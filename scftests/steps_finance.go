package scftests

import (
	"fmt"
	"net/http"

	"github.com/scf-platform/api-contract-tests/framework"
	"github.com/scf-platform/api-contract-tests/servicedef"
)

// applyFinanceStep asks the financier to fund the receivable. It only needs the receivable to
// exist; whether the server insists on it being confirmed first is left to the server.
func applyFinanceStep(cfg Config, applicant Role) framework.Step {
	return framework.Step{
		Name:     "finance/apply",
		Requires: []framework.Key{TokenKey(applicant), KeyReceivableID},
		Action: func(c *framework.StepContext) framework.Outcome {
			params := servicedef.ApplyFinanceParams{
				ReceivableID:  c.Value(KeyReceivableID),
				Financier:     cfg.Actors.Financier.Address,
				FinanceAmount: cfg.Finance.Amount,
				InterestRate:  cfg.Finance.InterestRate,
			}
			resp := c.Send(authorized(c, applicant, http.MethodPost, servicedef.PathFinanceApply, params))
			env, failed := requireSuccess(resp, "applying for finance", http.StatusOK, http.StatusCreated)
			if failed != nil {
				return failed
			}
			id := env.Field("applicationId")
			if id == "" {
				return framework.Fail("applying for finance failed: response did not contain an applicationId")
			}
			return framework.Passed{
				Message: fmt.Sprintf("submitted finance application %s", id),
				Exports: map[framework.Key]string{KeyApplicationID: id},
			}
		},
	}
}

func applicationDetailStep(role Role) framework.Step {
	return framework.Step{
		Name:     "finance/detail",
		Requires: []framework.Key{TokenKey(role), KeyApplicationID},
		Action: func(c *framework.StepContext) framework.Outcome {
			id := c.Value(KeyApplicationID)
			resp := c.Send(authorized(c, role, http.MethodGet, applicationPath(id), nil))
			if _, failed := requireSuccess(resp, "fetching finance application "+id); failed != nil {
				return failed
			}
			return framework.Passed{Message: fmt.Sprintf("fetched finance application %s", id)}
		},
	}
}

// approveFinanceStep has the financier decide on the application.
func approveFinanceStep(cfg Config) framework.Step {
	financier := cfg.Actors.Financier.Role
	return framework.Step{
		Name:     "finance/approve",
		Requires: []framework.Key{TokenKey(financier), KeyApplicationID},
		Action: func(c *framework.StepContext) framework.Outcome {
			id := c.Value(KeyApplicationID)
			params := servicedef.ApproveFinanceParams{Approve: cfg.Finance.Approve}
			resp := c.Send(authorized(c, financier, http.MethodPost, approvePath(id), params))
			env, failed := requireSuccess(resp, "deciding finance application "+id)
			if failed != nil {
				return failed
			}
			verb := "rejected"
			if env.Data.GetByKey("approved").BoolValue() {
				verb = "approved"
			}
			return framework.Passed{Message: fmt.Sprintf("%s finance application %s", verb, id)}
		},
	}
}
