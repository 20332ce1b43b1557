package scftests

import (
	"fmt"
	"net/http"
	"time"

	"github.com/scf-platform/api-contract-tests/framework"
	"github.com/scf-platform/api-contract-tests/servicedef"
)

// contractNumber is derived from the current time, so repeated runs against the same server do
// not trip its duplicate contract number check.
func contractNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%d", prefix, now.UnixNano()/int64(time.Millisecond))
}

func createReceivableStep(cfg Config, now func() time.Time) framework.Step {
	issuer := cfg.Actors.CoreCompany.Role
	return framework.Step{
		Name:     "receivables/create",
		Requires: []framework.Key{TokenKey(issuer)},
		Action: func(c *framework.StepContext) framework.Outcome {
			t := now()
			params := servicedef.CreateReceivableParams{
				Supplier:       cfg.Actors.Supplier.Address,
				Amount:         cfg.Receivable.Amount,
				DueTime:        t.AddDate(0, 0, cfg.Receivable.DueInDays).Format(time.RFC3339),
				Description:    cfg.Receivable.Description,
				ContractNumber: contractNumber(cfg.Receivable.ContractPrefix, t),
			}
			c.Debug("contract number: %s", params.ContractNumber)
			resp := c.Send(authorized(c, issuer, http.MethodPost, servicedef.PathReceivables, params))
			env, failed := requireSuccess(resp, "creating receivable", http.StatusOK, http.StatusCreated)
			if failed != nil {
				return failed
			}
			id := env.Field("receivableId")
			if id == "" {
				return framework.Fail("creating receivable failed: response did not contain a receivableId")
			}
			return framework.Passed{
				Message: fmt.Sprintf("created receivable %s", id),
				Exports: map[framework.Key]string{
					KeyReceivableID:     id,
					KeyReceivableTxHash: env.Field("txHash"),
				},
			}
		},
	}
}

// listStep is a smoke test of a list endpoint: the call must succeed and report a total.
func listStep(name string, role Role, path, noun string) framework.Step {
	return framework.Step{
		Name:     name,
		Requires: []framework.Key{TokenKey(role)},
		Action: func(c *framework.StepContext) framework.Outcome {
			resp := c.Send(authorized(c, role, http.MethodGet, path, nil))
			env, failed := requireSuccess(resp, "listing "+noun)
			if failed != nil {
				return failed
			}
			if !env.HasField("total") {
				return framework.Fail("listing %s failed: response did not contain a total", noun)
			}
			return framework.Passed{Message: fmt.Sprintf("listed %s %s", env.Field("total"), noun)}
		},
	}
}

func receivableDetailStep(role Role) framework.Step {
	return framework.Step{
		Name:     "receivables/detail",
		Requires: []framework.Key{TokenKey(role), KeyReceivableID},
		Action: func(c *framework.StepContext) framework.Outcome {
			id := c.Value(KeyReceivableID)
			resp := c.Send(authorized(c, role, http.MethodGet, receivablePath(id), nil))
			if _, failed := requireSuccess(resp, "fetching receivable "+id); failed != nil {
				return failed
			}
			return framework.Passed{Message: fmt.Sprintf("fetched receivable %s", id)}
		},
	}
}

// confirmReceivableStep confirms the receivable as its holder, the supplier.
func confirmReceivableStep(role Role) framework.Step {
	return framework.Step{
		Name:     "receivables/confirm",
		Requires: []framework.Key{TokenKey(role), KeyReceivableID},
		Action: func(c *framework.StepContext) framework.Outcome {
			id := c.Value(KeyReceivableID)
			resp := c.Send(authorized(c, role, http.MethodPost, receivablePath(id, "confirm"), nil))
			if _, failed := requireSuccess(resp, "confirming receivable "+id); failed != nil {
				return failed
			}
			return framework.Passed{Message: fmt.Sprintf("confirmed receivable %s", id)}
		},
	}
}
