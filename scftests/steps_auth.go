package scftests

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/scf-platform/api-contract-tests/framework"
	"github.com/scf-platform/api-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// alreadyRegisteredMarker appears in the message of the 400 response to a duplicate
// registration.
const alreadyRegisteredMarker = "已注册"

// healthStep probes the liveness endpoint, which lives outside the API prefix. Nothing else can
// succeed against a dead backend, so it is critical.
func healthStep(healthURL string) framework.Step {
	return framework.Step{
		Name:     "health",
		Critical: true,
		Action: func(c *framework.StepContext) framework.Outcome {
			resp := c.Send(framework.Request{Method: http.MethodGet, Path: healthURL})
			if resp.TransportFailed() {
				return framework.Fail("health check failed: %s", resp.Err)
			}
			if resp.StatusCode != http.StatusOK {
				return framework.Fail("health check failed: HTTP %d", resp.StatusCode)
			}
			return framework.Passed{Message: "backend is up"}
		},
	}
}

// registerStep registers an actor. A 400 saying the address is already registered is accepted
// with a warning, so the suite can be re-run against a server that keeps its state.
func registerStep(actor Actor) framework.Step {
	return framework.Step{
		Name: "register/" + string(actor.Role),
		Action: func(c *framework.StepContext) framework.Outcome {
			resp := c.Send(framework.Request{
				Method: http.MethodPost,
				Path:   servicedef.PathRegister,
				Body: servicedef.RegisterParams{
					Address:       actor.Address,
					Role:          string(actor.Role),
					CompanyName:   actor.CompanyName,
					ContactPerson: optionalString(actor.ContactPerson),
					ContactEmail:  optionalString(actor.ContactEmail),
				},
			})
			switch {
			case resp.HasStatus(http.StatusOK, http.StatusCreated):
				return framework.Passed{Message: fmt.Sprintf("registered %s", actor.CompanyName)}
			case resp.HasStatus(http.StatusBadRequest):
				env, _ := servicedef.ParseEnvelope(resp.JSON)
				if strings.Contains(env.Message, alreadyRegisteredMarker) {
					return framework.Passed{
						Message: fmt.Sprintf("registered %s", actor.CompanyName),
						Warning: fmt.Sprintf("%s is already registered", actor.CompanyName),
					}
				}
				return framework.Fail("registration failed: %s", messageOrBody(env, resp))
			default:
				return framework.Fail("registration failed: %s", resp.Describe())
			}
		},
	}
}

// loginStep logs an actor in and exports its session token under TokenKey(actor.Role).
func loginStep(actor Actor, signer Signer, now func() time.Time, critical bool) framework.Step {
	return framework.Step{
		Name:     "login/" + string(actor.Role),
		Critical: critical,
		Action: func(c *framework.StepContext) framework.Outcome {
			message, signature, err := signer.Sign(actor.Address, now())
			if err != nil {
				return framework.Fail("could not sign login message: %s", err)
			}
			resp := c.Send(framework.Request{
				Method: http.MethodPost,
				Path:   servicedef.PathLogin,
				Body: servicedef.LoginParams{
					Address:   actor.Address,
					Signature: signature,
					Message:   message,
				},
			})
			env, failed := requireSuccess(resp, "login")
			if failed != nil {
				return failed
			}
			token := env.Data.GetByKey("token").StringValue()
			if token == "" {
				return framework.Fail("login failed: response did not contain a token")
			}
			return framework.Passed{
				Message: fmt.Sprintf("logged in as %s", actor.CompanyName),
				Exports: map[framework.Key]string{TokenKey(actor.Role): token},
			}
		},
	}
}

// profileStep fetches the current user for an actor's token.
func profileStep(actor Actor) framework.Step {
	return framework.Step{
		Name:     "profile/" + string(actor.Role),
		Requires: []framework.Key{TokenKey(actor.Role)},
		Action: func(c *framework.StepContext) framework.Outcome {
			resp := c.Send(authorized(c, actor.Role, http.MethodGet, servicedef.PathCurrentUser, nil))
			env, failed := requireSuccess(resp, "fetching current user")
			if failed != nil {
				return failed
			}
			if name := env.Field("company_name"); name != "" {
				return framework.Passed{Message: fmt.Sprintf("current user is %s", name)}
			}
			return framework.Passed{Message: "fetched current user"}
		},
	}
}

func optionalString(s string) ldvalue.OptionalString {
	if s == "" {
		return ldvalue.OptionalString{}
	}
	return ldvalue.NewOptionalString(s)
}
