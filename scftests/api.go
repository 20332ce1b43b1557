package scftests

import (
	"net/http"
	"net/url"

	"github.com/scf-platform/api-contract-tests/framework"
	"github.com/scf-platform/api-contract-tests/servicedef"
)

const (
	KeyReceivableID     framework.Key = "receivable.id"
	KeyReceivableTxHash framework.Key = "receivable.txHash"
	KeyApplicationID    framework.Key = "finance.applicationId"
)

// TokenKey is where the session token of the actor with the given role is stored. Tokens are
// kept per role so that a request made for one actor can never carry another actor's token.
func TokenKey(role Role) framework.Key {
	return framework.Key("token." + string(role))
}

func receivablePath(id string, subpaths ...string) string {
	p := servicedef.PathReceivables + "/" + url.PathEscape(id)
	for _, s := range subpaths {
		p += "/" + s
	}
	return p
}

func applicationPath(id string) string {
	return servicedef.PathFinanceApplication + "/" + url.PathEscape(id)
}

func approvePath(id string) string {
	return "/finance/" + url.PathEscape(id) + "/approve"
}

// authorized builds a request carrying the token of the actor with the given role.
func authorized(c *framework.StepContext, role Role, method, path string, body interface{}) framework.Request {
	return framework.Request{
		Method: method,
		Path:   path,
		Body:   body,
		Token:  c.Value(TokenKey(role)),
	}
}

// requireSuccess checks that a response has one of the accepted statuses and that its envelope
// reports success. On any mismatch it returns a Failed outcome describing what went wrong,
// prefixed with what the step was trying to do.
func requireSuccess(resp framework.Response, action string, statuses ...int) (servicedef.Envelope, framework.Outcome) {
	if len(statuses) == 0 {
		statuses = []int{http.StatusOK}
	}
	if resp.TransportFailed() || !resp.HasStatus(statuses...) {
		return servicedef.Envelope{}, framework.Fail("%s failed: %s", action, resp.Describe())
	}
	env, ok := servicedef.ParseEnvelope(resp.JSON)
	if !ok {
		return env, framework.Fail("%s failed: response was not a JSON object: %s", action, resp.Describe())
	}
	if !env.Success {
		return env, framework.Fail("%s failed: %s", action, messageOrBody(env, resp))
	}
	return env, nil
}

func messageOrBody(env servicedef.Envelope, resp framework.Response) string {
	if env.Message != "" {
		return env.Message
	}
	return resp.Describe()
}
