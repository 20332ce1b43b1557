package scftests

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/scf-platform/api-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func jsonHandler(status int, body interface{}) http.Handler {
	data, _ := json.Marshal(body)
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	return httphelpers.HandlerWithResponse(status, headers, data)
}

func success(data map[string]interface{}) http.Handler {
	return jsonHandler(200, map[string]interface{}{"success": true, "message": "ok", "data": data})
}

func failure(status int, message string) http.Handler {
	return jsonHandler(status, map[string]interface{}{"success": false, "message": message})
}

// loginHandler issues a distinct token per address, so tests can tell whose token was used.
func loginHandler(tokens map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Address string `json:"address"`
		}
		_ = json.NewDecoder(r.Body).Decode(&params)
		token, ok := tokens[params.Address]
		if !ok {
			failure(401, "签名验证失败，请重新签名").ServeHTTP(w, r)
			return
		}
		success(map[string]interface{}{"token": token}).ServeHTTP(w, r)
	})
}

// fakeBackend is a scripted stand-in for the API. Each route is an exact path; tests replace
// individual routes to simulate failures.
type fakeBackend struct {
	routes map[string]http.Handler
}

func newFakeBackend() *fakeBackend {
	cfg := DefaultConfig()
	return &fakeBackend{routes: map[string]http.Handler{
		"/health":            jsonHandler(200, map[string]interface{}{"status": "ok"}),
		"/api/auth/register": jsonHandler(201, map[string]interface{}{"success": true, "message": "注册成功"}),
		"/api/auth/login": loginHandler(map[string]string{
			cfg.Actors.CoreCompany.Address: "tok-core",
			cfg.Actors.Supplier.Address:    "tok-supplier",
			cfg.Actors.Financier.Address:   "tok-financier",
		}),
		"/api/auth/me":                   success(map[string]interface{}{"company_name": "核心企业A"}),
		"/api/receivables":               receivablesHandler(),
		"/api/receivables/R-001":         success(map[string]interface{}{"receivable_id": "R-001"}),
		"/api/receivables/R-001/confirm": success(map[string]interface{}{"receivableId": "R-001"}),
		"/api/finance/apply":             success(map[string]interface{}{"applicationId": 7, "txHash": "0xfeed"}),
		"/api/finance/applications":      success(map[string]interface{}{"total": 1, "items": []interface{}{}}),
		"/api/finance/applications/7":    success(map[string]interface{}{"application_id": "7"}),
		"/api/finance/7/approve":         success(map[string]interface{}{"applicationId": "7", "approved": true}),
	}}
}

func receivablesHandler() http.Handler {
	return httphelpers.HandlerForMethod(http.MethodPost,
		success(map[string]interface{}{"receivableId": "R-001", "txHash": "0xbeef"}),
		success(map[string]interface{}{"total": 3, "items": []interface{}{}}),
	)
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	for path, h := range b.routes {
		mux.Handle(path, h)
	}
	return mux
}

type runOutput struct {
	report   *framework.Report
	requests []httphelpers.HTTPRequestInfo
}

// requestsTo returns the recorded requests for a path, in order.
func (o runOutput) requestsTo(path string) []httphelpers.HTTPRequestInfo {
	var ret []httphelpers.HTTPRequestInfo
	for _, r := range o.requests {
		if r.Request.URL.Path == path {
			ret = append(ret, r)
		}
	}
	return ret
}

type requestBodyKey struct{}

// recordingHandler records requests like httphelpers.RecordingHandler, which consumes the
// request body, and hands the backend its own copy of the body.
func recordingHandler(backend http.Handler) (http.Handler, <-chan httphelpers.HTTPRequestInfo) {
	restoreBody := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if body, ok := r.Context().Value(requestBodyKey{}).([]byte); ok {
			r.Body = ioutil.NopCloser(bytes.NewReader(body))
		}
		backend.ServeHTTP(w, r)
	})
	recorder, requestsCh := httphelpers.RecordingHandler(restoreBody)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		r = r.WithContext(context.WithValue(r.Context(), requestBodyKey{}, body))
		r.Body = ioutil.NopCloser(bytes.NewReader(body))
		recorder.ServeHTTP(w, r)
	}), requestsCh
}

func runAgainst(backend *fakeBackend, configure ...func(*Config)) runOutput {
	var out runOutput
	handler, requestsCh := recordingHandler(backend.handler())
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		cfg := DefaultConfig()
		cfg.BaseURL = server.URL + "/api"
		for _, c := range configure {
			c(&cfg)
		}
		out.report = runSuite(context.Background(), cfg)
	})
	for {
		select {
		case r := <-requestsCh:
			out.requests = append(out.requests, r)
		default:
			return out
		}
	}
}

func runSuite(ctx context.Context, cfg Config) *framework.Report {
	return runSuiteWithSigner(ctx, cfg, PlaceholderSigner{})
}

func runSuiteWithSigner(ctx context.Context, cfg Config, signer Signer) *framework.Report {
	cfg = cfg.WithDefaults()
	runner := framework.NewRunner(framework.RunnerConfig{
		Client: framework.NewClient(cfg.BaseURL, nil),
		RunID:  "test-run",
	})
	return RunTestSuite(ctx, runner, Suite{Config: cfg, Signer: signer, Now: fixedClock})
}
