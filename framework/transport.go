package framework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// StatusTransportFailure is the StatusCode of a Response for a request that never got an HTTP
// response at all: connection refused, timeout, cancellation, or an unreadable body. It cannot
// collide with a real HTTP status.
const StatusTransportFailure = -1

const requestIDHeader = "X-Request-Id"

// Request describes one call to the API under test.
//
// Path is joined to the client's base URL, unless it is already an absolute http(s) URL. Body,
// if not nil, is encoded with json.Marshal. Token, if not empty, is sent as a bearer credential.
type Request struct {
	Method    string
	Path      string
	Body      interface{}
	Token     string
	RequestID string
}

// Response is the normalized result of a Request. Transport-level problems are reported here
// rather than as errors, with StatusCode set to StatusTransportFailure and Err set.
type Response struct {
	StatusCode int
	JSON       ldvalue.Value
	Text       string
	Err        error
}

// TransportFailed is true if the request never produced an HTTP response.
func (r Response) TransportFailed() bool {
	return r.StatusCode == StatusTransportFailure
}

// HasStatus is true if the response has any of the given status codes.
func (r Response) HasStatus(statuses ...int) bool {
	for _, s := range statuses {
		if r.StatusCode == s {
			return true
		}
	}
	return false
}

// Describe returns a short human-readable form of the response for failure messages.
func (r Response) Describe() string {
	if r.TransportFailed() {
		return fmt.Sprintf("request failed: %s", r.Err)
	}
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return fmt.Sprintf("HTTP %d", r.StatusCode)
	}
	return fmt.Sprintf("HTTP %d - %s", r.StatusCode, text)
}

func transportFailure(err error) Response {
	return Response{StatusCode: StatusTransportFailure, JSON: ldvalue.Null(), Err: err}
}

// Client issues requests against the API under test. It does not retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. If httpClient is nil, http.DefaultClient
// is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// URL returns the full URL for a request path.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http:") || strings.HasPrefix(path, "https:") {
		return path
	}
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// Send performs the request and always returns a Response; it never returns an error. The
// request and response are written to logger, which may be nil.
func (c *Client) Send(ctx context.Context, r Request, logger Logger) Response {
	if logger == nil {
		logger = NullLogger()
	}
	url := c.URL(r.Path)

	var data []byte
	if r.Body != nil {
		var err error
		if data, err = json.Marshal(r.Body); err != nil {
			logger.Printf("Could not encode request body: %s", err)
			return transportFailure(fmt.Errorf("could not encode request body: %w", err))
		}
	}

	var body io.Reader
	if data != nil {
		body = bytes.NewBuffer(data)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, url, body)
	if err != nil {
		logger.Printf("Could not create request: %s", err)
		return transportFailure(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	if r.RequestID != "" {
		req.Header.Set(requestIDHeader, r.RequestID)
	}

	logger.Printf(">> %s %s", r.Method, url)
	if data != nil {
		logger.Printf(">> body: %s", string(data))
	}
	logger.Printf(">> reproduce with: %s", curlCommand(req, data))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Printf("<< request failed: %s", err)
		return transportFailure(err)
	}
	respData, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		logger.Printf("<< HTTP %d, but body could not be read: %s", resp.StatusCode, err)
		return transportFailure(fmt.Errorf("malformed response: %w", err))
	}
	logger.Printf("<< HTTP %d: %s", resp.StatusCode, string(respData))

	return Response{
		StatusCode: resp.StatusCode,
		JSON:       parseJSONBody(respData),
		Text:       string(respData),
	}
}

func parseJSONBody(data []byte) ldvalue.Value {
	if len(bytes.TrimSpace(data)) == 0 {
		return ldvalue.Null()
	}
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return ldvalue.Null()
	}
	return v
}
