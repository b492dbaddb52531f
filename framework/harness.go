package framework

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultRequestTimeout bounds every request made by the harness.
const DefaultRequestTimeout = time.Second * 10

// TestHarness holds everything that persists across scenarios in one run: the fixed base URL of
// the service under test, the bearer token currently held (if any), and the accumulated results.
//
// It is not safe for concurrent use; scenarios run one after another.
type TestHarness struct {
	baseURL     string
	client      *http.Client
	token       ldvalue.OptionalString
	results     Results
	filter      Filter
	testLogger  TestLogger
	debugLogger Logger
}

// NewTestHarness creates a TestHarness for the service at baseURL. A zero timeout means
// DefaultRequestTimeout. The filter, testLogger, and debugLogger may be nil.
func NewTestHarness(
	baseURL string,
	timeout time.Duration,
	filter Filter,
	testLogger TestLogger,
	debugLogger Logger,
) (*TestHarness, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid service URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid service URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, errors.New("invalid service URL: no host")
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	return &TestHarness{
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      &http.Client{Timeout: timeout},
		filter:      filter,
		testLogger:  testLogger,
		debugLogger: debugLogger,
	}, nil
}

func (h *TestHarness) BaseURL() string {
	return h.baseURL
}

// URL returns the absolute URL for an endpoint path such as "/health".
func (h *TestHarness) URL(endpoint string) string {
	return h.baseURL + endpoint
}

// Token returns the bearer token currently held, if any.
func (h *TestHarness) Token() ldvalue.OptionalString {
	return h.token
}

// SetToken makes every subsequent request carry "Authorization: Bearer <token>".
func (h *TestHarness) SetToken(token string) {
	h.token = ldvalue.NewOptionalString(token)
	h.debugLogger.Printf("Holding bearer token (%d characters)", len(token))
}

// ClearToken drops the bearer token, so that subsequent requests are unauthenticated.
func (h *TestHarness) ClearToken() {
	h.token = ldvalue.OptionalString{}
	h.debugLogger.Printf("Cleared bearer token")
}

// WithoutToken runs action with no bearer token held, then restores whatever token was held
// before, even if action panics.
func (h *TestHarness) WithoutToken(action func()) {
	saved := h.token
	h.token = ldvalue.OptionalString{}
	defer func() { h.token = saved }()
	action()
}

// Results returns a snapshot of everything recorded so far.
func (h *TestHarness) Results() Results {
	ret := h.results
	ret.Tests = append([]TestResult(nil), h.results.Tests...)
	return ret
}

// Run runs a top-level scenario. See Context.Run.
func (h *TestHarness) Run(name string, action func(*Context)) {
	root := &Context{harness: h}
	root.Run(name, action)
}

func (h *TestHarness) record(id TestID, name string, success bool, details string) {
	result := TestResult{
		Name:      name,
		Scenario:  id,
		Success:   success,
		Details:   details,
		Timestamp: time.Now(),
	}
	h.results.add(result)
	h.testLogger.TestRecorded(id, result)
}

// requestHeaders builds the headers for one request: the JSON content type and a fresh request
// ID, then the caller's headers, then the bearer token if one is held. The token always wins
// over a caller-supplied Authorization header.
func (h *TestHarness) requestHeaders(requestID string, extra map[string]string) http.Header {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Request-Id", requestID)
	for k, v := range extra {
		headers.Set(k, v)
	}
	if h.token.IsDefined() {
		headers.Set("Authorization", "Bearer "+h.token.StringValue())
	}
	return headers
}
