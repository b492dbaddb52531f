package framework

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const maxDetailsLength = 200

// Response is what came back from one request made with Context.Do.
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is the decoded JSON body, or {"raw_response": <text>} if the body was not JSON.
	Body    ldvalue.Value
	RawBody []byte
}

// RunTest makes one request and records whether the response status was expectedStatus.
//
// The method must be GET, POST, PUT, or DELETE; data is sent as a JSON body only for POST and
// PUT. The returned value is the decoded response body. If the request could not be made at
// all, the result is recorded as a failure and the returned body is an empty object.
func (c *Context) RunTest(
	name string,
	method string,
	endpoint string,
	expectedStatus int,
	data interface{},
	headers map[string]string,
) (bool, ldvalue.Value) {
	h := c.harness
	h.testLogger.RequestStarted(c.id, name, method, h.URL(endpoint))

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		c.LogTest(name, false, fmt.Sprintf("Request failed: unsupported method %q", method))
		return false, emptyObject()
	}

	resp, err := c.Do(method, endpoint, data, headers)
	if err != nil {
		c.LogTest(name, false, fmt.Sprintf("Request failed: %s", err))
		return false, emptyObject()
	}

	success := resp.StatusCode == expectedStatus
	c.LogTest(name, success, formatDetails(resp))
	return success, resp.Body
}

// Do makes one request with the same headers and body rules as RunTest, but does not record a
// result. Scenarios that judge something other than the status code use it and then call
// LogTest themselves.
func (c *Context) Do(method, endpoint string, data interface{}, headers map[string]string) (Response, error) {
	h := c.harness

	var body []byte
	if data != nil && (method == http.MethodPost || method == http.MethodPut) {
		encoded, err := json.Marshal(data)
		if err != nil {
			return Response{}, fmt.Errorf("could not encode request body: %w", err)
		}
		body = encoded
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, h.URL(endpoint), bodyReader)
	if err != nil {
		return Response{}, err
	}
	req.Header = h.requestHeaders(uuid.NewString(), headers)

	c.debugLogger.Printf("Request: %s", curlCommand(req, body))
	resp, err := h.client.Do(req)
	if err != nil {
		c.debugLogger.Printf("Request error: %s", err)
		return Response{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.debugLogger.Printf("Error reading response body: %s", err)
		return Response{}, fmt.Errorf("error reading response body: %w", err)
	}
	c.debugLogger.Printf("Response: HTTP %d\n%s", resp.StatusCode, string(raw))

	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       decodeBody(raw),
		RawBody:    raw,
	}, nil
}

func decodeBody(raw []byte) ldvalue.Value {
	var value ldvalue.Value
	if err := json.Unmarshal(raw, &value); err != nil {
		return ldvalue.ObjectBuild().Set("raw_response", ldvalue.String(string(raw))).Build()
	}
	return value
}

func emptyObject() ldvalue.Value {
	return ldvalue.ObjectBuild().Build()
}

func formatDetails(resp Response) string {
	pretty, err := json.MarshalIndent(resp.Body, "", "  ")
	if err != nil {
		pretty = []byte(resp.Body.JSONString())
	}
	return fmt.Sprintf("Status: %d, Response: %s...", resp.StatusCode, truncate(string(pretty), maxDetailsLength))
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes])
}
