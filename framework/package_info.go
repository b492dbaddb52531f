// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of black-box HTTP tests.
//
// The general model is:
//
// 1. A TestHarness talks to one service under test at a fixed base URL. It holds the bearer
// token, if any, that is attached to every request, and an append-only record of results.
//
// 2. Tests are grouped into scenarios. A Context is the scope of one scenario, similar to Go's
// *testing.T: it has a Run method for subscenarios and captures debug output that is only
// shown when asked for.
//
// 3. Within a scenario, RunTest makes one request and records whether the status code was as
// expected, returning the decoded body; LogTest records an ad-hoc assertion about a body that
// was already fetched. Every call to either one adds exactly one result.
//
// The domain-specific code that knows what is being tested is responsible for choosing the
// endpoints, payloads, expected statuses, and body assertions.
package framework
