package estatetests

import (
	"github.com/clickestate/api-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type testSuite struct {
	fixtures Fixtures
}

// RunTestSuite runs every scenario group against the harness's service, in a fixed order, and
// returns the accumulated results. Later groups depend on earlier ones: the admin token obtained
// by "authentication" is used by "admin functionality" and "AI endpoints".
func RunTestSuite(harness *framework.TestHarness, fixtures Fixtures) framework.Results {
	s := &testSuite{fixtures: fixtures}

	harness.Run("basic connectivity", s.doConnectivityTests)
	harness.Run("authentication", s.doAuthenticationTests)
	harness.Run("public endpoints", s.doPublicEndpointTests)
	harness.Run("authorization", s.doAuthorizationTests)
	harness.Run("admin functionality", s.doAdminTests)
	harness.Run("AI endpoints", s.doAIEndpointTests)
	harness.Run("payments", s.doPaymentTests)
	harness.Run("webhooks", s.doWebhookTests)
	harness.Run("infrastructure", s.doInfrastructureTests)

	return harness.Results()
}

// requireAdminToken records a failure and returns false if no admin token is held, which
// happens when the login scenario failed or was filtered out.
func requireAdminToken(t *framework.Context, testName string) bool {
	if t.Harness().Token().IsDefined() {
		return true
	}
	t.LogTest(testName, false, "No admin token available")
	return false
}

func hasKey(object ldvalue.Value, key string) bool {
	for _, k := range object.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
