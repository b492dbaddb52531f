package estatetests

import (
	"fmt"
	"net/http"

	"github.com/clickestate/api-contract-tests/framework"
	"github.com/clickestate/api-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func (s *testSuite) doConnectivityTests(t *framework.Context) {
	t.Run("health", func(t *framework.Context) {
		success, body := t.RunTest("Health Check", http.MethodGet, servicedef.PathHealth, http.StatusOK, nil, nil)
		if !success {
			return
		}
		if body.GetByKey(servicedef.FieldOK).Equal(ldvalue.Bool(true)) {
			t.LogTest("Health Response Format", true, "Contains 'ok: true'")
		} else {
			t.LogTest("Health Response Format", false, fmt.Sprintf("Expected 'ok: true', got: %s", body.JSONString()))
		}
	})
}

func (s *testSuite) doInfrastructureTests(t *framework.Context) {
	t.Run("CORS preflight", func(t *framework.Context) {
		headers := map[string]string{
			"Origin":                        s.fixtures.CORSOrigin,
			"Access-Control-Request-Method": http.MethodGet,
		}
		resp, err := t.Do(http.MethodOptions, servicedef.PathHealth, nil, headers)
		if err != nil {
			t.LogTest("CORS Headers", false, fmt.Sprintf("CORS test failed: %s", err))
			return
		}
		if origin := resp.Header.Get(servicedef.HeaderAllowOrigin); origin != "" {
			t.LogTest("CORS Headers", true, fmt.Sprintf("%s: %s", servicedef.HeaderAllowOrigin, origin))
		} else {
			t.LogTest("CORS Headers", false, "No CORS headers found")
		}
	})
}
