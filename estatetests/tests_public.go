package estatetests

import (
	"fmt"
	"net/http"

	"github.com/clickestate/api-contract-tests/framework"
	"github.com/clickestate/api-contract-tests/servicedef"
)

func (s *testSuite) doPublicEndpointTests(t *framework.Context) {
	t.Run("unknown agency", func(t *framework.Context) {
		t.RunTest("Public Agency Endpoint (Non-existent)", http.MethodGet,
			servicedef.AgencyPath(s.fixtures.UnknownAgencyID), http.StatusNotFound, nil, nil)
	})

	t.Run("listings without agency filter", func(t *framework.Context) {
		t.RunTest("Public Listings Endpoint (No Agency IDs)", http.MethodGet, servicedef.PathPublicListings,
			http.StatusBadRequest, nil, nil)
	})

	t.Run("featured listings", func(t *framework.Context) {
		t.RunTest("Public Featured Listings", http.MethodGet, servicedef.PathPublicFeatured, http.StatusOK, nil, nil)
	})

	t.Run("plans", s.doPlanTests)
}

func (s *testSuite) doPlanTests(t *framework.Context) {
	success, body := t.RunTest("Public Plans", http.MethodGet, servicedef.PathPublicPlans, http.StatusOK, nil, nil)
	if !success {
		return
	}
	plans := body.GetByKey(servicedef.FieldPlans)
	for _, expected := range s.fixtures.Plans {
		testName := fmt.Sprintf("Plan %q Pricing", expected.ID)
		plan := plans.GetByKey(expected.ID)
		if plan.IsNull() {
			t.LogTest(testName, false, fmt.Sprintf("Plan %q missing from response: %s", expected.ID, plans.JSONString()))
			continue
		}
		name, price := plan.GetByKey(servicedef.FieldName), plan.GetByKey(servicedef.FieldPrice)
		if name.StringValue() == expected.Name && price.IsNumber() && price.Float64Value() == expected.Price {
			t.LogTest(testName, true, fmt.Sprintf("%s at $%.2f", expected.Name, expected.Price))
		} else {
			t.LogTest(testName, false, fmt.Sprintf("Expected %s at $%.2f, got name %s and price %s",
				expected.Name, expected.Price, name.JSONString(), price.JSONString()))
		}
	}
}
