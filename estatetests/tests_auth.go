package estatetests

import (
	"fmt"
	"net/http"

	"github.com/clickestate/api-contract-tests/framework"
	"github.com/clickestate/api-contract-tests/servicedef"
)

func (s *testSuite) doAuthenticationTests(t *framework.Context) {
	t.Run("admin login", func(t *framework.Context) {
		params := servicedef.AdminLoginParams{
			Username: s.fixtures.AdminUsername,
			Password: s.fixtures.AdminPassword,
		}
		success, body := t.RunTest("Admin Login", http.MethodPost, servicedef.PathAdminLogin, http.StatusOK, params, nil)
		if !success {
			return
		}
		token := body.GetByKey(servicedef.FieldToken)
		if token.IsString() && token.StringValue() != "" {
			t.Harness().SetToken(token.StringValue())
			t.LogTest("Admin Token Received", true, fmt.Sprintf("Token length: %d", len(token.StringValue())))
		} else {
			t.LogTest("Admin Token Received", false, fmt.Sprintf("No token in response: %s", body.JSONString()))
		}
	})

	t.Run("admin login with invalid credentials", func(t *framework.Context) {
		params := servicedef.AdminLoginParams{Username: "invalid", Password: "invalid"}
		t.RunTest("Admin Login Invalid Credentials", http.MethodPost, servicedef.PathAdminLogin,
			http.StatusUnauthorized, params, nil)
	})
}

func (s *testSuite) doAuthorizationTests(t *framework.Context) {
	t.Harness().WithoutToken(func() {
		t.Run("admin summary requires auth", func(t *framework.Context) {
			t.RunTest("Admin Summary (No Auth)", http.MethodGet, servicedef.PathAdminSummary,
				http.StatusUnauthorized, nil, nil)
		})
		t.Run("realtor listings require auth", func(t *framework.Context) {
			t.RunTest("Realtor Listings (No Auth)", http.MethodGet, servicedef.PathRealtorListings,
				http.StatusUnauthorized, nil, nil)
		})
	})
}

func (s *testSuite) doAdminTests(t *framework.Context) {
	if !requireAdminToken(t, "Admin Protected Endpoints") {
		return
	}

	t.Run("summary", func(t *framework.Context) {
		success, body := t.RunTest("Admin Summary (With Auth)", http.MethodGet, servicedef.PathAdminSummary,
			http.StatusOK, nil, nil)
		if !success {
			return
		}
		if hasKey(body, servicedef.FieldSummary) {
			t.LogTest("Admin Summary Format", true, "Contains summary data")
		} else {
			t.LogTest("Admin Summary Format", false, fmt.Sprintf("Missing summary field: %s", body.JSONString()))
		}
	})

	t.Run("agencies", func(t *framework.Context) {
		t.RunTest("Admin Agencies List", http.MethodGet, servicedef.PathAdminAgencies, http.StatusOK, nil, nil)
	})

	t.Run("listings", func(t *framework.Context) {
		t.RunTest("Admin Listings List", http.MethodGet, servicedef.PathAdminListings, http.StatusOK, nil, nil)
	})
}
