package estatetests

import (
	"net/http"

	"github.com/clickestate/api-contract-tests/framework"
	"github.com/clickestate/api-contract-tests/servicedef"
)

// The AI endpoints are for realtors only, so an admin token must be rejected with 403. A 403
// rather than a 404 also shows that the route exists.
type aiEndpoint struct {
	name           string
	path           string
	payload        interface{}
	minimalPayload interface{}
}

const sampleImageURL = "https://images.unsplash.com/photo-1560518883-ce09059eeffa?w=400"

var aiEndpoints = []aiEndpoint{
	{
		name: "AI Generate Description",
		path: servicedef.PathAIGenerateDescription,
		payload: servicedef.GenerateDescriptionParams{
			Title:        "Test Property",
			PropertyType: "house",
		},
		minimalPayload: servicedef.GenerateDescriptionParams{Title: "Test Property"},
	},
	{
		name: "AI Improve Description",
		path: servicedef.PathAIImproveDescription,
		payload: servicedef.ImproveDescriptionParams{
			CurrentDescription: "Test description",
			Instructions:       "Make it better",
		},
		minimalPayload: servicedef.ImproveDescriptionParams{CurrentDescription: "Test description"},
	},
	{
		name:           "AI Analyze Image",
		path:           servicedef.PathAIAnalyzeImage,
		payload:        servicedef.AnalyzeImageParams{ImageURL: sampleImageURL},
		minimalPayload: servicedef.AnalyzeImageParams{ImageURL: sampleImageURL},
	},
}

func (s *testSuite) doAIEndpointTests(t *framework.Context) {
	t.Run("without auth", func(t *framework.Context) {
		t.Harness().WithoutToken(func() {
			for _, e := range aiEndpoints {
				t.RunTest(e.name+" (No Auth)", http.MethodPost, e.path, http.StatusUnauthorized, e.payload, nil)
			}
		})
	})

	t.Run("with admin token", func(t *framework.Context) {
		if !requireAdminToken(t, "AI Endpoints Admin Token Test") {
			return
		}
		for _, e := range aiEndpoints {
			t.RunTest(e.name+" (Admin Token - Should Fail)", http.MethodPost, e.path, http.StatusForbidden,
				e.payload, nil)
		}
	})

	t.Run("endpoints exist", func(t *framework.Context) {
		if !requireAdminToken(t, "AI Endpoints Structure Test") {
			return
		}
		for _, e := range aiEndpoints {
			t.RunTest(e.name+" Endpoint Exists", http.MethodPost, e.path, http.StatusForbidden,
				e.minimalPayload, nil)
		}
	})
}
