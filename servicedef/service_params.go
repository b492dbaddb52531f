// Package servicedef describes the HTTP interface of the ClickEstate backend as seen by the
// contract tests: route paths, request payloads, and the response fields the tests look at.
package servicedef

import "net/url"

// Routes of the service under test.
const (
	PathHealth     = "/health"
	PathAdminLogin = "/api/admin/login"

	PathPublicAgencyPrefix = "/api/public/agency/"
	PathPublicListings     = "/api/public/listings"
	PathPublicFeatured     = "/api/public/featured"
	PathPublicPlans        = "/api/public/plans"

	PathAdminSummary  = "/api/admin/summary"
	PathAdminAgencies = "/api/admin/agencies"
	PathAdminListings = "/api/admin/listings"

	PathRealtorListings = "/api/realtor/listings"

	PathAIGenerateDescription = "/api/ai/generate-description"
	PathAIImproveDescription  = "/api/ai/improve-description"
	PathAIAnalyzeImage        = "/api/ai/analyze-image"

	PathPaymentsCheckout = "/api/payments/checkout"
	PathWebhookPrefix    = "/api/webhook/"
)

// Headers the tests send or inspect.
const (
	HeaderStripeSignature = "Stripe-Signature"
	HeaderAllowOrigin     = "Access-Control-Allow-Origin"
)

// Response body field names.
const (
	FieldOK      = "ok"
	FieldToken   = "token"
	FieldSummary = "summary"
	FieldPlans   = "plans"
	FieldName    = "name"
	FieldPrice   = "price"
	FieldError   = "error"
)

type AdminLoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GenerateDescriptionParams struct {
	Title        string `json:"title"`
	PropertyType string `json:"property_type,omitempty"`
	Bedrooms     int    `json:"bedrooms,omitempty"`
	Bathrooms    int    `json:"bathrooms,omitempty"`
	Location     string `json:"location,omitempty"`
}

type ImproveDescriptionParams struct {
	CurrentDescription string `json:"currentDescription"`
	Instructions       string `json:"instructions,omitempty"`
}

type AnalyzeImageParams struct {
	ImageURL string `json:"imageUrl"`
}

type CheckoutParams struct {
	PlanID    string `json:"planId"`
	OriginURL string `json:"originUrl"`
}

// WebhookEvent is the minimal shape of a payment provider event.
type WebhookEvent struct {
	Type string `json:"type"`
}

// AgencyPath returns the public profile route for an agency ID.
func AgencyPath(agencyID string) string {
	return PathPublicAgencyPrefix + url.PathEscape(agencyID)
}

// WebhookPath returns the webhook route for a payment provider, e.g. "stripe".
func WebhookPath(provider string) string {
	return PathWebhookPrefix + provider
}
