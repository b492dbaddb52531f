package estatetests

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
)

const (
	fakeAdminToken   = "admin-token"
	fakeRealtorToken = "realtor-token"
)

// fakeBackend behaves like a freshly seeded ClickEstate backend, with knobs for breaking
// individual behaviors.
type fakeBackend struct {
	adminUsername string
	adminPassword string
	plans         map[string]interface{}
	noAIRoutes    bool
	noCORS        bool
	checkoutError string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		adminUsername: "admin",
		adminPassword: "admin123",
		plans: map[string]interface{}{
			"starter":   map[string]interface{}{"name": "Starter", "price": 29.0},
			"pro":       map[string]interface{}{"name": "Pro", "price": 79.0},
			"unlimited": map[string]interface{}{"name": "Unlimited", "price": 199.0},
		},
		checkoutError: "Stripe not configured - STRIPE_API_KEY not set",
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{"ok": false, "error": message}
}

func (b *fakeBackend) requireRole(role string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorResponse("Missing token"))
			return
		}
		var tokenRole string
		switch strings.TrimPrefix(auth, "Bearer ") {
		case fakeAdminToken:
			tokenRole = "platform_admin"
		case fakeRealtorToken:
			tokenRole = "realtor"
		default:
			writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid token"))
			return
		}
		if tokenRole != role {
			writeJSON(w, http.StatusForbidden, errorResponse("Forbidden"))
			return
		}
		handler.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	ok := httphelpers.HandlerWithJSONResponse(map[string]interface{}{"ok": true}, nil)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "service": "clickestate"})
	})

	mux.HandleFunc("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var params map[string]string
		_ = json.NewDecoder(r.Body).Decode(&params)
		if params["username"] != b.adminUsername || params["password"] != b.adminPassword {
			writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid admin credentials"))
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "token": fakeAdminToken})
	})

	mux.Handle("/api/public/agency/", httphelpers.HandlerWithResponse(http.StatusNotFound, nil,
		[]byte(`{"ok":false,"error":"Agency not found"}`)))
	mux.HandleFunc("/api/public/listings", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("agencyIds") == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse("agencyIds is required"))
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "listings": []interface{}{}})
	})
	mux.Handle("/api/public/featured", httphelpers.HandlerWithJSONResponse(
		map[string]interface{}{"ok": true, "listings": []interface{}{}}, nil))
	mux.Handle("/api/public/plans", httphelpers.HandlerWithJSONResponse(
		map[string]interface{}{"ok": true, "plans": b.plans}, nil))

	mux.Handle("/api/admin/summary", b.requireRole("platform_admin", httphelpers.HandlerWithJSONResponse(
		map[string]interface{}{"ok": true, "summary": map[string]int{"agencies": 2, "listings": 7}}, nil)))
	mux.Handle("/api/admin/agencies", b.requireRole("platform_admin", ok))
	mux.Handle("/api/admin/listings", b.requireRole("platform_admin", ok))
	mux.Handle("/api/realtor/listings", b.requireRole("realtor", ok))

	if !b.noAIRoutes {
		mux.Handle("/api/ai/generate-description", b.requireRole("realtor", ok))
		mux.Handle("/api/ai/improve-description", b.requireRole("realtor", ok))
		mux.Handle("/api/ai/analyze-image", b.requireRole("realtor", ok))
	}

	mux.HandleFunc("/api/payments/checkout", func(w http.ResponseWriter, r *http.Request) {
		var params map[string]string
		_ = json.NewDecoder(r.Body).Decode(&params)
		if params["planId"] == "" || params["originUrl"] == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse("planId and originUrl are required"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse(b.checkoutError))
	})

	mux.HandleFunc("/api/webhook/stripe", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Stripe-Signature") != "valid" {
			writeJSON(w, http.StatusBadRequest, errorResponse("Webhook signature verification failed"))
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"received": true})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && !b.noCORS {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		mux.ServeHTTP(w, r)
	})
}
