package estatetests

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixtures are the facts about one particular backend deployment that the tests depend on:
// seeded credentials, configured plans, and so on. They are not properties of the harness, so
// they can be overridden from a YAML file.
type Fixtures struct {
	AdminUsername string `yaml:"adminUsername"`
	AdminPassword string `yaml:"adminPassword"`

	// UnknownAgencyID must not exist in the backend.
	UnknownAgencyID string `yaml:"unknownAgencyId"`

	// Plans are checked in order against GET /api/public/plans.
	Plans []PlanFixture `yaml:"plans"`

	// PaymentProvider is the name a checkout failure is expected to mention, and the webhook
	// route suffix.
	PaymentProvider string `yaml:"paymentProvider"`
	CheckoutPlanID  string `yaml:"checkoutPlanId"`

	// CORSOrigin is sent as the Origin of the preflight request.
	CORSOrigin string `yaml:"corsOrigin"`
}

type PlanFixture struct {
	ID    string  `yaml:"id"`
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// DefaultFixtures matches a freshly seeded ClickEstate backend.
func DefaultFixtures() Fixtures {
	return Fixtures{
		AdminUsername:   "admin",
		AdminPassword:   "admin123",
		UnknownAgencyID: "TEST-AGENCY",
		Plans: []PlanFixture{
			{ID: "starter", Name: "Starter", Price: 29.0},
			{ID: "pro", Name: "Pro", Price: 79.0},
			{ID: "unlimited", Name: "Unlimited", Price: 199.0},
		},
		PaymentProvider: "stripe",
		CheckoutPlanID:  "starter",
		CORSOrigin:      "http://localhost:3000",
	}
}

// LoadFixtures reads a YAML fixtures file. Fields that are absent keep their default values;
// a plans list, if present, replaces the default list entirely.
func LoadFixtures(path string) (Fixtures, error) {
	f := DefaultFixtures()
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("could not read fixtures file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("malformed fixtures file %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return Fixtures{}, fmt.Errorf("invalid fixtures file %s: %w", path, err)
	}
	return f, nil
}

func (f Fixtures) Validate() error {
	if f.AdminUsername == "" {
		return errors.New("adminUsername must not be empty")
	}
	if f.UnknownAgencyID == "" {
		return errors.New("unknownAgencyId must not be empty")
	}
	if f.CORSOrigin == "" {
		return errors.New("corsOrigin must not be empty")
	}
	if f.PaymentProvider == "" {
		return errors.New("paymentProvider must not be empty")
	}
	seen := make(map[string]bool)
	for i, p := range f.Plans {
		if p.ID == "" {
			return fmt.Errorf("plan %d has no id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("plan %q is listed twice", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
