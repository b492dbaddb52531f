package estatetests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixturesFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultFixturesAreValid(t *testing.T) {
	f := DefaultFixtures()
	require.NoError(t, f.Validate())
	assert.Equal(t, []PlanFixture{
		{ID: "starter", Name: "Starter", Price: 29.0},
		{ID: "pro", Name: "Pro", Price: 79.0},
		{ID: "unlimited", Name: "Unlimited", Price: 199.0},
	}, f.Plans)
}

func TestLoadFixturesOverridesOnlyGivenFields(t *testing.T) {
	path := writeFixturesFile(t, `
adminUsername: root
plans:
  - id: basic
    name: Basic
    price: 9.5
`)
	f, err := LoadFixtures(path)
	require.NoError(t, err)

	expected := DefaultFixtures()
	expected.AdminUsername = "root"
	expected.Plans = []PlanFixture{{ID: "basic", Name: "Basic", Price: 9.5}}
	assert.Equal(t, expected, f)
}

func TestLoadFixturesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFixtures(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := LoadFixtures(writeFixturesFile(t, "plans: [this is: not valid"))
		assert.Error(t, err)
	})

	t.Run("duplicate plan", func(t *testing.T) {
		_, err := LoadFixtures(writeFixturesFile(t, `
plans:
  - id: pro
  - id: pro
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `plan "pro" is listed twice`)
	})

	t.Run("empty provider", func(t *testing.T) {
		_, err := LoadFixtures(writeFixturesFile(t, `paymentProvider: ""`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "paymentProvider")
	})
}
