package content

import (
	"os"
	"path/filepath"
	"testing"

	"cfa_site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Features.Items, 6)
	assert.Len(t, c.Steps.Items, 4)
	assert.Len(t, c.Integrations.Items, 12)
	assert.Len(t, c.Testimonials.Items, 3)
	assert.Len(t, c.Compliance.Items, 3)

	assert.NoError(t, Validate(c))
}

func TestDefaultIsParsedOnce(t *testing.T) {
	a := MustDefault()
	b := MustDefault()
	assert.Same(t, a, b)
}

func TestDefaultCopy(t *testing.T) {
	c := MustDefault()

	t.Run("FifthFeature", func(t *testing.T) {
		f := c.Features.Items[4]
		assert.Equal(t, "Agent-to-Agent Architecture", f.Title)
		assert.Equal(t, "Explainable decisions with deterministic sub-agents for trust and compliance.", f.Description)
		assert.Equal(t, "brain", f.Icon)
	})

	t.Run("FirstIntegration", func(t *testing.T) {
		assert.Equal(t, "Google Sheets", c.Integrations.Items[0].Name)
		assert.Equal(t, "📊", c.Integrations.Items[0].Logo)
		assert.Equal(t, "Paddle", c.Integrations.Items[11].Name)
	})

	t.Run("SecondTestimonial", func(t *testing.T) {
		tm := c.Testimonials.Items[1]
		assert.Equal(t, "€7,200", tm.Metric)
		assert.Equal(t, "Digital Agency", tm.Company)
		assert.Equal(t, "Revenue recovered", tm.Benefit)
	})

	t.Run("StepsInDeclarationOrder", func(t *testing.T) {
		var labels []string
		for _, s := range c.Steps.Items {
			labels = append(labels, s.Step)
		}
		assert.Equal(t, []string{"01", "02", "03", "04"}, labels)
	})

	t.Run("Partner", func(t *testing.T) {
		assert.Equal(t, "ACI.dev", c.Partner.Name)
		assert.Equal(t, "images/aci-logo.png", c.Partner.LogoKey)
	})
}

func TestParse(t *testing.T) {
	t.Run("SyntheticTables", func(t *testing.T) {
		c, err := Parse([]byte(`
features:
  heading: Only one
  items:
    - { icon: star, title: T, description: D }
integrations:
  items: []
`))
		require.NoError(t, err)
		assert.Equal(t, "Only one", c.Features.Heading)
		assert.Equal(t, []models.FeatureItem{{Icon: "star", Title: "T", Description: "D"}}, c.Features.Items)
		assert.Empty(t, c.Integrations.Items)
		assert.Empty(t, c.Testimonials.Items)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		_, err := Parse([]byte("features: [unterminated"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("EmptyPathUsesEmbedded", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Same(t, MustDefault(), c)
	})

	t.Run("OverrideFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte("brand:\n  name: Override\n"), 0644))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Override", c.Brand.Name)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	c := &models.Content{
		Features:     models.FeatureSection{Items: []models.FeatureItem{{Icon: "x", Title: ""}}},
		Testimonials: models.TestimonialSection{Items: []models.TestimonialItem{{Quote: "q", Metric: "m", Company: "c", Benefit: "b"}}},
	}

	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "features[0]: title is empty")
	assert.Contains(t, err.Error(), "features[0]: description is empty")
	assert.NotContains(t, err.Error(), "testimonials")

	assert.NoError(t, Validate(&models.Content{}))
}
