package components

import (
	"html/template"
	"strings"
	"testing"

	"cfa_site/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, nodes ...g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, g.Group(nodes).Render(&b))
	return b.String()
}

func TestBlocksPreservesCountAndOrder(t *testing.T) {
	items := []models.StepItem{
		{Step: "03", Title: "Third", Description: "c"},
		{Step: "01", Title: "First", Description: "a"},
		{Step: "01", Title: "First", Description: "a"},
	}

	nodes := Blocks(items, StepBlock)
	require.Len(t, nodes, 3)

	html := render(t, nodes...)
	assert.Equal(t, 3, strings.Count(html, `data-block="step"`))

	// declaration order, duplicates kept
	third := strings.Index(html, "Third")
	first := strings.Index(html, "First")
	assert.True(t, third < first)
	assert.Equal(t, 2, strings.Count(html, "<h3 class=\"text-xl font-semibold text-foreground\">First</h3>"))
	assert.Contains(t, html, `data-index="2"`)
}

func TestBlocksEmpty(t *testing.T) {
	assert.Empty(t, Blocks([]models.FeatureItem{}, FeatureCard))
	assert.Empty(t, Blocks[models.IntegrationItem](nil, IntegrationCard))
	assert.Equal(t, "", render(t, Blocks([]models.ComplianceItem{}, ComplianceCard)...))
}

func TestBlocksPassesIndex(t *testing.T) {
	var seen []int
	Blocks([]string{"a", "b", "c"}, func(i int, s string) g.Node {
		seen = append(seen, i)
		return g.Text(s)
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestFeatureCard(t *testing.T) {
	f := models.FeatureItem{
		Icon:        "brain",
		Title:       "Agent-to-Agent Architecture",
		Description: "Explainable decisions with deterministic sub-agents for trust and compliance.",
	}
	html := render(t, FeatureCard(4, f))

	assert.Contains(t, html, ">"+f.Title+"<")
	assert.Contains(t, html, ">"+f.Description+"<")
	assert.Contains(t, html, `data-icon="lucide:brain"`)
	assert.Contains(t, html, `data-block="feature"`)
	assert.Contains(t, html, `data-index="4"`)
}

func TestFeatureCardKeepsTextVerbatim(t *testing.T) {
	f := models.FeatureItem{Icon: "x", Title: "Chat & Voice <Querying>", Description: "It's \"quoted\""}
	html := render(t, FeatureCard(0, f))

	// escaped on the wire, unchanged once decoded by the browser
	assert.Contains(t, html, template.HTMLEscapeString(f.Title))
	assert.Contains(t, html, template.HTMLEscapeString(f.Description))
	assert.NotContains(t, html, "<Querying>")
}

func TestComplianceCard(t *testing.T) {
	c := models.ComplianceItem{Icon: "shield", Title: "GDPR Compliant", Description: "Full compliance with European data protection regulations"}
	html := render(t, ComplianceCard(0, c))

	assert.Contains(t, html, ">GDPR Compliant<")
	assert.Contains(t, html, ">Full compliance with European data protection regulations<")
	assert.Contains(t, html, `data-icon="lucide:shield"`)
	assert.Contains(t, html, `data-block="compliance"`)
}

func TestIntegrationCard(t *testing.T) {
	html := render(t, IntegrationCard(0, models.IntegrationItem{Name: "Google Sheets", Logo: "📊"}))
	assert.Contains(t, html, ">📊<")
	assert.Contains(t, html, ">Google Sheets<")
}

func TestTestimonialCardHasFiveStars(t *testing.T) {
	cards := []models.TestimonialItem{
		{Quote: "q", Metric: "€7,200", Company: "Digital Agency", Benefit: "Revenue recovered"},
		{},
	}

	for i, tm := range cards {
		html := render(t, TestimonialCard("Rated 5 out of 5")(i, tm))
		assert.Equal(t, TestimonialRating, strings.Count(html, `data-icon="lucide:star"`))
		assert.Contains(t, html, `aria-label="Rated 5 out of 5"`)
	}

	html := render(t, TestimonialCard("")(1, cards[0]))
	assert.Contains(t, html, ">€7,200<")
	assert.Contains(t, html, ">Digital Agency<")
	assert.Contains(t, html, ">Revenue recovered<")
	assert.Contains(t, html, "&#34;q&#34;")
}

func TestRating(t *testing.T) {
	assert.Equal(t, 0, strings.Count(render(t, Rating(0, "none")), "lucide:star"))
	assert.Equal(t, 3, strings.Count(render(t, Rating(3, "three")), "lucide:star"))
}
