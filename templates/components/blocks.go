package components

import (
	"strconv"

	"cfa_site/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TestimonialRating is the number of star glyphs on every testimonial card.
// It is a fixed decoration, not a score.
const TestimonialRating = 5

// Block kinds, exposed as data-block on each rendered block
const (
	BlockFeature     = "feature"
	BlockStep        = "step"
	BlockIntegration = "integration"
	BlockTestimonial = "testimonial"
	BlockCompliance  = "compliance"
)

// Blocks renders one block per item, in the order given. Nothing is filtered,
// sorted or merged; an empty slice yields no blocks.
func Blocks[T any](items []T, block func(index int, item T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	// g.Map does not pass the index, which every block renders as data-index
	for i, item := range items {
		nodes = append(nodes, block(i, item))
	}
	return nodes
}

func blockAttrs(kind string, index int, class string) []g.Node {
	return []g.Node{
		h.Class(class),
		g.Attr("data-block", kind),
		g.Attr("data-index", strconv.Itoa(index)),
	}
}

// Card wraps children in the toolkit card container, tagged as a block
func Card(kind string, index int, class string, children ...g.Node) g.Node {
	nodes := blockAttrs(kind, index, join("rounded-lg border bg-card shadow-sm", class))
	return h.Div(append(nodes, children...)...)
}

func FeatureCard(i int, f models.FeatureItem) g.Node {
	return Card(BlockFeature, i, "p-6 hover:shadow-lg transition-shadow duration-300",
		h.Div(h.Class("space-y-4"),
			h.Div(h.Class("w-12 h-12 bg-primary/10 rounded-lg flex items-center justify-center"),
				Icon(f.Icon, "w-6 h-6 text-primary"),
			),
			h.H3(h.Class("text-xl font-semibold text-foreground"), g.Text(f.Title)),
			h.P(h.Class("text-muted-foreground"), g.Text(f.Description)),
		),
	)
}

func StepBlock(i int, s models.StepItem) g.Node {
	nodes := blockAttrs(BlockStep, i, "text-center space-y-4")
	return h.Div(append(nodes,
		h.Div(h.Class("w-16 h-16 bg-gradient-to-r from-primary to-accent rounded-full flex items-center justify-center mx-auto"),
			h.Span(h.Class("text-white font-bold text-lg"), g.Text(s.Step)),
		),
		h.H3(h.Class("text-xl font-semibold text-foreground"), g.Text(s.Title)),
		h.P(h.Class("text-muted-foreground"), g.Text(s.Description)),
	)...)
}

func IntegrationCard(i int, it models.IntegrationItem) g.Node {
	return Card(BlockIntegration, i, "p-4 text-center hover:shadow-md transition-shadow",
		h.Div(h.Class("p-2"),
			h.Div(h.Class("w-12 h-12 bg-primary/10 rounded-lg mx-auto mb-3 flex items-center justify-center text-2xl"),
				g.Text(it.Logo),
			),
			h.P(h.Class("font-medium text-foreground"), g.Text(it.Name)),
		),
	)
}

// TestimonialCard returns the block renderer for testimonials. ratingLabel is
// the accessible description of the star row.
func TestimonialCard(ratingLabel string) func(int, models.TestimonialItem) g.Node {
	return func(i int, t models.TestimonialItem) g.Node {
		return Card(BlockTestimonial, i, "p-6 text-center",
			h.Div(h.Class("space-y-6"),
				h.Div(h.Class("space-y-2"),
					h.Div(h.Class("text-3xl font-bold text-primary"), g.Text(t.Metric)),
					h.P(h.Class("text-sm text-muted-foreground"), g.Text(t.Benefit)),
				),
				h.Div(h.Class("space-y-4"),
					Rating(TestimonialRating, ratingLabel),
					h.P(h.Class("text-foreground italic"), g.Text("\""+t.Quote+"\"")),
					h.P(h.Class("text-sm text-muted-foreground font-medium"), g.Text(t.Company)),
				),
			),
		)
	}
}

// Rating renders n star glyphs
func Rating(n int, label string) g.Node {
	stars := make([]g.Node, 0, n+3)
	stars = append(stars, h.Class("flex justify-center space-x-1"), g.Attr("role", "img"), g.Attr("aria-label", label))
	for i := 0; i < n; i++ {
		stars = append(stars, Icon("star", "w-5 h-5 fill-yellow-400 text-yellow-400"))
	}
	return h.Div(stars...)
}

func ComplianceCard(i int, c models.ComplianceItem) g.Node {
	return Card(BlockCompliance, i, "p-6 text-center",
		h.Div(h.Class("space-y-4"),
			h.Div(h.Class("w-16 h-16 bg-success/10 rounded-full flex items-center justify-center mx-auto"),
				Icon(c.Icon, "w-8 h-8 text-success"),
			),
			h.H3(h.Class("text-xl font-semibold text-foreground"), g.Text(c.Title)),
			h.P(h.Class("text-muted-foreground"), g.Text(c.Description)),
		),
	)
}
