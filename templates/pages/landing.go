package pages

import (
	"context"
	"io"

	"cfa_site/content"
	"cfa_site/models"
	"cfa_site/services"
	"cfa_site/services/i18n"
	ui "cfa_site/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LandingProps is everything a landing render reads. Content is never mutated.
type LandingProps struct {
	Content *models.Content
	SEO     *models.SEO
	Assets  ui.AssetURLs
}

// Landing returns the landing page as a templ component. Locale and CSP nonce
// are read from the render context.
func Landing(props LandingProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return LandingNode(ctx, props).Render(w)
	})
}

// DefaultLanding renders the embedded production content with assets from the
// local static directory and a clock-based cache-busting token.
func DefaultLanding() templ.Component {
	c := content.MustDefault()
	return Landing(LandingProps{
		Content: c,
		SEO:     models.DefaultSEO(c.Brand.FullName, c.Brand.Tagline),
		Assets:  services.NewAssetResolver(services.NewLocalStorage("static"), services.NewClockVersioner()),
	})
}

// LandingNode builds the complete page tree. Each call asks the asset resolver
// for fresh partner logo URLs, so two renders differ only in those tokens.
func LandingNode(ctx context.Context, props LandingProps) g.Node {
	c := props.Content
	return ui.Document(ctx, props.SEO, props.Assets,
		h.Div(h.Class("min-h-screen bg-background"),
			header(ctx, c.Brand),
			hero(ctx, c.Hero, props.Assets),
			features(c.Features),
			howItWorks(c.Steps),
			integrations(c.Integrations, c.Partner, props.Assets),
			partnership(c.Brand, c.Partner, props.Assets),
			testimonials(ctx, c.Testimonials),
			compliance(c.Compliance),
			callToAction(ctx, c.CTA),
			footer(ctx, c.Brand, c.Footer),
		),
	)
}

func logoMark(class string) g.Node {
	return h.Div(h.Class(class+" rounded-lg flex items-center justify-center"),
		ui.Icon("brain", "w-5 h-5 text-white"),
	)
}

func header(ctx context.Context, brand models.Brand) g.Node {
	navLink := func(href, key string) g.Node {
		return h.A(h.Href(href), h.Class("text-muted-foreground hover:text-foreground transition-colors"), g.Text(i18n.T(ctx, key)))
	}

	return h.Header(h.Class("border-b bg-white/80 backdrop-blur-sm sticky top-0 z-50"),
		h.Div(h.Class("container mx-auto px-4 py-4 flex justify-between items-center"),
			h.Div(h.Class("flex items-center space-x-2"),
				logoMark("w-8 h-8 bg-gradient-to-r from-primary to-primary/80"),
				h.Span(h.Class("text-xl font-bold text-foreground"), g.Text(brand.Name)),
			),
			h.Nav(h.Class("hidden md:flex space-x-8"),
				navLink("#features", "nav.features"),
				navLink("#integrations", "nav.integrations"),
				navLink("#how-it-works", "nav.how_it_works"),
			),
			h.Div(h.Class("flex items-center space-x-4"),
				languageSwitch(ctx),
				ui.Button(ui.VariantGhost, "", "", g.Text(i18n.T(ctx, "actions.sign_in"))),
				ui.Button(ui.VariantCTA, "", "", g.Text(i18n.T(ctx, "actions.try_free"))),
			),
		),
	)
}

func languageSwitch(ctx context.Context) g.Node {
	current := i18n.GetLocale(ctx)
	links := []g.Node{h.Class("flex items-center space-x-2 text-sm"), g.Attr("aria-label", i18n.T(ctx, "nav.language"))}
	for _, lang := range i18n.Languages() {
		class := "uppercase text-muted-foreground hover:text-foreground"
		if lang == current {
			class = "uppercase font-semibold text-foreground"
		}
		links = append(links, h.A(h.Href("?lang="+lang), h.Class(class), g.Attr("hreflang", lang), g.Text(lang)))
	}
	return h.Nav(links...)
}

func sectionHeading(sc models.SectionCopy, subClass string) g.Node {
	return h.Div(h.Class("text-center mb-16"),
		h.H2(h.Class("text-4xl font-bold text-foreground mb-4"), g.Text(sc.Heading)),
		g.If(sc.Subheading != "", h.P(h.Class("text-xl text-muted-foreground "+subClass), g.Text(sc.Subheading))),
	)
}

func tryAndDemoButtons(ctx context.Context, tryVariant, demoClass string) g.Node {
	return h.Div(h.Class("flex flex-col sm:flex-row gap-4"),
		ui.Button(tryVariant, "lg", "text-lg px-8 py-4",
			ui.Icon("play", "w-5 h-5 mr-2"),
			g.Text(i18n.T(ctx, "actions.try_free_long")),
		),
		ui.Button(ui.VariantOutline, "lg", "text-lg px-8 py-4 "+demoClass,
			g.Text(i18n.T(ctx, "actions.book_demo")),
			ui.Icon("arrow-right", "w-5 h-5 ml-2"),
		),
	)
}

func hero(ctx context.Context, hr models.Hero, assets ui.AssetURLs) g.Node {
	return h.Section(h.Class("py-20 bg-gradient-to-b from-muted/30 to-background"),
		h.Div(h.Class("container mx-auto px-4"),
			h.Div(h.Class("grid lg:grid-cols-2 gap-12 items-center"),
				h.Div(h.Class("space-y-8"),
					h.Div(h.Class("space-y-4"),
						ui.Badge(ui.VariantSecondary, "text-primary", hr.Badge),
						h.H1(h.Class("text-5xl lg:text-6xl font-bold text-foreground leading-tight"),
							g.Text(hr.Headline+" "),
							h.Span(h.Class("text-primary"), g.Text(hr.Highlight)),
						),
						h.P(h.Class("text-xl text-muted-foreground leading-relaxed"), g.Text(hr.Subheadline)),
					),
					tryAndDemoButtons(ctx, ui.VariantCTA, ""),
					chatPreview(hr.Chat),
				),
				h.Div(h.Class("relative"),
					h.Div(h.Class("absolute inset-0 bg-gradient-to-r from-primary/20 to-accent/20 rounded-2xl blur-3xl transform rotate-6")),
					h.Img(h.Src(assets.URL(hr.ImageKey)), h.Alt(hr.ImageAlt), h.Class("relative z-10 rounded-2xl shadow-2xl w-full")),
				),
			),
		),
	)
}

func chatPreview(chat models.ChatMessage) g.Node {
	return h.Div(h.Class("rounded-lg border shadow-sm p-6 bg-gradient-to-r from-muted/50 to-background border-l-4 border-l-primary"),
		h.Div(h.Class("space-y-4"),
			h.Div(h.Class("flex items-start space-x-3"),
				h.Div(h.Class("w-8 h-8 bg-secondary rounded-full flex items-center justify-center"),
					ui.Icon("message-circle", "w-4 h-4 text-muted-foreground"),
				),
				h.Div(h.Class("bg-secondary rounded-lg p-3 max-w-xs"),
					h.P(h.Class("text-sm"), g.Text("\""+chat.Question+"\"")),
				),
			),
			h.Div(h.Class("flex items-start space-x-3 justify-end"),
				h.Div(h.Class("bg-primary rounded-lg p-3 max-w-xs text-primary-foreground"),
					h.P(h.Class("text-sm"), g.Text(chat.Answer)),
				),
				h.Div(h.Class("w-8 h-8 bg-primary rounded-full flex items-center justify-center"),
					ui.Icon("brain", "w-4 h-4 text-primary-foreground"),
				),
			),
		),
	)
}

func features(s models.FeatureSection) g.Node {
	return h.Section(h.ID("features"), h.Class("py-20 bg-muted/30"),
		h.Div(h.Class("container mx-auto px-4"),
			sectionHeading(s.SectionCopy, "max-w-2xl mx-auto"),
			h.Div(h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"), g.Group(ui.Blocks(s.Items, ui.FeatureCard))),
		),
	)
}

func howItWorks(s models.StepSection) g.Node {
	return h.Section(h.ID("how-it-works"), h.Class("py-20"),
		h.Div(h.Class("container mx-auto px-4"),
			sectionHeading(s.SectionCopy, ""),
			h.Div(h.Class("grid md:grid-cols-4 gap-8"), g.Group(ui.Blocks(s.Items, ui.StepBlock))),
		),
	)
}

// partnerLogoStyle matches the logo's dark rendering on a white plate
const partnerLogoStyle = "filter: contrast(2) brightness(0.3)"

func integrations(s models.IntegrationSection, p models.Partner, assets ui.AssetURLs) g.Node {
	return h.Section(h.ID("integrations"), h.Class("py-20 bg-muted/30"),
		h.Div(h.Class("container mx-auto px-4"),
			sectionHeading(s.SectionCopy, "max-w-3xl mx-auto"),
			h.Div(h.Class("grid md:grid-cols-3 lg:grid-cols-4 gap-6"), g.Group(ui.Blocks(s.Items, ui.IntegrationCard))),
			h.Div(h.Class("mt-16 text-center"),
				h.Div(h.Class("flex items-center justify-center mb-4"),
					ui.Badge(ui.VariantSecondary, "text-accent mr-3", p.Badge),
					h.Img(h.Src(assets.BustedURL(p.LogoKey)), h.Alt(p.Name),
						h.Class("h-8 w-auto bg-white rounded px-2 py-1 border border-gray-300"),
						h.Style(partnerLogoStyle), g.Attr("data-partner-logo", "badge")),
				),
				h.P(h.Class("text-muted-foreground"), g.Text(p.Note)),
			),
		),
	)
}

func partnership(brand models.Brand, p models.Partner, assets ui.AssetURLs) g.Node {
	return h.Section(h.Class("py-20"),
		h.Div(h.Class("container mx-auto px-4"),
			sectionHeading(p.Partnership, "max-w-3xl mx-auto"),
			h.Div(h.Class("rounded-lg border shadow-sm p-8 bg-gradient-to-r from-primary/5 to-accent/5 border-primary/20 text-center"),
				h.Div(h.Class("space-y-6"),
					h.Div(h.Class("flex justify-center items-center space-x-8"),
						h.Div(h.Class("text-center"),
							h.Div(h.Class("w-16 h-16 bg-primary rounded-full flex items-center justify-center mx-auto mb-4"),
								ui.Icon("brain", "w-8 h-8 text-primary-foreground"),
							),
							h.P(h.Class("font-semibold text-foreground"), g.Text(brand.Name)),
						),
						h.Div(h.Class("flex items-center space-x-2"),
							h.Div(h.Class("w-8 h-0.5 bg-gradient-to-r from-primary to-accent")),
							ui.Icon("zap", "w-6 h-6 text-accent"),
							h.Div(h.Class("w-8 h-0.5 bg-gradient-to-r from-accent to-primary")),
						),
						h.Div(h.Class("text-center"),
							h.Img(h.Src(assets.BustedURL(p.LogoKey)), h.Alt(p.Name),
								h.Class("w-16 h-16 mx-auto mb-4 rounded-full p-3 bg-white shadow-lg border border-gray-300"),
								h.Style(partnerLogoStyle), g.Attr("data-partner-logo", "partnership")),
							h.P(h.Class("font-semibold text-foreground"), g.Text(p.Name)),
						),
					),
					h.P(h.Class("text-lg text-muted-foreground"), g.Text(p.Tagline)),
				),
			),
		),
	)
}

func testimonials(ctx context.Context, s models.TestimonialSection) g.Node {
	label := i18n.T(ctx, "testimonials.rating", map[string]interface{}{"count": ui.TestimonialRating})
	return h.Section(h.Class("py-20 bg-muted/30"),
		h.Div(h.Class("container mx-auto px-4"),
			sectionHeading(s.SectionCopy, "max-w-3xl mx-auto"),
			h.Div(h.Class("grid md:grid-cols-3 gap-8"), g.Group(ui.Blocks(s.Items, ui.TestimonialCard(label)))),
		),
	)
}

func compliance(s models.ComplianceSection) g.Node {
	return h.Section(h.Class("py-20"),
		h.Div(h.Class("container mx-auto px-4"),
			sectionHeading(s.SectionCopy, "max-w-3xl mx-auto"),
			h.Div(h.Class("grid md:grid-cols-3 gap-8"), g.Group(ui.Blocks(s.Items, ui.ComplianceCard))),
		),
	)
}

func callToAction(ctx context.Context, cta models.CallToAction) g.Node {
	perks := []g.Node{h.Class("flex justify-center items-center space-x-8 text-white/80 text-sm pt-8")}
	for _, p := range cta.Perks {
		perks = append(perks, h.Div(h.Class("flex items-center space-x-2"),
			ui.Icon(p.Icon, "w-4 h-4"),
			h.Span(g.Text(p.Label)),
		))
	}

	return h.Section(h.Class("py-20 bg-gradient-to-r from-primary to-accent"),
		h.Div(h.Class("container mx-auto px-4 text-center"),
			h.Div(h.Class("max-w-4xl mx-auto space-y-8"),
				h.H2(h.Class("text-5xl font-bold text-white"), g.Text(cta.Heading)),
				h.P(h.Class("text-xl text-white/90"), g.Text(cta.Subheading)),
				h.Div(h.Class("flex justify-center"),
					tryAndDemoButtons(ctx, ui.VariantSecondary, "border-white/20 text-white hover:bg-white/10 hover:border-white/40"),
				),
				h.Div(perks...),
			),
		),
	)
}

func footer(ctx context.Context, brand models.Brand, columns []models.FooterColumn) g.Node {
	grid := []g.Node{
		h.Class("grid md:grid-cols-4 gap-8"),
		h.Div(h.Class("space-y-4"),
			h.Div(h.Class("flex items-center space-x-2"),
				logoMark("w-8 h-8 bg-primary"),
				h.Span(h.Class("text-xl font-bold"), g.Text(brand.Name)),
			),
			h.P(h.Class("text-gray-400"), g.Text(brand.Tagline)),
		),
	}
	for _, col := range columns {
		links := []g.Node{h.Class("space-y-2 text-gray-400")}
		for _, l := range col.Links {
			links = append(links, h.A(h.Href(l.Href), h.Class("block hover:text-white transition-colors"), g.Text(i18n.T(ctx, l.Label))))
		}
		grid = append(grid, h.Div(
			h.H4(h.Class("font-semibold mb-4"), g.Text(i18n.T(ctx, col.Title))),
			h.Div(links...),
		))
	}

	return h.Footer(h.Class("py-12 bg-foreground text-white"),
		h.Div(h.Class("container mx-auto px-4"),
			h.Div(grid...),
			h.Div(h.Class("border-t border-gray-700 mt-8 pt-8 text-center text-gray-400"),
				h.P(g.Text(brand.Copyright)),
			),
		),
	)
}
