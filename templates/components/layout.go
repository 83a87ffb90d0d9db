package components

import (
	"context"

	"cfa_site/middleware"
	"cfa_site/models"
	"cfa_site/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindScript = middleware.TailwindCDN
	iconifyScript  = middleware.IconifyCDN + "/3/3.1.1/iconify.min.js"
)

// tailwindTheme maps the toolkit's semantic color names onto the palette
const tailwindTheme = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        primary: { DEFAULT: '#2563eb', foreground: '#ffffff' },
        accent: '#7c3aed',
        success: '#16a34a',
        secondary: '#f1f5f9',
        muted: { DEFAULT: '#f1f5f9', foreground: '#64748b' },
        foreground: '#0f172a',
        background: '#ffffff',
        card: '#ffffff'
      }
    }
  }
}`

// Document wraps body in the HTML shell: SEO meta, styling substrate and icon script.
// Every script carries the request's CSP nonce.
func Document(ctx context.Context, seo *models.SEO, assets AssetURLs, body ...g.Node) g.Node {
	nonce := middleware.GetNonce(ctx)
	scriptAttrs := func(extra ...g.Node) []g.Node {
		nodes := extra
		if nonce != "" {
			nodes = append(nodes, g.Attr("nonce", nonce))
		}
		return nodes
	}

	return h.Doctype(
		h.HTML(h.Lang(i18n.GetLocale(ctx)),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				SEOMeta(seo),
				h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(assets.URL(middleware.FaviconFile)+"?v="+middleware.GetFaviconVersion(ctx))),
				h.Link(h.Rel("stylesheet"), h.Href(assets.URL(middleware.StylesheetFile)+"?v="+middleware.GetCSSVersion(ctx))),
				h.Script(scriptAttrs(h.Src(tailwindScript))...),
				h.Script(scriptAttrs(g.Raw(tailwindTheme))...),
				h.Script(scriptAttrs(h.Src(iconifyScript), g.Attr("defer"))...),
			),
			h.Body(append([]g.Node{h.Class("bg-background text-foreground antialiased")}, body...)...),
		),
	)
}

// SEOMeta renders the title, description, canonical, Open Graph and Twitter tags
func SEOMeta(seo *models.SEO) g.Node {
	if seo == nil {
		return nil
	}

	nodes := []g.Node{
		h.TitleEl(g.Text(seo.Title)),
		h.Meta(h.Name("description"), h.Content(seo.Description)),
	}
	if seo.Keywords != "" {
		nodes = append(nodes, h.Meta(h.Name("keywords"), h.Content(seo.Keywords)))
	}
	if seo.NoIndex {
		nodes = append(nodes, h.Meta(h.Name("robots"), h.Content("noindex, nofollow")))
	}
	if seo.Canonical != "" {
		nodes = append(nodes, h.Link(h.Rel("canonical"), h.Href(seo.Canonical)))
		for _, alt := range seo.AltLocales {
			nodes = append(nodes, h.Link(h.Rel("alternate"), g.Attr("hreflang", alt), h.Href(seo.AlternateURL(alt))))
		}
	}

	nodes = append(nodes,
		h.Meta(g.Attr("property", "og:title"), h.Content(seo.GetOGTitle())),
		h.Meta(g.Attr("property", "og:description"), h.Content(seo.GetOGDesc())),
		h.Meta(g.Attr("property", "og:type"), h.Content(seo.OGType)),
		h.Meta(g.Attr("property", "og:locale"), h.Content(seo.Locale)),
		h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),
	)
	if seo.Canonical != "" {
		nodes = append(nodes, h.Meta(g.Attr("property", "og:url"), h.Content(seo.Canonical)))
	}
	if seo.OGImage != "" {
		nodes = append(nodes,
			h.Meta(g.Attr("property", "og:image"), h.Content(seo.OGImage)),
			h.Meta(h.Name("twitter:image"), h.Content(seo.OGImage)),
		)
	}

	return g.Group(nodes)
}
