package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Button emphasis selectors
const (
	VariantDefault   = "default"
	VariantCTA       = "cta"
	VariantOutline   = "outline"
	VariantSecondary = "secondary"
	VariantGhost     = "ghost"
)

var buttonVariants = map[string]string{
	VariantDefault:   "bg-primary text-primary-foreground hover:bg-primary/90",
	VariantCTA:       "bg-gradient-to-r from-primary to-accent text-white shadow-lg hover:opacity-90",
	VariantOutline:   "border border-slate-300 bg-background hover:bg-muted",
	VariantSecondary: "bg-secondary text-foreground hover:bg-secondary/80",
	VariantGhost:     "hover:bg-muted",
}

var buttonSizes = map[string]string{
	"default": "h-10 px-4 py-2",
	"lg":      "h-11 rounded-md px-8",
}

// Button renders a toolkit button. Unknown variants and sizes fall back to the defaults.
func Button(variant, size, class string, children ...g.Node) g.Node {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants[VariantDefault]
	}
	s, ok := buttonSizes[size]
	if !ok {
		s = buttonSizes["default"]
	}

	nodes := []g.Node{
		h.Type("button"),
		h.Class(join("inline-flex items-center justify-center rounded-md text-sm font-medium transition-colors", v, s, class)),
		g.Attr("data-variant", variant),
	}
	return h.Button(append(nodes, children...)...)
}

// Badge renders a small pill label
func Badge(variant, class, text string) g.Node {
	base := "inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold"
	if variant == VariantSecondary {
		base += " border-transparent bg-secondary"
	}
	return h.Span(h.Class(join(base, class)), g.Text(text))
}

// Icon renders a lucide glyph placeholder that the Iconify script replaces with an SVG
func Icon(handle, class string) g.Node {
	return h.Span(
		h.Class(join("iconify inline-block", class)),
		g.Attr("data-icon", "lucide:"+handle),
		g.Attr("aria-hidden", "true"),
	)
}

// join concatenates non-empty class lists
func join(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
