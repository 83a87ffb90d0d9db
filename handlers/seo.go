package handlers

import (
	"cfa_site/models"
	"cfa_site/services/i18n"
)

const landingKeywords = "AI finance agent, AI CFO, finance automation, anomaly detection, financial reporting, MCP integrations"

// LandingSEO builds the landing page SEO record for a site served at appURL.
// ogImage is the absolute URL of the preview image, empty to omit it.
func LandingSEO(brand models.Brand, appURL, ogImage, lang string) *models.SEO {
	seo := models.DefaultSEO(brand.FullName, brand.Tagline).
		WithKeywords(landingKeywords).
		WithCanonical(appURL + "/").
		WithOGImage(ogImage)
	seo.OGTitle = brand.Name + " | " + brand.Tagline

	var alts []string
	for _, l := range i18n.Languages() {
		if l != lang {
			alts = append(alts, l)
		}
	}
	return seo.WithLocale(lang, alts...)
}

// absoluteURL makes a storage URL usable outside the page, e.g. in Open Graph tags
func absoluteURL(appURL, u string) string {
	if u == "" || u[0] != '/' || (len(u) > 1 && u[1] == '/') {
		return u
	}
	return appURL + u
}
