package handlers

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"cfa_site/config"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap lists the pages of a site served at baseURL
func BuildSitemap(baseURL string) SitemapURLSet {
	return SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		},
	}
}

// WriteSitemap writes the XML declaration and the indented sitemap to w
func WriteSitemap(w io.Writer, baseURL string) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap header: %w", err)
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(BuildSitemap(baseURL)); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return nil
}

// GetSitemapHandler serves the XML sitemap
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	return WriteSitemap(c.Response().Writer, cfg.AppURL)
}

// RobotsTxt allows every crawler and points at the sitemap
func RobotsTxt(baseURL string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + baseURL + "/sitemap.xml\n"
}

func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	return c.String(http.StatusOK, RobotsTxt(cfg.AppURL))
}
