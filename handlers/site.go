package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"cfa_site/config"
	"cfa_site/models"
	"cfa_site/middleware"
	"cfa_site/services/logger"
	"cfa_site/templates/components"
	"cfa_site/templates/pages"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var landingRenders = promauto.NewCounter(prometheus.CounterOpts{
	Name: "cfa_landing_renders_total",
	Help: "Landing page renders, including failed ones.",
})

// Site serves the landing page from a fixed set of content tables
type Site struct {
	Content *models.Content
	Assets  components.AssetURLs
}

func NewSite(content *models.Content, assets components.AssetURLs) *Site {
	return &Site{Content: content, Assets: assets}
}

// Props assembles everything one landing render needs for the given locale
func (s *Site) Props(appURL, lang string) pages.LandingProps {
	ogImage := absoluteURL(appURL, s.Assets.URL(s.Content.Hero.ImageKey))
	return pages.LandingProps{
		Content: s.Content,
		SEO:     LandingSEO(s.Content.Brand, appURL, ogImage, lang),
		Assets:  s.Assets,
	}
}

// LandingHandler renders the landing page
func (s *Site) LandingHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctx := c.Request().Context()

	landingRenders.Inc()

	props := s.Props(cfg.AppURL, middleware.GetLocale(c))
	if !cfg.IsProduction() {
		props.SEO.WithNoIndex()
	}
	component := pages.Landing(props)

	// Buffered so a failed render still becomes a clean 500
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		logger.Error(ctx, "failed to render landing page", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render page").SetInternal(fmt.Errorf("render landing page: %w", err))
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
