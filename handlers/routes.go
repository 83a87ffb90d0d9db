package handlers

import (
	"cfa_site/config"
	"cfa_site/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts every public route of the site on e
func RegisterRoutes(e *echo.Echo, cfg *config.Config, site *Site) {
	e.Static(services.StaticURLPrefix, cfg.StaticDir)

	e.GET("/", site.LandingHandler)
	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET("/robots.txt", GetRobotsHandler)
	e.GET("/health", HealthHandler)

	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
}
