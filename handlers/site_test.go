package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cfa_site/config"
	"cfa_site/middleware"
	"cfa_site/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	before := testutil.ToFloat64(landingRenders)

	err := testSite().LandingHandler(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, "<title>CFA - Chief Financial Agent</title>")
	assert.Contains(t, body, `<link rel="canonical" href="https://cfa.example.com/">`)
	assert.Contains(t, body, `content="https://cfa.example.com/static/images/hero-cfa.jpg"`)
	assert.Equal(t, 2, strings.Count(body, "/static/images/aci-logo.png?v=test"))
	assert.Equal(t, before+1, testutil.ToFloat64(landingRenders))
}

func TestLandingHandlerNoIndexOutsideProduction(t *testing.T) {
	noindex := `<meta name="robots" content="noindex, nofollow">`

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	require.NoError(t, testSite().LandingHandler(c))
	assert.Contains(t, rec.Body.String(), noindex)

	cfg := testConfig()
	cfg.Environment = "production"
	_, c, rec = setupEcho(http.MethodGet, "/", nil)
	c.Set("config", cfg)
	require.NoError(t, testSite().LandingHandler(c))
	assert.NotContains(t, rec.Body.String(), noindex)
}

func TestLandingHandlerUsesRequestLocale(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	c.Set("locale", "es")

	require.NoError(t, testSite().LandingHandler(c))
	body := rec.Body.String()
	assert.Contains(t, body, `<meta property="og:locale" content="es">`)
	assert.Contains(t, body, `<link rel="alternate" hreflang="en" href="https://cfa.example.com/?lang=en">`)
}

func TestLandingSEO(t *testing.T) {
	site := testSite()
	seo := LandingSEO(site.Content.Brand, "https://cfa.example.com", "", "es")

	assert.Equal(t, "CFA - Chief Financial Agent", seo.Title)
	assert.Equal(t, "The AI Co-Pilot for Your Finances", seo.Description)
	assert.Equal(t, "https://cfa.example.com/", seo.Canonical)
	assert.Equal(t, "es", seo.Locale)
	assert.Equal(t, []string{"en"}, seo.AltLocales)
	assert.Equal(t, "CFA | The AI Co-Pilot for Your Finances", seo.GetOGTitle())
	assert.Empty(t, seo.OGImage)
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://cfa.example.com/static/a.png", absoluteURL("https://cfa.example.com", "/static/a.png"))
	assert.Equal(t, "https://assets.example.com/a.png", absoluteURL("https://cfa.example.com", "https://assets.example.com/a.png"))
	assert.Equal(t, "//cdn.example.com/a.png", absoluteURL("https://cfa.example.com", "//cdn.example.com/a.png"))
	assert.Equal(t, "", absoluteURL("https://cfa.example.com", ""))
}

func TestHealthHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/health", nil)

	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	require.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMEApplicationXML, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, body, "<loc>https://cfa.example.com/</loc>")
	assert.Equal(t, 1, strings.Count(body, "<url>"))
}

func TestRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)

	require.NoError(t, GetRobotsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User-agent: *")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://cfa.example.com/sitemap.xml")
}

// newTestServer wires the same chain the serve command uses
func newTestServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.Use(middleware.Config(cfg))
	e.Use(middleware.Metrics())
	e.Use(middleware.CSPNonce(cfg.R2PublicURL))
	e.Use(middleware.Locale(cfg))
	RegisterRoutes(e, cfg, testSite())
	return e
}

func TestRoutesLandingCarriesNonce(t *testing.T) {
	e := newTestServer(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	csp := rec.Header().Get("Content-Security-Policy")
	require.NotEmpty(t, csp)

	start := strings.Index(csp, "'nonce-")
	require.NotEqual(t, -1, start)
	nonce := csp[start+len("'nonce-"):]
	nonce = nonce[:strings.Index(nonce, "'")]

	assert.Equal(t, 3, strings.Count(rec.Body.String(), `nonce="`+nonce+`"`))
}

func TestRoutesLocaleSwitch(t *testing.T) {
	e := newTestServer(testConfig())

	for _, lang := range []string{"en", "es"} {
		req := httptest.NewRequest(http.MethodGet, "/?lang="+lang, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="`+lang+`">`)
		assert.Contains(t, rec.Body.String(), ">"+i18n.T(i18n.WithLocale(context.Background(), lang), "nav.how_it_works")+"<")
	}
}

func TestRoutesMetrics(t *testing.T) {
	cfg := testConfig()
	e := newTestServer(cfg)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cfa_http_requests_total")
	assert.Contains(t, rec.Body.String(), "cfa_landing_renders_total")

	cfg = testConfig()
	cfg.MetricsEnabled = false
	rec = httptest.NewRecorder()
	newTestServer(cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
