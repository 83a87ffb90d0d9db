package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"

	"cfa_site/services/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// External hosts the page pulls its styling substrate and icon set from
const (
	TailwindCDN = "https://cdn.tailwindcss.com"
	IconifyCDN  = "https://code.iconify.design"
	IconAPI     = "https://api.iconify.design"
)

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce generates a nonce per request, stores it in both contexts and sends
// a Content-Security-Policy allowing only scripts carrying it. assetHost is the
// public storage origin images may be loaded from (empty for local storage).
func CSPNonce(assetHost string) echo.MiddlewareFunc {
	imgSrc := "'self' data:"
	if origin := originOf(assetHost); origin != "" {
		imgSrc += " " + origin
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				logger.Error(c.Request().Context(), "failed to generate nonce", zap.Error(err))
				nonce = "fallback-nonce-value"
			}

			c.Set(string(NonceKey), nonce)

			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			// Tailwind's CDN build injects <style> tags at runtime, so style-src keeps 'unsafe-inline'.
			csp := fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s' %s %s; style-src 'self' 'unsafe-inline'; img-src %s; connect-src 'self' %s; font-src 'self'; object-src 'none'; base-uri 'self'",
				nonce, TailwindCDN, IconifyCDN, imgSrc, IconAPI)

			c.Response().Header().Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}

func originOf(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
