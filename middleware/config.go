package middleware

import (
	"cfa_site/config"

	"github.com/labstack/echo/v4"
)

// Config makes cfg available to handlers as c.Get("config")
func Config(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	}
}
