package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGenerateNonce(t *testing.T) {
	nonce1, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce1)

	nonce2, err := GenerateNonce()
	assert.NoError(t, err)
	assert.NotEqual(t, nonce1, nonce2)
}

func TestCSPNonce(t *testing.T) {
	e := echo.New()

	t.Run("SetsContextAndHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := CSPNonce("")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))

		nonce := c.Get(string(NonceKey)).(string)
		assert.NotEmpty(t, nonce)
		assert.Equal(t, nonce, GetNonce(c.Request().Context()))

		csp := rec.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "'nonce-"+nonce+"'")
		assert.Contains(t, csp, TailwindCDN)
		assert.Contains(t, csp, "img-src 'self' data:;")
	})

	t.Run("AllowsAssetHost", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := CSPNonce("https://assets.example.com/cfa")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))
		assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "img-src 'self' data: https://assets.example.com;")
	})
}

func TestGetNonce(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), NonceKey, "test-nonce")
		assert.Equal(t, "test-nonce", GetNonce(ctx))
	})

	t.Run("NotExists", func(t *testing.T) {
		assert.Equal(t, "", GetNonce(context.Background()))
	})
}

func TestOriginOf(t *testing.T) {
	assert.Equal(t, "", originOf(""))
	assert.Equal(t, "", originOf("/static"))
	assert.Equal(t, "https://pub.r2.dev", originOf("https://pub.r2.dev/assets"))
}
