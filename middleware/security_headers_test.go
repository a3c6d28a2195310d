package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/router"
	"github.com/aerohttp/aero/middleware"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	t.Run("balanced defaults", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Use(middleware.SecurityHeaders())
		app.Get("/page", ok("body"))

		res := dispatch(t, app, http.MethodGet, "/page", nil)
		assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
		assert.Equal(t, "SAMEORIGIN", res.Header.Get("X-Frame-Options"))
		assert.Equal(t, "1; mode=block", res.Header.Get("X-XSS-Protection"))
		assert.Equal(t, "max-age=31536000; includeSubDomains", res.Header.Get("Strict-Transport-Security"))
		assert.NotEmpty(t, res.Header.Get("Content-Security-Policy"))
		assert.Equal(t, "strict-origin-when-cross-origin", res.Header.Get("Referrer-Policy"))
	})

	t.Run("strict preset denies framing", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Use(middleware.SecurityHeadersStrict())
		app.Get("/page", ok("body"))

		res := dispatch(t, app, http.MethodGet, "/page", nil)
		assert.Equal(t, "DENY", res.Header.Get("X-Frame-Options"))
		assert.Contains(t, res.Header.Get("Strict-Transport-Security"), "preload")
		assert.Contains(t, res.Header.Get("Content-Security-Policy"), "default-src 'none'")
	})

	t.Run("relaxed preset omits CSP and HSTS", func(t *testing.T) {
		t.Parallel()

		app := router.New()
		app.Use(middleware.SecurityHeadersRelaxed())
		app.Get("/page", ok("body"))

		res := dispatch(t, app, http.MethodGet, "/page", nil)
		assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
		assert.Equal(t, "", res.Header.Get("Content-Security-Policy"))
		assert.Equal(t, "", res.Header.Get("Strict-Transport-Security"))
	})

	t.Run("development mode disables HSTS", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.BalancedSecurity
		cfg.IsDevelopment = true

		app := router.New()
		app.Use(middleware.SecurityHeadersWithConfig(cfg))
		app.Get("/page", ok("body"))

		res := dispatch(t, app, http.MethodGet, "/page", nil)
		assert.Equal(t, "", res.Header.Get("Strict-Transport-Security"))
		assert.Equal(t, "nosniff", res.Header.Get("X-Content-Type-Options"))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.RelaxedSecurity
		cfg.CustomHeaders = map[string]string{"X-Service-Tier": "edge"}

		app := router.New()
		app.Use(middleware.SecurityHeadersWithConfig(cfg))
		app.Get("/page", ok("body"))

		res := dispatch(t, app, http.MethodGet, "/page", nil)
		assert.Equal(t, "edge", res.Header.Get("X-Service-Tier"))
	})

	t.Run("skip hook bypasses the middleware", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.BalancedSecurity
		cfg.Skip = func(ctx *handler.Context) bool {
			return ctx.Req.Path() == "/embed"
		}

		app := router.New()
		app.Use(middleware.SecurityHeadersWithConfig(cfg))
		app.Get("/embed", ok("widget"))

		res := dispatch(t, app, http.MethodGet, "/embed", nil)
		assert.Equal(t, "", res.Header.Get("X-Frame-Options"))
	})
}
