package middleware

import (
	"net/http"
	"strconv"

	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/response"
)

// CORSConfig configures the CORS middleware. Zero values fall back to the
// permissive defaults listed per field.
type CORSConfig struct {
	// Skip bypasses CORS handling for specific requests
	Skip func(ctx *handler.Context) bool

	// Origin is the Access-Control-Allow-Origin value (default: "*")
	Origin string

	// Methods is the Access-Control-Allow-Methods value (default: "*")
	Methods string

	// AllowHeaders is the Access-Control-Allow-Headers value (default: "*")
	AllowHeaders string

	// ExposeHeaders is the Access-Control-Expose-Headers value (default: "*")
	ExposeHeaders string

	// AllowCredentials adds Access-Control-Allow-Credentials: true.
	// Browsers reject it combined with a wildcard origin, so set Origin
	// explicitly when enabling this.
	AllowCredentials bool

	// MaxAge is the Access-Control-Max-Age value in seconds (default: 86400)
	MaxAge int
}

// CORS returns a CORS middleware with the permissive default configuration:
// all origins, methods, and headers allowed, credentials off, preflight
// responses cacheable for 24 hours.
//
// The wildcard defaults suit development and public APIs. Production
// applications serving credentialed requests should pin Origin:
//
//	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
//		Origin:           "https://myapp.com",
//		Methods:          "GET,POST,PUT,DELETE",
//		AllowCredentials: true,
//	}))
func CORS() handler.Middleware {
	return CORSWithConfig(CORSConfig{})
}

// CORSWithConfig returns a CORS middleware with custom configuration.
//
// The middleware stamps the configured CORS headers onto every response.
// A preflight request, an OPTIONS request carrying
// Access-Control-Request-Method, is answered directly with 204 No Content
// and never reaches the rest of the chain or any handler.
func CORSWithConfig(cfg CORSConfig) handler.Middleware {
	if cfg.Origin == "" {
		cfg.Origin = "*"
	}
	if cfg.Methods == "" {
		cfg.Methods = "*"
	}
	if cfg.AllowHeaders == "" {
		cfg.AllowHeaders = "*"
	}
	if cfg.ExposeHeaders == "" {
		cfg.ExposeHeaders = "*"
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 86400
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(ctx *handler.Context, next handler.Next) (handler.Responder, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		headers := ctx.Res.Header
		headers.Set("Access-Control-Allow-Origin", cfg.Origin)
		headers.Set("Access-Control-Allow-Methods", cfg.Methods)
		headers.Set("Access-Control-Allow-Headers", cfg.AllowHeaders)
		headers.Set("Access-Control-Expose-Headers", cfg.ExposeHeaders)
		headers.Set("Access-Control-Max-Age", maxAge)
		if cfg.AllowCredentials {
			headers.Set("Access-Control-Allow-Credentials", "true")
		}
		headers.Add("Vary", "Origin")

		isPreflight := ctx.Req.Method == http.MethodOptions &&
			ctx.Req.Header.Get("Access-Control-Request-Method") != ""
		if isPreflight {
			headers.Add("Vary", "Access-Control-Request-Method")
			headers.Add("Vary", "Access-Control-Request-Headers")
			return response.WithStatus(response.Empty(), http.StatusNoContent), nil
		}

		return next()
	}
}
