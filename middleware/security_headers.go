package middleware

import (
	"maps"

	"github.com/aerohttp/aero/core/handler"
)

// SecurityHeadersConfig configures the security headers middleware.
// Empty fields omit the corresponding header.
type SecurityHeadersConfig struct {
	// Skip bypasses the middleware for specific requests
	Skip func(ctx *handler.Context) bool

	// ContentTypeOptions controls X-Content-Type-Options
	ContentTypeOptions string

	// FrameOptions controls X-Frame-Options
	FrameOptions string

	// XSSProtection controls X-XSS-Protection
	XSSProtection string

	// StrictTransportSecurity controls Strict-Transport-Security
	StrictTransportSecurity string

	// ContentSecurityPolicy controls Content-Security-Policy
	ContentSecurityPolicy string

	// ReferrerPolicy controls Referrer-Policy
	ReferrerPolicy string

	// PermissionsPolicy controls Permissions-Policy
	PermissionsPolicy string

	// CrossOriginOpenerPolicy controls Cross-Origin-Opener-Policy
	CrossOriginOpenerPolicy string

	// CrossOriginResourcePolicy controls Cross-Origin-Resource-Policy
	CrossOriginResourcePolicy string

	// CustomHeaders adds additional fixed headers to every response
	CustomHeaders map[string]string

	// IsDevelopment disables HSTS so local HTTP serving is not pinned
	IsDevelopment bool
}

var (
	// StrictSecurity locks the application down completely: no iframe
	// embedding, no external or inline content, HSTS with preload.
	StrictSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "DENY",
		XSSProtection:             "1; mode=block",
		StrictTransportSecurity:   "max-age=63072000; includeSubDomains; preload",
		ContentSecurityPolicy:     "default-src 'none'; script-src 'self'; style-src 'self'; img-src 'self'; font-src 'self'; connect-src 'self'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
		ReferrerPolicy:            "no-referrer",
		PermissionsPolicy:         "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), microphone=(), payment=(), usb=()",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
	}

	// BalancedSecurity provides good protection while staying compatible
	// with common patterns: same-origin framing, inline scripts and styles
	// under CSP, one-year HSTS. The SecurityHeaders default.
	BalancedSecurity = SecurityHeadersConfig{
		ContentTypeOptions:        "nosniff",
		FrameOptions:              "SAMEORIGIN",
		XSSProtection:             "1; mode=block",
		StrictTransportSecurity:   "max-age=31536000; includeSubDomains",
		ContentSecurityPolicy:     "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:; font-src 'self' data:",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		PermissionsPolicy:         "geolocation=(), microphone=(), camera=()",
		CrossOriginOpenerPolicy:   "same-origin-allow-popups",
		CrossOriginResourcePolicy: "cross-origin",
	}

	// RelaxedSecurity keeps only the low-friction headers for applications
	// where CSP or framing restrictions break required functionality.
	RelaxedSecurity = SecurityHeadersConfig{
		ContentTypeOptions: "nosniff",
		XSSProtection:      "1; mode=block",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
)

// SecurityHeaders creates a security headers middleware with the
// BalancedSecurity configuration. It adds standard headers protecting
// against XSS, clickjacking, MIME sniffing, and protocol downgrade.
func SecurityHeaders() handler.Middleware {
	return SecurityHeadersWithConfig(BalancedSecurity)
}

// SecurityHeadersStrict creates a security headers middleware with the
// StrictSecurity configuration. Test before deploying: the strict CSP and
// frame policy break third-party widgets and inline scripts.
func SecurityHeadersStrict() handler.Middleware {
	return SecurityHeadersWithConfig(StrictSecurity)
}

// SecurityHeadersRelaxed creates a security headers middleware with the
// RelaxedSecurity configuration.
func SecurityHeadersRelaxed() handler.Middleware {
	return SecurityHeadersWithConfig(RelaxedSecurity)
}

// SecurityHeadersWithConfig creates a security headers middleware with
// custom configuration. Start from one of the preset configs and adjust:
//
//	cfg := middleware.BalancedSecurity
//	cfg.ContentSecurityPolicy = "default-src 'self'; img-src 'self' data: https:"
//	cfg.IsDevelopment = os.Getenv("ENV") == "development"
//	app.Use(middleware.SecurityHeadersWithConfig(cfg))
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) handler.Middleware {
	if cfg.IsDevelopment {
		cfg.StrictTransportSecurity = ""
	}

	headers := make(map[string]string)
	set := func(name, value string) {
		if value != "" {
			headers[name] = value
		}
	}
	set("X-Content-Type-Options", cfg.ContentTypeOptions)
	set("X-Frame-Options", cfg.FrameOptions)
	set("X-XSS-Protection", cfg.XSSProtection)
	set("Strict-Transport-Security", cfg.StrictTransportSecurity)
	set("Content-Security-Policy", cfg.ContentSecurityPolicy)
	set("Referrer-Policy", cfg.ReferrerPolicy)
	set("Permissions-Policy", cfg.PermissionsPolicy)
	set("Cross-Origin-Opener-Policy", cfg.CrossOriginOpenerPolicy)
	set("Cross-Origin-Resource-Policy", cfg.CrossOriginResourcePolicy)
	maps.Copy(headers, cfg.CustomHeaders)

	return func(ctx *handler.Context, next handler.Next) (handler.Responder, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		for name, value := range headers {
			ctx.Res.Header.Set(name, value)
		}

		return next()
	}
}
