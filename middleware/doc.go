// Package middleware provides composable request middleware for common
// cross-cutting concerns: CORS, request ID assignment, request logging,
// and security headers.
//
// Every middleware follows the same pattern: a default constructor for the
// common case, a WithConfig constructor taking a config struct, and a Skip
// hook on the config for bypassing specific requests. Middleware runs in
// registration order around the route handler; headers written before
// next() land on the response regardless of which responder the handler
// produces.
//
//	app := router.New(router.WithLogger(log))
//	app.Use(
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.CORS(),
//		middleware.SecurityHeaders(),
//	)
//
// # CORS
//
// CORS stamps the configured Access-Control headers onto every response
// and answers preflight OPTIONS requests with 204 No Content without
// invoking the rest of the chain:
//
//	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
//		Origin:           "https://myapp.com",
//		AllowCredentials: true,
//	}))
//
// # Request IDs
//
// RequestID assigns each request a UUID, sets it on the X-Request-ID
// response header, and exposes it to downstream middleware and handlers:
//
//	func show(ctx *handler.Context) (handler.Responder, error) {
//		id, _ := middleware.GetRequestID(ctx)
//		return response.Text("traced as " + id), nil
//	}
//
// # Logging
//
// Logging records each completed request with its method, path, latency,
// and request ID. Register it after RequestID so the ID is available.
// Failed requests log at error level with the handler error attached.
//
// # Security headers
//
// SecurityHeaders applies a preset bundle of browser security headers
// (CSP, HSTS, frame and MIME-sniffing protection). Presets range from
// StrictSecurity to RelaxedSecurity; see SecurityHeadersWithConfig for
// customisation.
package middleware
