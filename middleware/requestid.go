package middleware

import (
	"github.com/google/uuid"

	"github.com/aerohttp/aero/core/handler"
)

// requestIDContextKey is used as a key for storing request ID in request context.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip bypasses the middleware for specific requests
	Skip func(ctx *handler.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName is the header carrying the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting reuses a request ID already present on the inbound request
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
// It generates a new UUID for each request and exposes it in both the
// request context and the response headers.
func RequestID() handler.Middleware {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom
// configuration. The ID is stored on the request context for downstream
// middleware and handlers (see GetRequestID) and set on the response so
// clients can correlate log entries.
func RequestIDWithConfig(cfg RequestIDConfig) handler.Middleware {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(ctx *handler.Context, next handler.Next) (handler.Responder, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		var requestID string
		if cfg.UseExisting {
			requestID = ctx.Req.Header.Get(cfg.HeaderName)
		}
		if requestID == "" {
			requestID = cfg.Generator()
		}

		ctx.SetValue(requestIDContextKey{}, requestID)
		ctx.Res.Header.Set(cfg.HeaderName, requestID)

		return next()
	}
}

// GetRequestID retrieves the request ID from the request context.
// Returns the request ID and whether one was assigned.
func GetRequestID(ctx *handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
