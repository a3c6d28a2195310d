package middleware

import (
	"io"
	"log/slog"
	"time"

	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip bypasses logging for specific requests
	Skip func(ctx *handler.Context) bool

	// Logger is the slog logger to use (default: a discard logger)
	Logger *slog.Logger

	// LogLevel for completed requests (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold raises slow requests to warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging (default: "http")
	Component string
}

// Logging creates a request logging middleware writing to log. Each request
// is logged on completion with its method, path, latency, and request ID
// when the request ID middleware ran earlier in the chain.
func Logging(log *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request logging middleware with custom
// configuration. Requests that fail are logged at error level with the
// handler error attached; requests slower than SlowRequestThreshold are
// logged at warning level.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(ctx *handler.Context, next handler.Next) (handler.Responder, error) {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return next()
		}

		start := time.Now()
		res, err := next()
		latency := time.Since(start)

		requestID, _ := GetRequestID(ctx)
		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Method(ctx.Req.Method),
			logger.Path(ctx.Req.Path()),
			logger.Latency(latency),
			logger.RequestID(requestID),
		}

		level := cfg.LogLevel
		msg := "request completed"
		switch {
		case err != nil:
			level = slog.LevelError
			msg = "request failed"
			attrs = append(attrs, logger.Error(err))
		case latency > cfg.SlowRequestThreshold:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Bool("slow_request", true))
		}

		cfg.Logger.LogAttrs(ctx.Context(), level, msg, attrs...)

		return res, err
	}
}
