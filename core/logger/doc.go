// Package logger provides structured logging attribute helpers for
// log/slog, keeping attribute keys consistent across the framework.
//
// Error, Errors, RequestID, and Key return the empty Attr for nil or empty
// input, which slog drops silently, so call sites stay free of nil checks:
//
//	log.Info("request served",
//		logger.Method(req.Method),
//		logger.Path(req.Path()),
//		logger.StatusCode(result.Status),
//		logger.Latency(time.Since(start)),
//		logger.Error(err), // no-op when err is nil
//	)
package logger
