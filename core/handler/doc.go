// Package handler defines the request-handling contracts shared across the
// framework: the per-request Context, the HandlerFunc signature, the
// Middleware shape with its next continuation, and the two-step Responder
// protocol used to materialise responses.
package handler
