package binder

import "errors"

// Error variables define the body decode failures surfaced to handlers.
// The request orchestrator converts any of them into a 400 response when a
// handler lets them propagate.
var (
	// ErrInvalidText indicates the request body is not valid UTF-8 text.
	ErrInvalidText = errors.New("request body is not valid UTF-8 text")

	// ErrInvalidJSONCharset indicates the request body is not valid UTF-8
	// and therefore cannot be JSON decoded.
	ErrInvalidJSONCharset = errors.New("request body is not UTF-8 encoded JSON")

	// ErrInvalidJSON indicates the request body is not syntactically valid
	// JSON or does not match the target schema.
	ErrInvalidJSON = errors.New("failed to parse JSON request body")
)

// IsBodyError reports whether err belongs to the body decode failure
// category that maps to a 400 response.
func IsBodyError(err error) bool {
	return errors.Is(err, ErrInvalidText) ||
		errors.Is(err, ErrInvalidJSONCharset) ||
		errors.Is(err, ErrInvalidJSON)
}
