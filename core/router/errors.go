package router

import "errors"

// Configuration errors reported at route registration time. The facade
// panics on them so a misconfigured server fails loudly at setup instead of
// silently dropping routes.
var (
	// ErrEmptyParamName indicates a ":" segment with no parameter name.
	ErrEmptyParamName = errors.New("path parameter has empty name")

	// ErrWildcardNotTerminal indicates a "**" segment that is not the last
	// segment of the template.
	ErrWildcardNotTerminal = errors.New("multi-segment wildcard must be the last segment")

	// ErrInvalidMethod indicates an empty HTTP method string.
	ErrInvalidMethod = errors.New("invalid HTTP method")
)
