package server

import "errors"

var (
	// ErrServerAlreadyRunning indicates Serve was called on a server that
	// is already accepting connections.
	ErrServerAlreadyRunning = errors.New("server is already running")

	// ErrMissingAddress indicates a configuration without a bind address.
	ErrMissingAddress = errors.New("server address is required")
)
