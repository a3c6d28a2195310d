// Package server provides the net/http transport: an http.Server wrapper
// with graceful shutdown that feeds inbound requests to a dispatcher and
// hijacks WebSocket upgrades onto the hub.
//
// Server implements the transport contract consumed by the application
// facade, so the usual wiring is:
//
//	app := router.New(router.WithLogger(log))
//	app.Get("/hello", hello)
//
//	srv := server.New(":8080", server.WithLogger(log))
//	err := app.Serve(ctx, srv)
//
// Serve blocks until ctx is cancelled, then drains in-flight requests
// within the shutdown timeout. It returns nil after a clean shutdown and
// the listen or shutdown error otherwise.
//
// # Configuration
//
// Config carries the address, timeouts, and size limits with environment
// variable mapping:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// # WebSocket upgrades
//
// When the dispatcher also implements WSRouter (the application facade
// does), upgrade requests whose path has a registered WebSocket handler
// are upgraded and handed to the hub; every other request flows through
// Dispatch as plain HTTP.
package server
