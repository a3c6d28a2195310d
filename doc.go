// Package aero is a lightweight HTTP and WebSocket framework built around a
// transport-neutral request pipeline: routes with path templates, an onion
// middleware chain, two-step responders, and a channel-based WebSocket hub,
// served over net/http with graceful shutdown.
//
// # Package Organization
//
// Core framework packages:
//
//	github.com/aerohttp/aero/core/router    - Route store, pattern matching, middleware engine, application facade
//	github.com/aerohttp/aero/core/handler   - Request context, handler, middleware, and responder contracts
//	github.com/aerohttp/aero/core/response  - Built-in responders (text, HTML, JSON, bytes) and decorators
//	github.com/aerohttp/aero/core/binder    - Typed request body readers (JSON, text, bytes)
//	github.com/aerohttp/aero/core/cookie    - Cookie header parsing and Set-Cookie serialisation
//	github.com/aerohttp/aero/core/ws        - WebSocket hub with peers, channels, and an optional Redis bridge
//	github.com/aerohttp/aero/core/transport - Neutral request/response shapes and the transport contract
//	github.com/aerohttp/aero/core/server    - net/http transport adapter with graceful shutdown
//	github.com/aerohttp/aero/core/logger    - slog attribute helpers
//	github.com/aerohttp/aero/core/config    - Environment variable loading with .env support
//
// HTTP middleware:
//
//	github.com/aerohttp/aero/middleware     - CORS, request ID, request logging, security headers
//
// # Quick Start
//
//	app := router.New(router.WithLogger(log))
//	app.Use(middleware.RequestID(), middleware.Logging(log))
//
//	app.Get("/users/:id", func(ctx *handler.Context) (handler.Responder, error) {
//		return response.JSON(map[string]string{"id": ctx.Param("id")}), nil
//	})
//
//	app.WS("/live", ws.HandlerFuncs{
//		Message: func(ctx context.Context, peer *ws.Peer, msg ws.Message) {
//			peer.Publish("room", msg.Text())
//		},
//	})
//
//	srv := server.New(":8080", server.WithLogger(log))
//	err := app.Serve(ctx, srv)
//
// Serve blocks until ctx is cancelled, then shuts the server down
// gracefully.
package aero
