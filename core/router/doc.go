// Package router implements the routing engine and the application facade
// built on it: path pattern compilation, the dual-index route store, the
// scoped middleware chain, route groups, and the per-request dispatch
// lifecycle.
//
// # Patterns
//
// Path templates are split on "/" and matched segment by segment. A
// segment is a literal, a named parameter (":id"), a single-segment
// wildcard ("*"), or a terminal multi-segment wildcard ("**"). Named
// captures land in the request context's params under their name;
// wildcard captures under the reserved key "_". A fully literal template
// is served from an O(1) index; templated routes are scanned in
// registration order.
//
// # Lookup precedence
//
// Exact-method literal, then wildcard-method literal, then exact-method
// templated, then wildcard-method templated. The wildcard method "*"
// (registered via App.All) never shadows a specific-method route of the
// same kind, but a literal wildcard-method route takes precedence over a
// templated specific-method route.
//
// # Applications
//
//	app := router.New(router.WithLogger(log))
//
//	app.Use(middleware.Logging(log))
//
//	app.Get("/users/:id", func(ctx *handler.Context) (handler.Responder, error) {
//		return response.JSON(map[string]string{"id": ctx.Param("id")}), nil
//	})
//
//	app.Group("/api", func(g *router.App) {
//		g.Use(middleware.CORS())
//		g.Post("/data", createData)
//	})
//
//	err := app.Serve(ctx, srv)
//
// Middlewares are scoped to the base path they were registered under and
// run in onion order around the route dispatcher. Groups accumulate
// routes, middlewares, and WebSocket routes under a prefix in a transient
// builder, then merge into the parent.
//
// Dispatch maps a routing miss to 404, a body decode failure escaping the
// handler to 400, and every other handler error or panic to 500.
package router
