package router

import (
	"strings"

	"github.com/aerohttp/aero/core/handler"
)

// MiddlewareEntry pairs a middleware with the base path that scopes it.
// The middleware runs iff the request path starts with BasePath; an empty
// base path matches every request.
type MiddlewareEntry struct {
	BasePath string
	Fn       handler.Middleware
}

// runChain executes the registered middlewares in onion order around the
// terminal dispatcher. Entries whose base path does not prefix the request
// path are skipped without consuming a chain position.
func runChain(ctx *handler.Context, entries []MiddlewareEntry, terminal handler.Next) (handler.Responder, error) {
	path := ctx.Req.Path()

	var next func(i int) (handler.Responder, error)
	next = func(i int) (handler.Responder, error) {
		for ; i < len(entries); i++ {
			if strings.HasPrefix(path, entries[i].BasePath) {
				break
			}
		}
		if i == len(entries) {
			return terminal()
		}
		entry := entries[i]
		return entry.Fn(ctx, func() (handler.Responder, error) {
			return next(i + 1)
		})
	}
	return next(0)
}
