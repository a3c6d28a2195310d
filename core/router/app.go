package router

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aerohttp/aero/core/binder"
	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/response"
	"github.com/aerohttp/aero/core/transport"
	"github.com/aerohttp/aero/core/ws"
)

// App is the application facade: it aggregates the route store, the
// middleware chain, the WebSocket route table with its hub, and the logger,
// and drives the per-request lifecycle as a transport.Dispatcher.
//
// Registration is not synchronised; populate routes and middleware during
// setup, before the transport accepts the first request.
type App struct {
	basePath    string
	store       *Store
	middlewares []MiddlewareEntry
	wsRoutes    map[string]ws.Handler
	hub         *ws.Hub
	logger      *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithBasePath prefixes every registered route and middleware with path.
func WithBasePath(path string) Option {
	return func(a *App) {
		a.basePath = path
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.logger = log
		}
	}
}

// WithHub replaces the default WebSocket hub, e.g. with one attached to a
// Redis bridge.
func WithHub(hub *ws.Hub) Option {
	return func(a *App) {
		if hub != nil {
			a.hub = hub
		}
	}
}

// New creates an empty application.
func New(opts ...Option) *App {
	a := &App{
		store:    NewStore(),
		wsRoutes: make(map[string]ws.Handler),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.hub == nil {
		a.hub = ws.NewHub(ws.WithLogger(a.logger))
	}
	return a
}

// On registers a handler for the given method and path under the app's
// base path. It panics on an invalid pattern so misconfiguration surfaces
// at setup. A duplicate method and path overrides the earlier handler.
func (a *App) On(method, path string, h handler.HandlerFunc) {
	full := a.basePath + path
	overrode, err := a.store.Register(method, full, h)
	if err != nil {
		panic(fmt.Errorf("router: register %s %s: %w", method, full, err))
	}
	if overrode {
		a.logger.Debug("route overridden", "method", method, "path", full)
	}
	a.logger.Debug("route registered",
		"method", method,
		"path", full,
		"kind", classify(full),
	)
}

func classify(path string) string {
	if p, err := Compile(path); err == nil && p.IsLiteral() {
		return "static"
	}
	return "dynamic"
}

// Get registers a handler for GET requests.
func (a *App) Get(path string, h handler.HandlerFunc) { a.On(http.MethodGet, path, h) }

// Post registers a handler for POST requests.
func (a *App) Post(path string, h handler.HandlerFunc) { a.On(http.MethodPost, path, h) }

// Put registers a handler for PUT requests.
func (a *App) Put(path string, h handler.HandlerFunc) { a.On(http.MethodPut, path, h) }

// Patch registers a handler for PATCH requests.
func (a *App) Patch(path string, h handler.HandlerFunc) { a.On(http.MethodPatch, path, h) }

// Delete registers a handler for DELETE requests.
func (a *App) Delete(path string, h handler.HandlerFunc) { a.On(http.MethodDelete, path, h) }

// Head registers a handler for HEAD requests.
func (a *App) Head(path string, h handler.HandlerFunc) { a.On(http.MethodHead, path, h) }

// Options registers a handler for OPTIONS requests.
func (a *App) Options(path string, h handler.HandlerFunc) { a.On(http.MethodOptions, path, h) }

// Trace registers a handler for TRACE requests.
func (a *App) Trace(path string, h handler.HandlerFunc) { a.On(http.MethodTrace, path, h) }

// Connect registers a handler for CONNECT requests.
func (a *App) Connect(path string, h handler.HandlerFunc) { a.On(http.MethodConnect, path, h) }

// All registers a handler matched for any HTTP method. It ranks below an
// exact-method route of the same kind; a literal All route outranks
// templated exact-method routes (see Store.Find).
func (a *App) All(path string, h handler.HandlerFunc) { a.On(WildcardMethod, path, h) }

// Use appends middlewares scoped to the app's base path. An empty base
// path (the root app default) applies them to every request.
func (a *App) Use(fns ...handler.Middleware) {
	for _, fn := range fns {
		a.middlewares = append(a.middlewares, MiddlewareEntry{BasePath: a.basePath, Fn: fn})
	}
}

// UseAt appends a middleware scoped to an explicit base path prefix.
func (a *App) UseAt(basePath string, fn handler.Middleware) {
	a.middlewares = append(a.middlewares, MiddlewareEntry{BasePath: a.basePath + basePath, Fn: fn})
}

// Group runs configure against a transient builder whose base path is the
// app's base path plus prefix, then merges the accumulated routes,
// middlewares, and WebSocket routes back. Grouping twice with the same
// prefix is additive.
func (a *App) Group(prefix string, configure func(g *App)) {
	g := &App{
		basePath: a.basePath + prefix,
		store:    NewStore(),
		wsRoutes: make(map[string]ws.Handler),
		hub:      a.hub,
		logger:   a.logger,
	}
	if configure != nil {
		configure(g)
	}

	a.store.Merge(g.store)
	a.middlewares = append(a.middlewares, g.middlewares...)
	for path, h := range g.wsRoutes {
		a.wsRoutes[path] = h
	}
	a.logger.Debug("group merged", "prefix", prefix, "routes", g.store.Len())
}

// WS registers a WebSocket handler at the app's base path plus path.
func (a *App) WS(path string, h ws.Handler) {
	a.wsRoutes[a.basePath+path] = h
}

// WSHandler returns the WebSocket handler registered for path.
func (a *App) WSHandler(path string) (ws.Handler, bool) {
	h, ok := a.wsRoutes[path]
	return h, ok
}

// Hub returns the application's WebSocket hub.
func (a *App) Hub() *ws.Hub {
	return a.hub
}

// Routes enumerates every registered route in registration order.
func (a *App) Routes() []Route {
	return a.store.Routes()
}

// Serve runs the app on the given transport until ctx is cancelled.
func (a *App) Serve(ctx context.Context, t transport.Transport) error {
	return t.Serve(ctx, a)
}

// Dispatch runs one request through the middleware chain and the route
// dispatcher, then materialises the resulting responder. Body decode
// failures that escape the handler become 400 responses; panics and any
// other errors become 500 responses.
func (a *App) Dispatch(ctx context.Context, req *transport.Request) *transport.Result {
	ev := handler.NewContext(ctx, req)

	responder, err := a.run(ev)
	if err != nil {
		if binder.IsBodyError(err) {
			a.logger.Debug("body decode failed",
				"method", req.Method, "path", req.Path(), "error", err)
			responder = response.TextWithStatus("Invalid body", http.StatusBadRequest)
		} else {
			a.logger.Error("handler failed",
				"method", req.Method, "path", req.Path(), "error", err)
			responder = response.TextWithStatus("Internal Server Error", http.StatusInternalServerError)
		}
	}

	return a.materialize(ev, responder)
}

// run executes the chain with panic containment. A panicking handler or
// middleware is reported as an internal error without re-entering the
// chain.
func (a *App) run(ev *handler.Context) (responder handler.Responder, err error) {
	defer func() {
		if p := recover(); p != nil {
			a.logger.Error("panic in handler",
				"method", ev.Req.Method,
				"path", ev.Req.Path(),
				"value", p,
				"stack", string(debug.Stack()),
			)
			responder = nil
			err = fmt.Errorf("panic: %v", p)
		}
	}()

	return runChain(ev, a.middlewares, func() (handler.Responder, error) {
		return a.dispatchRoute(ev)
	})
}

// dispatchRoute is the terminal step of the middleware chain: route store
// lookup followed by handler invocation, or the canonical 404 responder on
// a miss.
func (a *App) dispatchRoute(ev *handler.Context) (handler.Responder, error) {
	path := ev.Req.Path()
	fn, params, ok := a.store.Find(ev.Req.Method, path)
	if !ok {
		a.logger.Debug("route not found", "method", ev.Req.Method, "path", path)
		return response.NotFound(), nil
	}
	a.logger.Debug("route matched", "method", ev.Req.Method, "path", path)
	ev.Params = params

	r, err := fn(ev)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("handler for %s %s returned nil responder", ev.Req.Method, path)
	}
	return r, nil
}

// materialize runs the two-step responder protocol and assembles the final
// result: options against the mutable response, Set-Cookie emission, body
// output.
func (a *App) materialize(ev *handler.Context, responder handler.Responder) *transport.Result {
	responder.Options(ev.Res)

	for _, spec := range ev.Res.Cookies {
		ev.Res.Header.Add("Set-Cookie", spec.Serialize())
	}

	var buf bytes.Buffer
	if err := responder.Output(&buf); err != nil {
		a.logger.Error("response serialisation failed",
			"method", ev.Req.Method, "path", ev.Req.Path(), "error", err)
		ev.Res.Header.Set("Content-Type", "text/plain; charset=utf-8")
		return &transport.Result{
			Status: http.StatusInternalServerError,
			Header: ev.Res.Header,
			Body:   []byte("Internal Server Error"),
		}
	}

	return &transport.Result{
		Status: ev.Res.Status,
		Header: ev.Res.Header,
		Body:   buf.Bytes(),
	}
}
