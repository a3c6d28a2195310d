package handler

import (
	"context"

	"github.com/aerohttp/aero/core/cookie"
	"github.com/aerohttp/aero/core/transport"
)

// Context is the per-request event handed to middleware and handlers.
// It carries the inbound request, the mutable response under construction,
// and the path parameters extracted by the router. The Cookie request
// header is parsed lazily on first access.
type Context struct {
	ctx     context.Context
	Req     *transport.Request
	Res     *transport.Response
	Params  map[string]string
	values  map[any]any
	cookies map[string]cookie.Item
}

// NewContext builds a request context around an inbound request with a
// fresh response (status 200, no headers) and no parameters.
func NewContext(ctx context.Context, req *transport.Request) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		ctx: ctx,
		Req: req,
		Res: transport.NewResponse(),
	}
}

// Context returns the cancellation context of the underlying transport
// connection. Handlers doing long work should observe it.
func (c *Context) Context() context.Context {
	return c.ctx
}

// Param returns the path parameter captured under name, or "" when absent.
// Wildcard captures are stored under the reserved key "_".
func (c *Context) Param(name string) string {
	return c.Params[name]
}

// Cookie returns the inbound cookie value for name. The Cookie header is
// parsed on first call and cached for the rest of the request.
func (c *Context) Cookie(name string) (string, bool) {
	if c.cookies == nil {
		c.cookies = cookie.ParseHeader(c.Req.Header.Get("Cookie"))
	}
	item, ok := c.cookies[name]
	return item.Value, ok
}

// SetCookie appends an outbound cookie to the response.
func (c *Context) SetCookie(spec cookie.Spec) {
	c.Res.SetCookie(spec)
}

// DeleteCookie appends an expiry spec for the named cookie. An optional
// path restricts which cookie is removed.
func (c *Context) DeleteCookie(name string, opts ...cookie.Option) {
	c.Res.SetCookie(cookie.Delete(name, opts...))
}

// SetValue stores a request-scoped value, typically from middleware for a
// downstream handler.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Value returns a request-scoped value previously stored with SetValue,
// falling back to the transport context.
func (c *Context) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.ctx.Value(key)
}
