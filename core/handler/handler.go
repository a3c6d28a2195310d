package handler

import (
	"bytes"

	"github.com/aerohttp/aero/core/transport"
)

// Responder materialises a handler's return value into the response.
// Options runs first and may adjust the mutable response status and headers;
// Output then appends the serialised body. Headers already present on the
// response win over a responder's Content-Type proposal.
type Responder interface {
	Options(res *transport.Response)
	Output(buf *bytes.Buffer) error
}

// HandlerFunc is the shape of a route handler. Returned errors are mapped
// by the request orchestrator: body decode failures become 400 responses,
// anything else becomes 500.
type HandlerFunc func(ctx *Context) (Responder, error)

// Next resumes the remainder of the middleware chain and yields the
// responder it produced.
type Next func() (Responder, error)

// Middleware wraps the request pipeline in onion order. A middleware must
// either return the responder produced by next (possibly wrapped) or
// synthesise a replacement to short-circuit.
type Middleware func(ctx *Context, next Next) (Responder, error)
