package response

import (
	"bytes"

	"github.com/aerohttp/aero/core/cookie"
	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/transport"
)

type decorated struct {
	inner handler.Responder
	apply func(res *transport.Response)
}

func (d decorated) Options(res *transport.Response) {
	d.apply(res)
	d.inner.Options(res)
}

func (d decorated) Output(buf *bytes.Buffer) error {
	return d.inner.Output(buf)
}

// WithStatus wraps a responder so the response status is set to code before
// the responder's own options run.
func WithStatus(r handler.Responder, code int) handler.Responder {
	return decorated{inner: r, apply: func(res *transport.Response) {
		res.Status = code
	}}
}

// WithHeader wraps a responder so the named header is set before the
// responder's own options run. Because it writes first, it wins any
// Content-Type conflict with the inner responder.
func WithHeader(r handler.Responder, name, value string) handler.Responder {
	return decorated{inner: r, apply: func(res *transport.Response) {
		res.Header.Set(name, value)
	}}
}

// WithCookie wraps a responder so the cookie spec is appended to the
// response.
func WithCookie(r handler.Responder, spec cookie.Spec) handler.Responder {
	return decorated{inner: r, apply: func(res *transport.Response) {
		res.SetCookie(spec)
	}}
}
