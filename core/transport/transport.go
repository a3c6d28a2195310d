package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/aerohttp/aero/core/cookie"
)

// Request is the neutral inbound request shape delivered by a Transport.
// The URL field carries the path (plus optional query string) exactly as the
// transport received it; the core performs no normalisation.
type Request struct {
	Method string
	URL    string
	Header *Header
	Body   []byte
}

// Path returns the URL with any query string stripped.
func (r *Request) Path() string {
	if i := strings.IndexByte(r.URL, '?'); i >= 0 {
		return r.URL[:i]
	}
	return r.URL
}

// Response is the mutable outbound response a handler and its middleware
// populate. Cookies are appended in order and serialised as individual
// Set-Cookie fields when the response is materialised.
type Response struct {
	Status  int
	Header  *Header
	Cookies []cookie.Spec
}

// NewResponse creates a response with the default 200 status.
func NewResponse() *Response {
	return &Response{
		Status: http.StatusOK,
		Header: NewHeader(),
	}
}

// SetCookie appends a Set-Cookie spec to the response.
func (r *Response) SetCookie(spec cookie.Spec) {
	r.Cookies = append(r.Cookies, spec)
}

// Result is a fully materialised response ready for emission.
type Result struct {
	Status int
	Header *Header
	Body   []byte
}

// Dispatcher turns one inbound request into a materialised response.
// The application facade implements this; transports consume it.
type Dispatcher interface {
	Dispatch(ctx context.Context, req *Request) *Result
}

// Transport binds an address and feeds inbound requests to a Dispatcher
// until the context is cancelled.
type Transport interface {
	Serve(ctx context.Context, d Dispatcher) error
}
