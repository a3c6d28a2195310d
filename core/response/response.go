package response

import (
	"bytes"

	"github.com/aerohttp/aero/core/handler"
	"github.com/aerohttp/aero/core/transport"
)

// setContentType applies the Content-Type a responder proposes, unless an
// earlier writer (middleware or a previous decorator) already set one.
func setContentType(res *transport.Response, value string) {
	if !res.Header.Has("Content-Type") {
		res.Header.Set("Content-Type", value)
	}
}

type textResponder struct {
	body   string
	status int
}

// Text creates a text/plain responder.
func Text(s string) handler.Responder {
	return textResponder{body: s}
}

// TextWithStatus creates a text/plain responder that overrides the
// response status.
func TextWithStatus(s string, status int) handler.Responder {
	return textResponder{body: s, status: status}
}

func (t textResponder) Options(res *transport.Response) {
	if t.status != 0 {
		res.Status = t.status
	}
	if t.body != "" {
		setContentType(res, "text/plain; charset=utf-8")
	}
}

func (t textResponder) Output(buf *bytes.Buffer) error {
	buf.WriteString(t.body)
	return nil
}

type htmlResponder struct {
	body   string
	status int
}

// HTML creates a text/html responder.
func HTML(s string) handler.Responder {
	return htmlResponder{body: s}
}

// HTMLWithStatus creates a text/html responder that overrides the response
// status.
func HTMLWithStatus(s string, status int) handler.Responder {
	return htmlResponder{body: s, status: status}
}

func (h htmlResponder) Options(res *transport.Response) {
	if h.status != 0 {
		res.Status = h.status
	}
	if h.body != "" {
		setContentType(res, "text/html; charset=utf-8")
	}
}

func (h htmlResponder) Output(buf *bytes.Buffer) error {
	buf.WriteString(h.body)
	return nil
}

type bytesResponder struct {
	body        []byte
	contentType string
}

// Bytes creates an application/octet-stream responder.
func Bytes(b []byte) handler.Responder {
	return bytesResponder{body: b, contentType: "application/octet-stream"}
}

// BytesWithContentType creates a raw byte responder with a caller-chosen
// content type.
func BytesWithContentType(b []byte, contentType string) handler.Responder {
	return bytesResponder{body: b, contentType: contentType}
}

func (b bytesResponder) Options(res *transport.Response) {
	if len(b.body) > 0 && b.contentType != "" {
		setContentType(res, b.contentType)
	}
}

func (b bytesResponder) Output(buf *bytes.Buffer) error {
	buf.Write(b.body)
	return nil
}

type emptyResponder struct{}

// Empty creates a responder with no body and no Content-Type. The response
// status is left untouched, so it pairs with a prior ctx.Res.Status write
// or the WithStatus decorator.
func Empty() handler.Responder {
	return emptyResponder{}
}

func (emptyResponder) Options(*transport.Response) {}

func (emptyResponder) Output(*bytes.Buffer) error { return nil }

// NotFound creates the canonical routing-miss responder: 404 text/plain
// "Not Found".
func NotFound() handler.Responder {
	return TextWithStatus("Not Found", 404)
}
