package binder

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aerohttp/aero/core/handler"
)

// FromRequester lets a user-declared type decode itself from a request.
// Types implementing it are handled by Bind before any content-type
// dispatch, typically delegating to JSON:
//
//	func (p *CreatePost) FromRequest(ctx *handler.Context) error {
//		return binder.JSON(ctx, p)
//	}
type FromRequester interface {
	FromRequest(ctx *handler.Context) error
}

// Bytes returns the raw request body without decoding.
func Bytes(ctx *handler.Context) []byte {
	return ctx.Req.Body
}

// Text decodes the request body as UTF-8 text.
func Text(ctx *handler.Context) (string, error) {
	body := ctx.Req.Body
	if !utf8.Valid(body) {
		return "", ErrInvalidText
	}
	return string(body), nil
}

// JSON decodes the request body into v. The body must be UTF-8 encoded
// valid JSON; failures are reported as ErrInvalidJSONCharset or
// ErrInvalidJSON respectively.
func JSON(ctx *handler.Context, v any) error {
	body := ctx.Req.Body
	if !utf8.Valid(body) {
		return ErrInvalidJSONCharset
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// BodyKind identifies how Auto decoded a request body.
type BodyKind int

const (
	BodyBytes BodyKind = iota
	BodyText
	BodyJSON
)

// Body is a request body decoded by content type. Kind reports which field
// carries the decoded value.
type Body struct {
	Kind  BodyKind
	Text  string
	JSON  any
	Bytes []byte
}

// Auto decodes the request body according to its Content-Type header:
// application/json is parsed as JSON, text/plain and text/html as UTF-8
// text, everything else (including a missing Content-Type) as raw bytes.
func Auto(ctx *handler.Context) (Body, error) {
	switch mediaType(ctx.Req.Header.Get("Content-Type")) {
	case "application/json":
		var v any
		if err := JSON(ctx, &v); err != nil {
			return Body{}, err
		}
		return Body{Kind: BodyJSON, JSON: v}, nil
	case "text/plain", "text/html":
		s, err := Text(ctx)
		if err != nil {
			return Body{}, err
		}
		return Body{Kind: BodyText, Text: s}, nil
	default:
		return Body{Kind: BodyBytes, Bytes: ctx.Req.Body}, nil
	}
}

// Bind decodes the request body into v. Types implementing FromRequester
// decode themselves; *string and *[]byte receive text and raw bytes; any
// other type is treated as a JSON target.
func Bind(ctx *handler.Context, v any) error {
	switch t := v.(type) {
	case FromRequester:
		return t.FromRequest(ctx)
	case *string:
		s, err := Text(ctx)
		if err != nil {
			return err
		}
		*t = s
		return nil
	case *[]byte:
		*t = ctx.Req.Body
		return nil
	default:
		return JSON(ctx, v)
	}
}

// mediaType strips parameters such as charset from a Content-Type value.
func mediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
