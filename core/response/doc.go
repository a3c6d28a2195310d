// Package response provides the built-in responders: text, HTML, JSON,
// raw bytes, empty, and the fully caller-controlled Raw form, plus
// decorators for status, header, and cookie adjustments.
//
// A responder materialises in two steps. Options runs against the mutable
// response first and may set the status and propose headers; a Content-Type
// already present on the response wins over the responder's proposal.
// Output then appends the serialised body to the emission buffer.
package response
