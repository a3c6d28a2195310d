// Package binder decodes request bodies into typed values. It provides the
// built-in readers for text, JSON, and raw bytes, a content-type driven
// Auto reader, and a Bind entry point that lets user types decode
// themselves via the FromRequester capability.
//
// Decode failures are reported through the package sentinel errors; the
// request orchestrator maps them to 400 responses when a handler does not
// recover from them itself.
package binder
