// Package transport defines the neutral request and response shapes the
// framework core manipulates, decoupled from any concrete HTTP stack.
//
// A Transport adapter (see core/server for the net/http implementation)
// converts its platform requests into Request values, hands them to a
// Dispatcher, and emits the returned Result. Header lookup is
// case-insensitive while a written field-name spelling is preserved on
// output (see Header for which writer's spelling is kept).
package transport
