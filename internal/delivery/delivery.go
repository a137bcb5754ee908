// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a runnable transport: an HTTP server, a background worker,
// anything the application serves from. Serve blocks until the delivery
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
