// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a serving transport (currently HTTP only).
type Delivery interface {
	// Serve blocks, accepting requests until shutdown.
	Serve(ctx context.Context) error
}
