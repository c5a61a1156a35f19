// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving transport, started by the composition root and shut
// down through the fx lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
