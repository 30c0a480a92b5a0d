// Package delivery holds the inbound adapters started by the service binary.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the adapter stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
