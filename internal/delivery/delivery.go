// Package delivery defines the contract shared by all serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving component started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
