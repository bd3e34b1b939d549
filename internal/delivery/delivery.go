// Package delivery defines the contract every transport adapter implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop) that
// serves until the context is cancelled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
