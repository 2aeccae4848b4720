// Package delivery defines the contract implemented by every transport
// front end of the application.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops; shutdown happens through the lifecycle hooks registered at
// construction time.
type Delivery interface {
	Serve(ctx context.Context) error
}
