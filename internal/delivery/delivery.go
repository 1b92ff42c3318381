// Package delivery defines the entry points that expose the application to the outside world.
package delivery

import "context"

// Delivery is a server started by the application and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
