// Package delivery holds the entry points that expose the use cases to the outside world.
package delivery

import (
	"context"
)

// Delivery is a long-running server started by main and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
