// Package delivery holds the long-running entry points started by the cmd applications.
package delivery

import "context"

// Delivery is a server or loop started once the fx graph is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
