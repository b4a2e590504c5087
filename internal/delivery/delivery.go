// Package delivery defines the transport-agnostic contract every server
// implementation satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
