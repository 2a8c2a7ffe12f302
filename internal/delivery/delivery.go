// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server. Implementations block in
// Serve until the server stops and release resources through fx lifecycle
// hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
