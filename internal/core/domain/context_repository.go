package domain

import "context"

// ContextRepository is the abstraction for any kind of database intended to
// persist the singleton security Context.
type ContextRepository interface {
	// GetContext returns the singleton context.
	GetContext(ctx context.Context) (*Context, error)
	// InitContext creates the singleton context in its initial state if it
	// does not exist yet.
	InitContext(ctx context.Context) error
	// UpdateContext updates the state of the singleton context. The closure
	// function lets commit multiple changes in a transactional way.
	UpdateContext(
		ctx context.Context,
		updateFn func(c *Context) (*Context, error),
	) error
}
