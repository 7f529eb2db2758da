package database

import "context"

// Connection is the lifecycle handle of one backing store.
// The container opens it on startup and closes it on shutdown.
type Connection interface {
	// Name is the human readable store name (used by the liveness line)
	Name() string

	// HealthCheck pings the store
	HealthCheck(ctx context.Context) error

	// Close releases every pooled connection
	Close(ctx context.Context) error
}

// InMemory is the Connection of the process-local store. It is always healthy.
type InMemory struct{}

var _ Connection = (*InMemory)(nil)

func NewInMemory() *InMemory { return &InMemory{} }

func (*InMemory) Name() string { return "in-memory store" }

func (*InMemory) HealthCheck(ctx context.Context) error { return ctx.Err() }

func (*InMemory) Close(context.Context) error { return nil }
