package docdb

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when no connection string is available at
	// first use of the client.
	ErrNotConfigured = errors.New("document database connection string is not configured")

	// ErrNoDocuments is returned by SingleResult when no document matched.
	ErrNoDocuments = errors.New("no documents in result")
)

// Client owns the single shared store connection of the process and hands
// out database and collection handles by name. Handles are cheap and must not
// be cached beyond a single request.
type Client interface {
	// Database returns a handle for the named database, creating the shared
	// connection on first use.
	Database(ctx context.Context, name string) (Database, error)

	// Collection returns a handle for the named collection of a database,
	// creating the shared connection on first use.
	Collection(ctx context.Context, database, collection string) (Collection, error)

	// Ping reports whether the store answers a trivial round-trip.
	// It never returns an error; an unreachable store yields false.
	Ping(ctx context.Context) bool

	// Close releases the shared connection. It is a no-op when no connection
	// was ever created.
	Close(ctx context.Context) error
}
