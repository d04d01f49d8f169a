package vault

import "context"

// Client resolves secret references such as the admin password used to gate
// document mutations. Implementations may memoize lookups.
type Client interface {
	// GetVault exposes the backing store.
	GetVault() Vault

	// GetSecret resolves uri. With useCache set, a previously resolved value
	// may be returned without consulting the backing store again.
	GetSecret(ctx context.Context, uri string, useCache bool) (string, error)

	Ping(ctx context.Context) error
	Close() error
}
