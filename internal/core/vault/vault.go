// Package vault defines the vault interface for secrets management.
package vault

import (
	"context"
	"errors"
)

// ErrSecretNotFound is returned when a secret reference resolves to nothing.
var ErrSecretNotFound = errors.New("secret not found")

// Vault defines the interface for read-only secret lookups.
type Vault interface {
	// GetSecret retrieves a secret by URI, e.g. "dotenv://ADMIN_PASS".
	// Returns ErrSecretNotFound when the secret is absent or empty.
	GetSecret(ctx context.Context, uri string) (string, error)

	// Ping checks if the vault is reachable.
	Ping(ctx context.Context) error

	// Close releases vault resources.
	Close() error
}
