package dotenv

import (
	"context"
	"sync"

	"github.com/pratyay/profile-service/internal/core/vault"
)

// Client implements vault.Client over a Vault and memoizes resolved secrets
// for callers that ask for cached lookups.
type Client struct {
	vault *Vault

	mu       sync.RWMutex
	resolved map[string]string
}

// NewClient creates a new DotEnv vault client reading the given env files.
func NewClient(files ...string) (*Client, error) {
	v, err := NewVault(files...)
	if err != nil {
		return nil, err
	}
	return &Client{vault: v, resolved: make(map[string]string)}, nil
}

// GetVault returns the underlying Vault implementation.
func (c *Client) GetVault() vault.Vault {
	return c.vault
}

// GetSecret resolves uri. Only successful lookups are memoized, so a secret
// added to the environment later is still picked up by uncached callers.
func (c *Client) GetSecret(ctx context.Context, uri string, useCache bool) (string, error) {
	if useCache {
		c.mu.RLock()
		secret, ok := c.resolved[uri]
		c.mu.RUnlock()
		if ok {
			return secret, nil
		}
	}

	secret, err := c.vault.GetSecret(ctx, uri)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.resolved[uri] = secret
	c.mu.Unlock()
	return secret, nil
}

// Ping checks if the vault is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.vault.Ping(ctx)
}

// Close drops memoized secrets and closes the vault.
func (c *Client) Close() error {
	c.mu.Lock()
	c.resolved = make(map[string]string)
	c.mu.Unlock()
	return c.vault.Close()
}
