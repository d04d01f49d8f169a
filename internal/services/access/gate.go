// Package access implements the authorization and validation rules applied to
// every document request before it reaches the repository.
package access

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pratyay/profile-service/internal/core/vault"
	domainerrors "github.com/pratyay/profile-service/internal/domain/errors"
)

// DefaultSecretURI is the vault reference of the admin secret.
const DefaultSecretURI = "dotenv://ADMIN_PASS"

// Authorizer decides whether a mutation request may proceed.
type Authorizer interface {
	// Authorize returns a forbidden error unless presented equals the
	// configured admin secret.
	Authorize(ctx context.Context, presented string) error
}

// GateConfig holds the configuration for the Gate.
type GateConfig struct {
	Vault     vault.Client
	SecretURI string
}

// Gate is the admin-secret Authorizer. The secret is resolved from the vault
// once, on the first mutation request. When no secret is configured every
// mutation is rejected.
type Gate struct {
	vault     vault.Client
	secretURI string

	once   sync.Once
	secret string
}

// NewGate creates a new Gate.
func NewGate(cfg *GateConfig) *Gate {
	g := &Gate{secretURI: DefaultSecretURI}
	if cfg != nil {
		g.vault = cfg.Vault
		if cfg.SecretURI != "" {
			g.secretURI = cfg.SecretURI
		}
	}
	return g
}

func (g *Gate) resolve(ctx context.Context) string {
	g.once.Do(func() {
		if g.vault == nil {
			log.Warn().Msg("no vault configured; all mutation requests will be rejected")
			return
		}
		secret, err := g.vault.GetSecret(ctx, g.secretURI, true)
		if err != nil {
			if errors.Is(err, vault.ErrSecretNotFound) {
				log.Warn().Str("secret_uri", g.secretURI).Msg("admin secret not configured; all mutation requests will be rejected")
			} else {
				log.Error().Err(err).Str("secret_uri", g.secretURI).Msg("failed to resolve admin secret; all mutation requests will be rejected")
			}
			return
		}
		g.secret = secret
	})
	return g.secret
}

// Authorize implements Authorizer.
func (g *Gate) Authorize(ctx context.Context, presented string) error {
	secret := g.resolve(ctx)
	if secret == "" || presented == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) != 1 {
		return domainerrors.NewForbiddenError("forbidden: invalid admin password")
	}
	return nil
}
