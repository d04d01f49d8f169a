// Package dotenv provides a vault backed by the process environment and .env files.
package dotenv

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pratyay/profile-service/internal/core/vault"
)

// Scheme is the URI scheme handled by this vault.
const Scheme = "dotenv://"

// Vault implements the vault.Vault interface. Process environment variables
// take precedence over values read from files.
type Vault struct {
	files map[string]string
}

// NewVault creates a new DotEnv vault. Each file is read without modifying the
// process environment; missing files are skipped.
func NewVault(files ...string) (*Vault, error) {
	values := make(map[string]string)
	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		read, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", file, err)
		}
		for k, v := range read {
			values[k] = v
		}
	}
	return &Vault{files: values}, nil
}

// GetSecret resolves a dotenv:// reference.
func (v *Vault) GetSecret(ctx context.Context, uri string) (string, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return "", fmt.Errorf("unsupported secret reference %q", uri)
	}
	key := strings.TrimPrefix(uri, Scheme)
	if key == "" {
		return "", fmt.Errorf("empty secret key in %q", uri)
	}

	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	if value := v.files[key]; value != "" {
		return value, nil
	}

	return "", fmt.Errorf("%w: %s", vault.ErrSecretNotFound, key)
}

// Ping always succeeds.
func (v *Vault) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (v *Vault) Close() error {
	return nil
}
