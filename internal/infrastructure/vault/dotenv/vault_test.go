package dotenv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratyay/profile-service/internal/core/vault"
	"github.com/pratyay/profile-service/internal/infrastructure/vault/dotenv"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDotEnvVault_GetSecretFromEnv(t *testing.T) {
	t.Setenv("TEST_ENV_SECRET", "env-secret-value")

	client, err := dotenv.NewClient()
	require.NoError(t, err)

	value, err := client.GetSecret(context.Background(), "dotenv://TEST_ENV_SECRET", false)
	assert.NoError(t, err)
	assert.Equal(t, "env-secret-value", value)
}

func TestDotEnvVault_GetSecretFromFile(t *testing.T) {
	path := writeEnvFile(t, "FILE_ONLY_SECRET=from-file\n")

	client, err := dotenv.NewClient(path)
	require.NoError(t, err)

	value, err := client.GetSecret(context.Background(), "dotenv://FILE_ONLY_SECRET", false)
	assert.NoError(t, err)
	assert.Equal(t, "from-file", value)

	_, set := os.LookupEnv("FILE_ONLY_SECRET")
	assert.False(t, set, "reading a file must not modify the process environment")
}

func TestDotEnvVault_EnvOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "SHARED_SECRET=from-file\n")
	t.Setenv("SHARED_SECRET", "from-env")

	client, err := dotenv.NewClient(path)
	require.NoError(t, err)

	value, err := client.GetSecret(context.Background(), "dotenv://SHARED_SECRET", false)
	assert.NoError(t, err)
	assert.Equal(t, "from-env", value)
}

func TestDotEnvVault_MissingFileIsSkipped(t *testing.T) {
	client, err := dotenv.NewClient(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)
	assert.NotNil(t, client.GetVault())
}

func TestDotEnvVault_GetSecretNotFound(t *testing.T) {
	client, err := dotenv.NewClient()
	require.NoError(t, err)

	value, err := client.GetSecret(context.Background(), "dotenv://NON_EXISTENT_SECRET_KEY", false)
	assert.Error(t, err)
	assert.Empty(t, value)
	assert.True(t, errors.Is(err, vault.ErrSecretNotFound))
}

func TestDotEnvVault_RejectsOtherSchemes(t *testing.T) {
	client, err := dotenv.NewClient()
	require.NoError(t, err)

	_, err = client.GetSecret(context.Background(), "azure://ADMIN_PASS", false)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, vault.ErrSecretNotFound))

	_, err = client.GetSecret(context.Background(), "dotenv://", false)
	assert.Error(t, err)
}

func TestDotEnvVault_PingAndClose(t *testing.T) {
	client, err := dotenv.NewClient()
	require.NoError(t, err)

	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
}

func TestDotEnvClient_CachedLookups(t *testing.T) {
	t.Setenv("TEST_ROTATED_SECRET", "first")

	client, err := dotenv.NewClient()
	require.NoError(t, err)
	ctx := context.Background()

	value, err := client.GetSecret(ctx, "dotenv://TEST_ROTATED_SECRET", true)
	require.NoError(t, err)
	assert.Equal(t, "first", value)

	t.Setenv("TEST_ROTATED_SECRET", "second")

	value, err = client.GetSecret(ctx, "dotenv://TEST_ROTATED_SECRET", true)
	require.NoError(t, err)
	assert.Equal(t, "first", value)

	value, err = client.GetSecret(ctx, "dotenv://TEST_ROTATED_SECRET", false)
	require.NoError(t, err)
	assert.Equal(t, "second", value)

	require.NoError(t, client.Close())
	t.Setenv("TEST_ROTATED_SECRET", "third")
	value, err = client.GetSecret(ctx, "dotenv://TEST_ROTATED_SECRET", true)
	require.NoError(t, err)
	assert.Equal(t, "third", value)
}

func TestDotEnvClient_MissingSecretIsNotCached(t *testing.T) {
	client, err := dotenv.NewClient()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = client.GetSecret(ctx, "dotenv://TEST_LATE_SECRET", true)
	assert.True(t, errors.Is(err, vault.ErrSecretNotFound))

	t.Setenv("TEST_LATE_SECRET", "now-set")
	value, err := client.GetSecret(ctx, "dotenv://TEST_LATE_SECRET", true)
	require.NoError(t, err)
	assert.Equal(t, "now-set", value)
}
