// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/pratyay/profile-service/internal/core/cache"
	"github.com/pratyay/profile-service/internal/core/docdb"
	"github.com/pratyay/profile-service/internal/core/vault"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	DocDB  DocDBConfig
	Vault  VaultConfig
	Blog   BlogConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host       string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port       int    `env:"SERVER_PORT" envDefault:"8080"`
	GinMode    string `env:"GIN_MODE" envDefault:"release"`
	EnableDocs bool   `env:"ENABLE_DOCS" envDefault:"true"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheConfig holds cache-related configuration.
type CacheConfig struct {
	Type       string `env:"CACHE_TYPE" envDefault:"none"`
	URL        string `env:"REDIS_URL"`
	Host       string `env:"REDIS_HOST" envDefault:"localhost"`
	Port       string `env:"REDIS_PORT" envDefault:"6379"`
	Password   string `env:"REDIS_PASSWORD"`
	DB         int    `env:"REDIS_DB" envDefault:"0"`
	TTLSeconds int    `env:"CACHE_TTL_SECONDS" envDefault:"300"`

	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"1s"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// DocDBConfig holds document database configuration. URI may be empty;
// a missing value surfaces on the first document request.
type DocDBConfig struct {
	Type    string `env:"DOCDB_TYPE" envDefault:"mongodb"`
	URI     string `env:"MONGODB_URI"`
	AppName string `env:"MONGODB_APP_NAME" envDefault:"profile-service"`
}

// VaultConfig holds vault configuration.
type VaultConfig struct {
	Type           string `env:"VAULT_TYPE" envDefault:"dotenv"`
	AdminSecretURI string `env:"ADMIN_PASS_URI" envDefault:"dotenv://ADMIN_PASS"`
}

// BlogConfig holds the blog proxy configuration.
type BlogConfig struct {
	APIURL         string `env:"BLOG_API_URL" envDefault:"https://gql.hashnode.com"`
	Host           string `env:"BLOG_HOST" envDefault:"pratyaywrites.hashnode.dev"`
	TimeoutSeconds int    `env:"BLOG_TIMEOUT_SECONDS" envDefault:"15"`
}

// Timeout returns the upstream request timeout.
func (c BlogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load loads configuration from a .env file, if present, and the environment.
func Load() (*Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be expressed as struct tags.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}

	c.Cache.Type = strings.ToLower(strings.TrimSpace(c.Cache.Type))
	switch c.Cache.Type {
	case string(cache.TypeNone), string(cache.TypeRedis):
	default:
		return fmt.Errorf("unsupported CACHE_TYPE: %q", c.Cache.Type)
	}
	if c.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("invalid CACHE_TTL_SECONDS: %d", c.Cache.TTLSeconds)
	}
	if c.Cache.RetryAttempts < 1 {
		return fmt.Errorf("invalid REDIS_RETRY_ATTEMPTS: %d", c.Cache.RetryAttempts)
	}

	c.DocDB.Type = strings.ToLower(strings.TrimSpace(c.DocDB.Type))
	switch docdb.Type(c.DocDB.Type) {
	case docdb.TypeMongoDB, docdb.TypeCosmosDB:
	default:
		return fmt.Errorf("unsupported DOCDB_TYPE: %q", c.DocDB.Type)
	}

	if vault.Type(strings.ToLower(c.Vault.Type)) != vault.TypeDotEnv {
		return fmt.Errorf("unsupported VAULT_TYPE: %q", c.Vault.Type)
	}

	if c.Blog.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid BLOG_TIMEOUT_SECONDS: %d", c.Blog.TimeoutSeconds)
	}

	origins := c.CORS.AllowOrigins[:0]
	for _, o := range c.CORS.AllowOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORS.AllowOrigins = origins

	return nil
}
