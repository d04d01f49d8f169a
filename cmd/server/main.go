// Package main is the entry point for the Profile Service.
// @title Profile Service API
// @version 1.0
// @description Generic document CRUD over MongoDB plus a read-only blog proxy

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	_ "github.com/pratyay/profile-service/docs"
	"github.com/pratyay/profile-service/internal/api/handlers"
	"github.com/pratyay/profile-service/internal/api/middleware"
	"github.com/pratyay/profile-service/internal/api/routes"
	"github.com/pratyay/profile-service/internal/config"
	"github.com/pratyay/profile-service/internal/core/cache"
	"github.com/pratyay/profile-service/internal/core/docdb"
	"github.com/pratyay/profile-service/internal/core/vault"
	rediscache "github.com/pratyay/profile-service/internal/infrastructure/cache/redis"
	"github.com/pratyay/profile-service/internal/infrastructure/docdb/mongodb"
	dotenvvault "github.com/pratyay/profile-service/internal/infrastructure/vault/dotenv"
	"github.com/pratyay/profile-service/internal/pkg/logger"
	"github.com/pratyay/profile-service/internal/services/access"
	"github.com/pratyay/profile-service/internal/services/blog"
	"github.com/pratyay/profile-service/internal/services/documents"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	vaultClient, err := createVaultClient(cfg.Vault)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize vault client")
	}
	defer vaultClient.Close()

	// Cache is optional; nil means disabled
	cacheClient, err := createCacheClient(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache client")
	}
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	docDBClient, err := createDocDBClient(cfg.DocDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document store client")
	}
	if cfg.DocDB.URI == "" {
		log.Warn().Msg("MONGODB_URI is not set; document requests will fail until it is configured")
	}

	gin.SetMode(cfg.Server.GinMode)

	router := setupRouter(cfg, cacheClient, docDBClient, vaultClient)

	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := docDBClient.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close document store client")
	}

	log.Info().Msg("server exited")
}

// createVaultClient creates a vault client based on the configuration.
func createVaultClient(cfg config.VaultConfig) (vault.Client, error) {
	switch vault.Type(strings.ToLower(cfg.Type)) {
	case vault.TypeDotEnv:
		return dotenvvault.NewClient(".env")
	default:
		return nil, fmt.Errorf("unsupported vault type: %s", cfg.Type)
	}
}

// createDocDBClient creates a document database client based on the
// configuration. The connection is made lazily on the first document request.
func createDocDBClient(cfg config.DocDBConfig) (docdb.Client, error) {
	switch docdb.Type(cfg.Type) {
	case docdb.TypeMongoDB, docdb.TypeCosmosDB:
		// Cosmos DB is reached through its MongoDB API
		return mongodb.NewManager(&mongodb.ManagerConfig{
			URI:     cfg.URI,
			AppName: cfg.AppName,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported docdb type: %s", cfg.Type)
	}
}

// createCacheClient creates a cache client based on the configuration. It
// returns nil when caching is disabled.
func createCacheClient(cfg config.CacheConfig) (cache.Client, error) {
	switch cache.Type(cfg.Type) {
	case cache.TypeNone:
		return nil, nil
	case cache.TypeRedis:
		return rediscache.NewClient(rediscache.Config{
			URL:           cfg.URL,
			Host:          cfg.Host,
			Port:          cfg.Port,
			Password:      cfg.Password,
			DB:            cfg.DB,
			DefaultTTL:    cfg.TTL(),
			KeyPrefix:     "profile:",
			RetryAttempts: cfg.RetryAttempts,
			RetryInterval: cfg.RetryInterval,
		})
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, cacheClient cache.Client, docDBClient docdb.Client, vaultClient vault.Client) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware("/health", "/ready", "/live")
	errorMw := middleware.NewErrorMiddleware()
	corsCfg := middleware.DefaultCORSConfig(cfg.CORS.AllowOrigins...)

	gate := access.NewGate(&access.GateConfig{
		Vault:     vaultClient,
		SecretURI: cfg.Vault.AdminSecretURI,
	})

	blogCfg := &blog.ClientConfig{
		Endpoint: cfg.Blog.APIURL,
		Host:     cfg.Blog.Host,
		Timeout:  cfg.Blog.Timeout(),
		Cache:    cacheClient,
		CacheTTL: cfg.Cache.TTL(),
	}

	routesCfg := &routes.Config{
		HealthHandler:    handlers.NewHealthHandler(cacheClient, docDBClient),
		DocumentsHandler: handlers.NewDocumentsHandler(documents.NewRepository(docDBClient), gate),
		BlogsHandler:     handlers.NewBlogsHandler(blog.NewClient(blogCfg)),
		EnableDocs:       cfg.Server.EnableDocs,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, corsCfg)

	return router
}
