// Package mongodb provides the MongoDB connection manager and handle implementations.
package mongodb

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pratyay/profile-service/internal/core/docdb"
)

// Connection pool parameters. They are fixed and not runtime-configurable.
const (
	MaxPoolSize     uint64 = 50
	MinPoolSize     uint64 = 10
	MaxConnIdleTime        = 30 * time.Second
	RetryWrites            = true
)

type connectFunc func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error)

// ManagerConfig holds MongoDB connection configuration.
type ManagerConfig struct {
	// URI is the connection string. It is validated on first use, not here.
	URI string
	// AppName is reported to the server for diagnostics.
	AppName string
}

// Manager implements docdb.Client. It lazily creates one pooled client on
// first use and shares it for the lifetime of the process.
type Manager struct {
	uri     string
	appName string
	connect connectFunc

	mu     sync.Mutex
	client *mongo.Client
}

// NewManager creates a new Manager. No connection is made until the first
// handle is requested.
func NewManager(config *ManagerConfig) *Manager {
	m := &Manager{connect: mongo.Connect}
	if config != nil {
		m.uri = strings.TrimSpace(config.URI)
		m.appName = config.AppName
	}
	return m
}

// clientOptions returns the driver options used for the shared client.
func (m *Manager) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(m.uri).
		SetMaxPoolSize(MaxPoolSize).
		SetMinPoolSize(MinPoolSize).
		SetMaxConnIdleTime(MaxConnIdleTime).
		SetRetryWrites(RetryWrites)
	if m.appName != "" {
		opts.SetAppName(m.appName)
	}
	return opts
}

// mongoClient returns the shared client, creating it on first call.
// Concurrent first calls serialize on the mutex so at most one client is
// ever active.
func (m *Manager) mongoClient(ctx context.Context) (*mongo.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}
	if m.uri == "" {
		return nil, docdb.ErrNotConfigured
	}

	client, err := m.connect(ctx, m.clientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	m.client = client

	log.Info().
		Uint64("max_pool_size", MaxPoolSize).
		Uint64("min_pool_size", MinPoolSize).
		Dur("max_conn_idle_time", MaxConnIdleTime).
		Msg("mongodb client initialized")

	return client, nil
}

// Initialized reports whether the shared client has been created.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client != nil
}

// Database returns a handle for the named database.
func (m *Manager) Database(ctx context.Context, name string) (docdb.Database, error) {
	client, err := m.mongoClient(ctx)
	if err != nil {
		return nil, err
	}
	return NewDatabase(client.Database(name)), nil
}

// Collection returns a handle for the named collection.
func (m *Manager) Collection(ctx context.Context, database, collection string) (docdb.Collection, error) {
	db, err := m.Database(ctx, database)
	if err != nil {
		return nil, err
	}
	return db.Collection(collection), nil
}

// Ping verifies the connection to MongoDB. Failures are logged and reported
// as false.
func (m *Manager) Ping(ctx context.Context) bool {
	client, err := m.mongoClient(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("mongodb ping skipped")
		return false
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("mongodb ping failed")
		return false
	}
	return true
}

// Close disconnects the shared client. Closing a manager that never
// connected does nothing.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	client := m.client
	m.client = nil
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	log.Info().Msg("mongodb client closed")
	return nil
}
