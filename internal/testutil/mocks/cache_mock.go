package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pratyay/profile-service/internal/core/cache"
)

// MockCacheClient is a mock implementation of cache.Client.
type MockCacheClient struct {
	mock.Mock
}

// NewMockCacheClient creates a new MockCacheClient.
func NewMockCacheClient() *MockCacheClient {
	return &MockCacheClient{}
}

// GetCache returns nil; the mock has no raw cache.
func (m *MockCacheClient) GetCache() cache.Cache {
	return nil
}

// GetJSON retrieves and decodes a value. A third return argument, when
// present, is a function used to populate v.
func (m *MockCacheClient) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	args := m.Called(ctx, key, v)
	if len(args) > 2 {
		if fill, ok := args.Get(2).(func(interface{})); ok {
			fill(v)
		}
	}
	return args.Bool(0), args.Error(1)
}

// SetJSON stores a value.
func (m *MockCacheClient) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, v, ttl)
	return args.Error(0)
}

// Delete removes a value from the cache.
func (m *MockCacheClient) Delete(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// Ping checks the cache connection.
func (m *MockCacheClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the cache connection.
func (m *MockCacheClient) Close() error {
	args := m.Called()
	return args.Error(0)
}
