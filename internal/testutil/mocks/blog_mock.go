package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pratyay/profile-service/internal/domain/models"
)

// MockBlogClient is a mock implementation of blog.Client.
type MockBlogClient struct {
	mock.Mock
}

// GetPosts returns recent posts.
func (m *MockBlogClient) GetPosts(ctx context.Context, num int) ([]models.BlogPost, error) {
	args := m.Called(ctx, num)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}
