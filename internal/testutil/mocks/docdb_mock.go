package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pratyay/profile-service/internal/core/docdb"
	"github.com/pratyay/profile-service/internal/domain/models"
)

// MockCollection is a mock implementation of docdb.Collection.
type MockCollection struct {
	mock.Mock
}

// Name returns the collection name.
func (m *MockCollection) Name() string {
	args := m.Called()
	return args.String(0)
}

// InsertOne inserts a single document.
func (m *MockCollection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	args := m.Called(ctx, document)
	return args.Get(0), args.Error(1)
}

// FindOne finds a single document.
func (m *MockCollection) FindOne(ctx context.Context, filter interface{}) docdb.SingleResult {
	args := m.Called(ctx, filter)
	return args.Get(0).(docdb.SingleResult)
}

// Find finds multiple documents.
func (m *MockCollection) Find(ctx context.Context, filter interface{}, opts *docdb.FindOptions) (docdb.Cursor, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docdb.Cursor), args.Error(1)
}

// UpdateOne updates a single document.
func (m *MockCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// DeleteOne deletes a single document.
func (m *MockCollection) DeleteOne(ctx context.Context, filter interface{}) (*docdb.DeleteResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.DeleteResult), args.Error(1)
}

// MockDocDBClient is a mock implementation of docdb.Client.
type MockDocDBClient struct {
	mock.Mock
}

// NewMockDocDBClient creates a new MockDocDBClient.
func NewMockDocDBClient() *MockDocDBClient {
	return &MockDocDBClient{}
}

// Database returns a database handle.
func (m *MockDocDBClient) Database(ctx context.Context, name string) (docdb.Database, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docdb.Database), args.Error(1)
}

// Collection returns a collection handle.
func (m *MockDocDBClient) Collection(ctx context.Context, database, collection string) (docdb.Collection, error) {
	args := m.Called(ctx, database, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(docdb.Collection), args.Error(1)
}

// Ping checks the database connection.
func (m *MockDocDBClient) Ping(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Close closes the database connection.
func (m *MockDocDBClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockSingleResult is a mock implementation of docdb.SingleResult.
type MockSingleResult struct {
	mock.Mock
}

// Decode decodes the result. A second return argument, when present, is a
// function used to populate v.
func (m *MockSingleResult) Decode(v interface{}) error {
	args := m.Called(v)
	if len(args) > 1 {
		if fill, ok := args.Get(1).(func(interface{})); ok {
			fill(v)
		}
	}
	return args.Error(0)
}

// Err returns any error.
func (m *MockSingleResult) Err() error {
	args := m.Called()
	return args.Error(0)
}

// MockCursor is a mock implementation of docdb.Cursor.
type MockCursor struct {
	mock.Mock
}

// Next advances the cursor.
func (m *MockCursor) Next(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Decode decodes the current document.
func (m *MockCursor) Decode(v interface{}) error {
	args := m.Called(v)
	return args.Error(0)
}

// All decodes all documents. A second return argument, when present, is a
// function used to populate results.
func (m *MockCursor) All(ctx context.Context, results interface{}) error {
	args := m.Called(ctx, results)
	if len(args) > 1 {
		if fill, ok := args.Get(1).(func(interface{})); ok {
			fill(results)
		}
	}
	return args.Error(0)
}

// Err returns any cursor error.
func (m *MockCursor) Err() error {
	args := m.Called()
	return args.Error(0)
}

// Close closes the cursor.
func (m *MockCursor) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockDocumentRepository is a mock implementation of docdb.DocumentRepository.
type MockDocumentRepository struct {
	mock.Mock
}

// Insert stores a document.
func (m *MockDocumentRepository) Insert(ctx context.Context, database, collection string, doc models.Document) (interface{}, error) {
	args := m.Called(ctx, database, collection, doc)
	return args.Get(0), args.Error(1)
}

// FindOne finds a single document.
func (m *MockDocumentRepository) FindOne(ctx context.Context, database, collection string, filter models.Document) (models.Document, error) {
	args := m.Called(ctx, database, collection, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Document), args.Error(1)
}

// FindMany finds documents.
func (m *MockDocumentRepository) FindMany(ctx context.Context, database, collection string, filter models.Document, limit int64) ([]models.Document, error) {
	args := m.Called(ctx, database, collection, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

// UpdateOne updates a document.
func (m *MockDocumentRepository) UpdateOne(ctx context.Context, database, collection string, filter, fields models.Document) (*docdb.UpdateResult, error) {
	args := m.Called(ctx, database, collection, filter, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.UpdateResult), args.Error(1)
}

// DeleteOne deletes a document.
func (m *MockDocumentRepository) DeleteOne(ctx context.Context, database, collection string, filter models.Document) (*docdb.DeleteResult, error) {
	args := m.Called(ctx, database, collection, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docdb.DeleteResult), args.Error(1)
}
