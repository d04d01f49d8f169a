// Package docdb defines the schemaless document store abstraction: a shared
// client, per-call database and collection handles, and the generic document
// repository built on top of them.
package docdb

import "context"

// SingleResult is the outcome of a FindOne. A miss surfaces as ErrNoDocuments
// from both Decode and Err.
type SingleResult interface {
	Decode(v interface{}) error
	Err() error
}

// Cursor iterates a Find result. Callers must Close it.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(v interface{}) error
	// All decodes every remaining document into results, a pointer to a slice,
	// and closes the cursor.
	All(ctx context.Context, results interface{}) error
	Err() error
	Close(ctx context.Context) error
}

// FindOptions represents options for Find operations.
type FindOptions struct {
	// Limit caps the number of returned documents; zero means unbounded.
	Limit int64
}

// UpdateResult reports how many documents an update matched and changed.
// Setting a field to its current value matches without modifying.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult reports how many documents were removed.
type DeleteResult struct {
	DeletedCount int64
}

// Collection is a per-call handle on one named collection. Filters and
// updates are BSON-encodable values; misses are never errors.
type Collection interface {
	Name() string

	// InsertOne stores document and returns the generated identifier.
	InsertOne(ctx context.Context, document interface{}) (interface{}, error)

	// FindOne returns the first document matching filter.
	FindOne(ctx context.Context, filter interface{}) SingleResult

	// Find returns a cursor over every document matching filter.
	Find(ctx context.Context, filter interface{}, opts *FindOptions) (Cursor, error)

	// UpdateOne applies an update document to the first match of filter.
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*UpdateResult, error)

	// DeleteOne removes the first match of filter.
	DeleteOne(ctx context.Context, filter interface{}) (*DeleteResult, error)
}

// Database is a per-call handle on one named database.
type Database interface {
	Name() string
	Collection(name string) Collection
}
