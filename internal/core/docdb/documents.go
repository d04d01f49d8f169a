package docdb

import (
	"context"

	"github.com/pratyay/profile-service/internal/domain/models"
)

// DocumentRepository performs stateless operations against any database and
// collection named at call time. Store failures are returned unchanged.
type DocumentRepository interface {
	// Insert stores one document and returns the generated identifier.
	Insert(ctx context.Context, database, collection string, doc models.Document) (interface{}, error)

	// FindOne returns the first document matching filter, or nil when none
	// matches. An empty filter matches an arbitrary document.
	FindOne(ctx context.Context, database, collection string, filter models.Document) (models.Document, error)

	// FindMany returns the documents matching filter. A positive limit caps
	// the result; zero means unbounded. Ordering is store-defined.
	FindMany(ctx context.Context, database, collection string, filter models.Document, limit int64) ([]models.Document, error)

	// UpdateOne sets fields on the first document matching filter. Zero
	// matches is not an error.
	UpdateOne(ctx context.Context, database, collection string, filter, fields models.Document) (*UpdateResult, error)

	// DeleteOne removes the first document matching filter. Zero matches is
	// not an error.
	DeleteOne(ctx context.Context, database, collection string, filter models.Document) (*DeleteResult, error)
}
