// Package documents provides the generic document repository.
package documents

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pratyay/profile-service/internal/core/docdb"
	"github.com/pratyay/profile-service/internal/domain/models"
)

// Repository implements docdb.DocumentRepository on top of handles obtained
// from a docdb.Client. It holds no per-collection state.
type Repository struct {
	client docdb.Client
}

// NewRepository creates a new Repository.
func NewRepository(client docdb.Client) *Repository {
	return &Repository{client: client}
}

// Insert stores one document and returns the generated identifier.
func (r *Repository) Insert(ctx context.Context, database, collection string, doc models.Document) (interface{}, error) {
	coll, err := r.client.Collection(ctx, database, collection)
	if err != nil {
		return nil, err
	}
	return coll.InsertOne(ctx, doc.BSON())
}

// FindOne returns the first match or nil.
func (r *Repository) FindOne(ctx context.Context, database, collection string, filter models.Document) (models.Document, error) {
	coll, err := r.client.Collection(ctx, database, collection)
	if err != nil {
		return nil, err
	}

	var doc bson.D
	if err := coll.FindOne(ctx, filter.BSON()).Decode(&doc); err != nil {
		if errors.Is(err, docdb.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return models.Document(doc), nil
}

// FindMany returns all matches, capped at limit when limit is positive.
func (r *Repository) FindMany(ctx context.Context, database, collection string, filter models.Document, limit int64) ([]models.Document, error) {
	coll, err := r.client.Collection(ctx, database, collection)
	if err != nil {
		return nil, err
	}

	var opts *docdb.FindOptions
	if limit > 0 {
		opts = &docdb.FindOptions{Limit: limit}
	}

	cursor, err := coll.Find(ctx, filter.BSON(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	result := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		result = append(result, models.Document(d))
	}
	return result, nil
}

// UpdateOne applies a field-level $set to the first match.
func (r *Repository) UpdateOne(ctx context.Context, database, collection string, filter, fields models.Document) (*docdb.UpdateResult, error) {
	coll, err := r.client.Collection(ctx, database, collection)
	if err != nil {
		return nil, err
	}
	return coll.UpdateOne(ctx, filter.BSON(), bson.D{{Key: "$set", Value: fields.BSON()}})
}

// DeleteOne removes the first match.
func (r *Repository) DeleteOne(ctx context.Context, database, collection string, filter models.Document) (*docdb.DeleteResult, error) {
	coll, err := r.client.Collection(ctx, database, collection)
	if err != nil {
		return nil, err
	}
	return coll.DeleteOne(ctx, filter.BSON())
}
