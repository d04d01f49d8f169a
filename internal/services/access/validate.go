package access

import (
	"errors"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domainerrors "github.com/pratyay/profile-service/internal/domain/errors"
	"github.com/pratyay/profile-service/internal/domain/models"
)

const maxDatabaseNameLength = 63

// ValidateTarget checks that database and collection names are usable.
func ValidateTarget(database, collection string) error {
	if database == "" {
		return domainerrors.NewValidationError("missing database name", "database is required")
	}
	if collection == "" {
		return domainerrors.NewValidationError("missing collection name", "collection is required")
	}
	if len(database) > maxDatabaseNameLength {
		return domainerrors.NewValidationError("invalid database name", "database name must be at most 63 bytes")
	}
	if strings.ContainsAny(database, "/\\. \"$\x00") {
		return domainerrors.NewValidationError("invalid database name", database)
	}
	if strings.ContainsAny(collection, "$\x00") || strings.HasPrefix(collection, "system.") {
		return domainerrors.NewValidationError("invalid collection name", collection)
	}
	return nil
}

// ParseID parses a 24-character hex identifier.
func ParseID(raw string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, domainerrors.NewValidationError("missing document id", "id is required")
	}
	id, err := models.ParseObjectID(raw)
	if err != nil {
		return primitive.NilObjectID, domainerrors.NewValidationError("invalid ObjectId format", raw)
	}
	return id, nil
}

// ParseQuery parses a free-form JSON object filter. An absent (empty) query
// yields an empty filter that matches every document; blank input is invalid.
func ParseQuery(raw string) (models.Document, error) {
	if raw == "" {
		return models.Document{}, nil
	}
	filter, err := models.ParseDocument([]byte(raw))
	if err != nil {
		if errors.Is(err, models.ErrNotJSONObject) {
			return nil, domainerrors.NewValidationError("query must be a JSON object", raw)
		}
		return nil, domainerrors.NewValidationError("invalid JSON for query", err.Error())
	}
	return filter, nil
}

// ParseLimit parses an optional positive result limit. An empty string yields
// zero, meaning unbounded.
func ParseLimit(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return 0, domainerrors.NewValidationError("limit must be a positive integer", raw)
	}
	return limit, nil
}

// ParseBody parses a request body that must be a JSON object.
func ParseBody(data []byte) (models.Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, domainerrors.NewValidationError("invalid request body", "request body is required")
	}
	doc, err := models.ParseDocument(data)
	if err != nil {
		if errors.Is(err, models.ErrNotJSONObject) {
			return nil, domainerrors.NewValidationError("invalid request body", "request body must be a JSON object")
		}
		return nil, domainerrors.NewValidationError("invalid request body", err.Error())
	}
	return doc, nil
}
