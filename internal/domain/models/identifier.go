package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidObjectID is returned when a string is not a 24-character hex identifier.
var ErrInvalidObjectID = errors.New("invalid ObjectId format")

// ParseObjectID parses a 24-character hex string into an identifier.
func ParseObjectID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidObjectID, s)
	}
	return id, nil
}

// FormatID renders an identifier returned by the store for API responses.
func FormatID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
