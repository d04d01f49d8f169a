// Package models contains domain models for the profile service.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDField is the key under which every persisted document carries its identifier.
const IDField = "_id"

var (
	// ErrInvalidJSON is returned when input is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNotJSONObject is returned when well-formed JSON is not an object.
	ErrNotJSONObject = errors.New("JSON value must be an object")
)

// Document is an opaque, ordered key/value record. It is also used for
// filters and update field sets, which share the same shape.
type Document bson.D

// ParseDocument parses a JSON object into a Document, preserving key order.
// Relaxed MongoDB Extended JSON is accepted, so {"$oid": "..."} style values
// decode to their native types.
func ParseDocument(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}

	var probe interface{}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, ok := probe.(map[string]interface{}); !ok {
		return nil, ErrNotJSONObject
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(trimmed, false, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if doc == nil {
		doc = bson.D{}
	}
	return Document(doc), nil
}

// IDFilter returns a filter matching a single identifier.
func IDFilter(id interface{}) Document {
	return Document{{Key: IDField, Value: id}}
}

// Get returns the value stored under key.
func (d Document) Get(key string) (interface{}, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// ID returns the document identifier, if present.
func (d Document) ID() (interface{}, bool) {
	return d.Get(IDField)
}

// IsEmpty reports whether the document has no fields.
func (d Document) IsEmpty() bool {
	return len(d) == 0
}

// BSON returns the document as a driver-native ordered document.
func (d Document) BSON() bson.D {
	if d == nil {
		return bson.D{}
	}
	return bson.D(d)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := ParseDocument(data)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

// MarshalJSON renders the document in field order. Identifiers are written as
// 24-character hex strings and dates as RFC 3339 timestamps.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocument(&buf, primitive.D(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDocument(buf *bytes.Buffer, d primitive.D) error {
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(buf, e.Key); err != nil {
			return err
		}
		if err := writeValue(buf, e.Value); err != nil {
			return fmt.Errorf("field %q: %w", e.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeMap(buf *bytes.Buffer, m map[string]interface{}) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := make(primitive.D, 0, len(keys))
	for _, k := range keys {
		d = append(d, primitive.E{Key: k, Value: m[k]})
	}
	return writeDocument(buf, d)
}

func writeArray(buf *bytes.Buffer, a []interface{}) error {
	buf.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeValue(buf, v); err != nil {
			return err
		}
	}
	buf.WriteByte(']')
	return nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	b, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte(':')
	return nil
}

func writeValue(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case nil, primitive.Null, primitive.Undefined:
		buf.WriteString("null")
		return nil
	case Document:
		return writeDocument(buf, primitive.D(val))
	case primitive.D:
		return writeDocument(buf, val)
	case primitive.M:
		return writeMap(buf, val)
	case map[string]interface{}:
		return writeMap(buf, val)
	case primitive.A:
		return writeArray(buf, val)
	case []interface{}:
		return writeArray(buf, val)
	case primitive.ObjectID:
		return writeJSON(buf, val.Hex())
	case primitive.DateTime:
		return writeJSON(buf, val.Time().UTC().Format(time.RFC3339Nano))
	case primitive.Decimal128:
		return writeJSON(buf, val.String())
	case primitive.Timestamp:
		return writeJSON(buf, map[string]uint32{"t": val.T, "i": val.I})
	case primitive.Binary:
		return writeJSON(buf, val.Data)
	case primitive.Regex:
		return writeJSON(buf, val.String())
	case primitive.Symbol:
		return writeJSON(buf, string(val))
	case primitive.JavaScript:
		return writeJSON(buf, string(val))
	default:
		return writeJSON(buf, val)
	}
}

func writeJSON(buf *bytes.Buffer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
