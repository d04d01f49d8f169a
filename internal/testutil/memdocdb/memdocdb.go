// Package memdocdb provides an in-memory docdb.Client for tests.
//
// Filters support top-level equality plus the $eq, $ne, $gt, $gte, $lt, $lte,
// $in and $exists operators. Updates support $set only. Documents are stored
// in insertion order.
package memdocdb

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratyay/profile-service/internal/core/docdb"
)

// Client is an in-memory implementation of docdb.Client.
type Client struct {
	mu     sync.Mutex
	data   map[string]map[string][]bson.D
	alive  bool
	err    error
	closed bool
}

// New creates an empty in-memory store that answers pings.
func New() *Client {
	return &Client{
		data:  make(map[string]map[string][]bson.D),
		alive: true,
	}
}

// SetAlive controls the result of Ping.
func (c *Client) SetAlive(alive bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.alive = alive
}

// FailWith makes every subsequent handle request and collection operation
// return err. A nil err restores normal behaviour.
func (c *Client) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// Count returns the number of documents stored in a collection.
func (c *Client) Count(database, collection string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data[database][collection])
}

// Closed reports whether Close was called.
func (c *Client) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Database returns a database handle.
func (c *Client) Database(ctx context.Context, name string) (docdb.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return &database{client: c, name: name}, nil
}

// Collection returns a collection handle.
func (c *Client) Collection(ctx context.Context, databaseName, collectionName string) (docdb.Collection, error) {
	db, err := c.Database(ctx, databaseName)
	if err != nil {
		return nil, err
	}
	return db.Collection(collectionName), nil
}

// Ping reports the configured liveness.
func (c *Client) Ping(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alive
}

// Close marks the client closed.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

type database struct {
	client *Client
	name   string
}

func (d *database) Name() string { return d.name }

func (d *database) Collection(name string) docdb.Collection {
	return &collection{client: d.client, database: d.name, name: name}
}

type collection struct {
	client   *Client
	database string
	name     string
}

func (c *collection) Name() string { return c.name }

// docs must be called with the client lock held.
func (c *collection) docs() []bson.D {
	return c.client.data[c.database][c.name]
}

// setDocs must be called with the client lock held.
func (c *collection) setDocs(docs []bson.D) {
	if c.client.data[c.database] == nil {
		c.client.data[c.database] = make(map[string][]bson.D)
	}
	c.client.data[c.database][c.name] = docs
}

func (c *collection) InsertOne(ctx context.Context, document interface{}) (interface{}, error) {
	doc, err := toD(document)
	if err != nil {
		return nil, err
	}

	c.client.mu.Lock()
	defer c.client.mu.Unlock()
	if c.client.err != nil {
		return nil, c.client.err
	}

	id, ok := lookup(doc, "_id")
	if !ok {
		id = primitive.NewObjectID()
		doc = append(bson.D{{Key: "_id", Value: id}}, doc...)
	}
	for _, existing := range c.docs() {
		if other, _ := lookup(existing, "_id"); equal(other, id) {
			return nil, fmt.Errorf("E11000 duplicate key error collection: %s.%s", c.database, c.name)
		}
	}

	c.setDocs(append(c.docs(), doc))
	return id, nil
}

func (c *collection) FindOne(ctx context.Context, filter interface{}) docdb.SingleResult {
	docs, err := c.find(filter, 1)
	if err != nil {
		return &singleResult{err: err}
	}
	if len(docs) == 0 {
		return &singleResult{err: docdb.ErrNoDocuments}
	}
	return &singleResult{doc: docs[0]}
}

func (c *collection) Find(ctx context.Context, filter interface{}, opts *docdb.FindOptions) (docdb.Cursor, error) {
	var limit int64
	if opts != nil {
		limit = opts.Limit
	}
	docs, err := c.find(filter, limit)
	if err != nil {
		return nil, err
	}
	return &cursor{docs: docs, pos: -1}, nil
}

func (c *collection) find(filter interface{}, limit int64) ([]bson.D, error) {
	f, err := toD(filter)
	if err != nil {
		return nil, err
	}

	c.client.mu.Lock()
	defer c.client.mu.Unlock()
	if c.client.err != nil {
		return nil, c.client.err
	}

	var out []bson.D
	for _, doc := range c.docs() {
		ok, err := matches(doc, f)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, doc)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (c *collection) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*docdb.UpdateResult, error) {
	f, err := toD(filter)
	if err != nil {
		return nil, err
	}
	u, err := toD(update)
	if err != nil {
		return nil, err
	}

	var set bson.D
	for _, e := range u {
		if e.Key != "$set" {
			return nil, fmt.Errorf("unsupported update operator %q", e.Key)
		}
		if set, err = toD(e.Value); err != nil {
			return nil, err
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("'$set' is empty. You must specify a field like so: {$set: {<field>: ...}}")
	}

	c.client.mu.Lock()
	defer c.client.mu.Unlock()
	if c.client.err != nil {
		return nil, c.client.err
	}

	docs := c.docs()
	for i, doc := range docs {
		ok, err := matches(doc, f)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		modified := false
		for _, field := range set {
			current, exists := lookup(doc, field.Key)
			if exists && equal(current, field.Value) {
				continue
			}
			doc = assign(doc, field.Key, field.Value)
			modified = true
		}
		docs[i] = doc

		result := &docdb.UpdateResult{MatchedCount: 1}
		if modified {
			result.ModifiedCount = 1
		}
		return result, nil
	}
	return &docdb.UpdateResult{}, nil
}

func (c *collection) DeleteOne(ctx context.Context, filter interface{}) (*docdb.DeleteResult, error) {
	f, err := toD(filter)
	if err != nil {
		return nil, err
	}

	c.client.mu.Lock()
	defer c.client.mu.Unlock()
	if c.client.err != nil {
		return nil, c.client.err
	}

	docs := c.docs()
	for i, doc := range docs {
		ok, err := matches(doc, f)
		if err != nil {
			return nil, err
		}
		if ok {
			c.setDocs(append(docs[:i:i], docs[i+1:]...))
			return &docdb.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &docdb.DeleteResult{}, nil
}

type singleResult struct {
	doc bson.D
	err error
}

func (r *singleResult) Decode(v interface{}) error {
	if r.err != nil {
		return r.err
	}
	return roundTrip(r.doc, v)
}

func (r *singleResult) Err() error { return r.err }

type cursor struct {
	docs []bson.D
	pos  int
}

func (c *cursor) Next(ctx context.Context) bool {
	if c.pos+1 >= len(c.docs) {
		return false
	}
	c.pos++
	return true
}

func (c *cursor) Decode(v interface{}) error {
	if c.pos < 0 || c.pos >= len(c.docs) {
		return fmt.Errorf("cursor is not positioned on a document")
	}
	return roundTrip(c.docs[c.pos], v)
}

func (c *cursor) All(ctx context.Context, results interface{}) error {
	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("results argument must be a pointer to a slice, got %T", results)
	}
	slice := rv.Elem()
	elemType := slice.Type().Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(c.docs)-c.pos-1)
	for c.Next(ctx) {
		elem := reflect.New(elemType)
		if err := c.Decode(elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

func (c *cursor) Err() error { return nil }

func (c *cursor) Close(ctx context.Context) error { return nil }

// toD normalizes any BSON-marshalable document into a bson.D.
func toD(v interface{}) (bson.D, error) {
	if v == nil {
		return bson.D{}, nil
	}
	var d bson.D
	if err := roundTrip(v, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// roundTrip copies src into dst through the BSON codec so stored values get
// the same types a real server would return.
func roundTrip(src, dst interface{}) error {
	raw, err := bson.Marshal(src)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, dst)
}

func lookup(doc bson.D, path string) (interface{}, bool) {
	head, rest, nested := strings.Cut(path, ".")
	for _, e := range doc {
		if e.Key != head {
			continue
		}
		if !nested {
			return e.Value, true
		}
		sub, ok := e.Value.(bson.D)
		if !ok {
			return nil, false
		}
		return lookup(sub, rest)
	}
	return nil, false
}

func assign(doc bson.D, key string, value interface{}) bson.D {
	for i, e := range doc {
		if e.Key == key {
			doc[i].Value = value
			return doc
		}
	}
	return append(doc, bson.E{Key: key, Value: value})
}

func matches(doc, filter bson.D) (bool, error) {
	for _, cond := range filter {
		if strings.HasPrefix(cond.Key, "$") {
			return false, fmt.Errorf("unknown top level operator: %s", cond.Key)
		}
		value, exists := lookup(doc, cond.Key)

		ops, isOps := operators(cond.Value)
		if !isOps {
			if !exists || !equal(value, cond.Value) {
				return false, nil
			}
			continue
		}

		for _, op := range ops {
			ok, err := apply(op.Key, value, exists, op.Value)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// operators returns v as an operator document when every key starts with '$'.
func operators(v interface{}) (bson.D, bool) {
	d, ok := v.(bson.D)
	if !ok || len(d) == 0 {
		return nil, false
	}
	for _, e := range d {
		if !strings.HasPrefix(e.Key, "$") {
			return nil, false
		}
	}
	return d, true
}

func apply(op string, value interface{}, exists bool, arg interface{}) (bool, error) {
	switch op {
	case "$eq":
		return exists && equal(value, arg), nil
	case "$ne":
		return !exists || !equal(value, arg), nil
	case "$gt", "$gte", "$lt", "$lte":
		if !exists {
			return false, nil
		}
		cmp, ok := compare(value, arg)
		if !ok {
			return false, nil
		}
		switch op {
		case "$gt":
			return cmp > 0, nil
		case "$gte":
			return cmp >= 0, nil
		case "$lt":
			return cmp < 0, nil
		default:
			return cmp <= 0, nil
		}
	case "$in":
		list, ok := arg.(bson.A)
		if !ok {
			return false, fmt.Errorf("$in needs an array")
		}
		for _, candidate := range list {
			if exists && equal(value, candidate) {
				return true, nil
			}
		}
		return false, nil
	case "$exists":
		want, _ := arg.(bool)
		return exists == want, nil
	default:
		return false, fmt.Errorf("unknown operator: %s", op)
	}
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func compare(a, b interface{}) (int, bool) {
	if x, ok := number(a); ok {
		y, ok := number(b)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		default:
			return 0, true
		}
	}
	if x, ok := a.(string); ok {
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(x, y), true
	}
	return 0, false
}

func equal(a, b interface{}) bool {
	if x, ok := number(a); ok {
		y, ok := number(b)
		return ok && x == y
	}
	return reflect.DeepEqual(a, b)
}
