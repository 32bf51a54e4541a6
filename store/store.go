package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// Store is the minimal document store capability the handlers depend on.
// Filters use the Mongo dialect: exact-match values plus primitive.Regex
// for anchored case-insensitive matching.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error
	FindAll(ctx context.Context, collection string, filter bson.M, out interface{}) error
	CollectionNames(ctx context.Context, limit int) ([]string, error)
	Ping(ctx context.Context) error
}
