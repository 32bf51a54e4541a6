package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store on top of a *mongo.Database.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps an already-connected database handle.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", collection, result.InsertedID)
	}
	return id, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) FindAll(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{}, options.ListCollections().SetNameOnly(true))
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
