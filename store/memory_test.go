package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	Name     string `bson:"name"`
	Category string `bson:"category"`
	Featured bool   `bson:"featured"`
}

func TestMemoryStoreInsertAssignsIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.InsertOne(ctx, "things", testDoc{Name: "a"})
	require.NoError(t, err)
	second, err := s.InsertOne(ctx, "things", testDoc{Name: "b"})
	require.NoError(t, err)

	assert.False(t, first.IsZero())
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, s.Count("things", bson.M{}))
}

func TestMemoryStoreFindOneNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var doc testDoc
	err := s.FindOne(ctx, "things", bson.M{"name": "missing"}, &doc)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRegexFilterIsAnchoredAndCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.InsertOne(ctx, "things", testDoc{Name: "a", Category: "formal"})
	require.NoError(t, err)
	_, err = s.InsertOne(ctx, "things", testDoc{Name: "b", Category: "formalwear"})
	require.NoError(t, err)

	filter := bson.M{"category": primitive.Regex{Pattern: "^Formal$", Options: "i"}}
	var docs []testDoc
	require.NoError(t, s.FindAll(ctx, "things", filter, &docs))

	require.Len(t, docs, 1)
	assert.Equal(t, "formal", docs[0].Category)
}

func TestMemoryStoreExactMatchFilters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.InsertOne(ctx, "things", testDoc{Name: "a", Featured: true})
	require.NoError(t, err)
	_, err = s.InsertOne(ctx, "things", testDoc{Name: "b", Featured: false})
	require.NoError(t, err)

	var docs []testDoc
	require.NoError(t, s.FindAll(ctx, "things", bson.M{"featured": true}, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].Name)

	var one testDoc
	require.NoError(t, s.FindOne(ctx, "things", bson.M{"name": "b"}, &one))
	assert.False(t, one.Featured)
}

func TestMemoryStoreCollectionNamesLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"product", "review", "order"} {
		_, err := s.InsertOne(ctx, name, testDoc{Name: "x"})
		require.NoError(t, err)
	}

	names, err := s.CollectionNames(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, names, 2)

	all, err := s.CollectionNames(ctx, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"product", "review", "order"}, all)
}
