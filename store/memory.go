package store

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store used in tests in place of a live Mongo
// connection. Documents are kept bson-encoded so the same struct tags drive
// both implementations.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string][]bson.M{}}
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}

	id := primitive.NewObjectID()
	m["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], m)
	return id, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return decodeInto(doc, out)
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) FindAll(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	outValue := reflect.ValueOf(out)
	if outValue.Kind() != reflect.Ptr || outValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("find in %s: out must be a pointer to a slice, got %T", collection, out)
	}
	sliceValue := outValue.Elem()
	sliceValue.SetLen(0)

	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		element := reflect.New(sliceValue.Type().Elem())
		if err := decodeInto(doc, element.Interface()); err != nil {
			return err
		}
		sliceValue.Set(reflect.Append(sliceValue, element.Elem()))
	}
	outValue.Elem().Set(sliceValue)
	return nil
}

func (s *MemoryStore) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Count reports how many documents in a collection match the filter.
// Test helper, not part of the Store interface.
func (s *MemoryStore) Count(collection string, filter bson.M) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n
}

func decodeInto(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// matches evaluates the subset of the Mongo filter dialect the handlers use:
// exact values and primitive.Regex patterns against string fields.
func matches(doc bson.M, filter bson.M) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok {
			return false
		}
		switch w := want.(type) {
		case primitive.Regex:
			text, ok := got.(string)
			if !ok || !regexMatch(w, text) {
				return false
			}
		default:
			if !reflect.DeepEqual(got, want) {
				return false
			}
		}
	}
	return true
}

func regexMatch(pattern primitive.Regex, text string) bool {
	expr := pattern.Pattern
	if strings.Contains(pattern.Options, "i") {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
