package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a client-supplied id is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

// ParseID converts the wire form of a document id back to its ObjectID.
func ParseID(wireID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(wireID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, wireID)
	}
	return id, nil
}

// FormatID converts a store-assigned ObjectID to its wire form.
func FormatID(id primitive.ObjectID) string {
	return id.Hex()
}
