package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionReview is the collection a Review document lives in.
const CollectionReview = "review"

// Review defines a customer review for a product. ProductID is the wire id
// of the reviewed product, copied from the client and not checked against
// the product collection.
type Review struct {
	ProductID string     `json:"product_id" bson:"product_id" validate:"required"`
	Name      string     `json:"name" bson:"name" validate:"required"`
	Rating    int        `json:"rating" bson:"rating" validate:"required,gte=1,lte=5"`
	Comment   string     `json:"comment" bson:"comment" validate:"required"`
	CreatedAt *time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// StoredReview is a Review as read back from the store, with the
// store-assigned id surfaced as the public "id" field.
type StoredReview struct {
	ID     primitive.ObjectID `json:"id" bson:"_id"`
	Review `bson:",inline"`
}
