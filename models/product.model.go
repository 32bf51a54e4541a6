package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CollectionProduct is the collection a Product document lives in.
const CollectionProduct = "product"

// Product defines the structure for a catalog product. The slug is the
// client-facing lookup key and must be unique across products.
type Product struct {
	Title            string   `json:"title" bson:"title" validate:"required"`
	Slug             string   `json:"slug" bson:"slug" validate:"required"`
	Description      string   `json:"description" bson:"description" validate:"required"`
	ShortDescription string   `json:"short_description,omitempty" bson:"short_description,omitempty"`
	Price            float64  `json:"price" bson:"price" validate:"gte=0"`
	Category         string   `json:"category" bson:"category" validate:"required"`
	Colors           []string `json:"colors" bson:"colors"`
	Sizes            []int    `json:"sizes" bson:"sizes"`
	Images           []string `json:"images" bson:"images"`
	Leather          string   `json:"leather,omitempty" bson:"leather,omitempty"`
	Craftsmanship    string   `json:"craftsmanship,omitempty" bson:"craftsmanship,omitempty"`
	IsFeatured       bool     `json:"is_featured" bson:"is_featured"`
}

// Normalize replaces omitted list fields with empty lists so stored
// documents never carry null arrays.
func (p *Product) Normalize() {
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []int{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// StoredProduct is a Product as read back from the store, with the
// store-assigned id surfaced as the public "id" field.
type StoredProduct struct {
	ID      primitive.ObjectID `json:"id" bson:"_id"`
	Product `bson:",inline"`
}
