package models

// CollectionNewsletter is the collection a Newsletter document lives in.
const CollectionNewsletter = "newsletter"

// Newsletter defines a newsletter subscription; at most one document is
// kept per email, enforced by an existence check before insert.
type Newsletter struct {
	Email string `json:"email" bson:"email" validate:"required,email"`
}
