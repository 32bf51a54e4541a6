package models

// CollectionContactMessage is the collection a ContactMessage document lives in.
const CollectionContactMessage = "contactmessage"

// ContactMessage defines a message sent through the contact form.
type ContactMessage struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email" bson:"email" validate:"required,email"`
	Subject string `json:"subject" bson:"subject" validate:"required"`
	Message string `json:"message" bson:"message" validate:"required"`
}
