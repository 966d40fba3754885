package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the identity record. The password field holds the bcrypt hash and
// is never serialized to JSON. YourPosts is a denormalized back-reference;
// the posts collection stays authoritative for ownership.
type User struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name" validate:"required"`
	Email     string               `json:"email" bson:"email" validate:"required"`
	Password  string               `json:"-" bson:"password" validate:"required"`
	Avatar    string               `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Cover     string               `json:"cover,omitempty" bson:"cover,omitempty"`
	Bio       string               `json:"bio,omitempty" bson:"bio,omitempty"`
	Location  string               `json:"location,omitempty" bson:"location,omitempty"`
	Work      string               `json:"work,omitempty" bson:"work,omitempty"`
	Education string               `json:"education,omitempty" bson:"education,omitempty"`
	YourPosts []primitive.ObjectID `json:"yourPosts" bson:"yourPosts"`
}
