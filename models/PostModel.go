package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the content record. Likes has set semantics (no duplicate user
// ids); comments are anonymous free text in insertion order.
type Post struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Text      string               `json:"text" bson:"text"`
	Image     string               `json:"image,omitempty" bson:"image,omitempty"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments  []string             `json:"comments" bson:"comments"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
}

// FeedPost is a Post with its author and liker references resolved to the
// referenced user records, the shape the feed endpoint returns.
type FeedPost struct {
	ID        primitive.ObjectID `json:"_id"`
	User      User               `json:"user"`
	Text      string             `json:"text"`
	Image     string             `json:"image,omitempty"`
	Likes     []User             `json:"likes"`
	Comments  []string           `json:"comments"`
	CreatedAt time.Time          `json:"createdAt"`
}
