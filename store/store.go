// Package store abstracts the document store behind narrow interfaces so
// the services can run against MongoDB in production and an in-memory
// implementation in tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zarjin/FaceBook-Clone/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user with the email already exists.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrUnavailable wraps infrastructure failures of the underlying store.
	ErrUnavailable = errors.New("store unavailable")
)

// ProfileUpdate carries the optional profile fields of a user.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Bio       *string
	Location  *string
	Work      *string
	Education *string
}

type IdentityStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (models.User, error)
	SetAvatar(ctx context.Context, id primitive.ObjectID, url string) (models.User, error)
	SetCover(ctx context.Context, id primitive.ObjectID, url string) (models.User, error)

	// AppendPostRef records a post id on the user's denormalized post list.
	AppendPostRef(ctx context.Context, userID, postID primitive.ObjectID) error
}

type ContentStore interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)

	// AddLike and RemoveLike flip liker-set membership atomically on the
	// store side. Callers must not emulate them with read-then-write.
	AddLike(ctx context.Context, postID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error

	AppendComment(ctx context.Context, postID primitive.ObjectID, comment string) error
}
