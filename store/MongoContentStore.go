package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zarjin/FaceBook-Clone/models"
)

type MongoContentStore struct {
	posts *mongo.Collection
}

func NewMongoContentStore(db *mongo.Database) *MongoContentStore {
	return &MongoContentStore{posts: db.Collection("posts")}
}

func (s *MongoContentStore) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []string{}
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return post, nil
}

func (s *MongoContentStore) FindPostByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return post, nil
}

// ListPosts returns the feed newest first.
func (s *MongoContentStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	cursor, err := s.posts.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return posts, nil
}

// AddLike adds the user to the post's liker set with $addToSet, so a
// concurrent duplicate toggle cannot produce two entries.
func (s *MongoContentStore) AddLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	return s.updateOne(ctx, postID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (s *MongoContentStore) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	return s.updateOne(ctx, postID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (s *MongoContentStore) AppendComment(ctx context.Context, postID primitive.ObjectID, comment string) error {
	return s.updateOne(ctx, postID, bson.M{"$push": bson.M{"comments": comment}})
}

func (s *MongoContentStore) updateOne(ctx context.Context, postID primitive.ObjectID, update bson.M) error {
	res, err := s.posts.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
