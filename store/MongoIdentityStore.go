package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zarjin/FaceBook-Clone/models"
)

type MongoIdentityStore struct {
	users *mongo.Collection
}

func NewMongoIdentityStore(db *mongo.Database) *MongoIdentityStore {
	return &MongoIdentityStore{users: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. The pre-check in the auth
// service gives the friendly error; this index closes the race between two
// concurrent registrations of the same email.
func (s *MongoIdentityStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoIdentityStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.YourPosts == nil {
		user.YourPosts = []primitive.ObjectID{}
	}
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}

func (s *MongoIdentityStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoIdentityStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoIdentityStore) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}

func (s *MongoIdentityStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (models.User, error) {
	set := bson.M{}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Work != nil {
		set["work"] = *update.Work
	}
	if update.Education != nil {
		set["education"] = *update.Education
	}
	if len(set) == 0 {
		return s.FindUserByID(ctx, id)
	}
	return s.findOneAndSet(ctx, id, set)
}

func (s *MongoIdentityStore) SetAvatar(ctx context.Context, id primitive.ObjectID, url string) (models.User, error) {
	return s.findOneAndSet(ctx, id, bson.M{"avatar": url})
}

func (s *MongoIdentityStore) SetCover(ctx context.Context, id primitive.ObjectID, url string) (models.User, error) {
	return s.findOneAndSet(ctx, id, bson.M{"cover": url})
}

func (s *MongoIdentityStore) findOneAndSet(ctx context.Context, id primitive.ObjectID, set bson.M) (models.User, error) {
	var user models.User
	err := s.users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return user, nil
}

func (s *MongoIdentityStore) AppendPostRef(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := s.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"yourPosts": postID}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
