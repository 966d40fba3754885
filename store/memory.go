package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zarjin/FaceBook-Clone/models"
)

// MemoryIdentityStore is an in-memory IdentityStore used by tests. It keeps
// the same semantics as the Mongo implementation, including email
// uniqueness and set behavior for the denormalized post list.
type MemoryIdentityStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryIdentityStore() *MemoryIdentityStore {
	return &MemoryIdentityStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *MemoryIdentityStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.YourPosts == nil {
		user.YourPosts = []primitive.ObjectID{}
	}
	s.users[user.ID] = user
	return copyUser(user), nil
}

func (s *MemoryIdentityStore) FindUserByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryIdentityStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *MemoryIdentityStore) UpdateProfile(_ context.Context, id primitive.ObjectID, update ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Work != nil {
		user.Work = *update.Work
	}
	if update.Education != nil {
		user.Education = *update.Education
	}
	s.users[id] = user
	return copyUser(user), nil
}

func (s *MemoryIdentityStore) SetAvatar(_ context.Context, id primitive.ObjectID, url string) (models.User, error) {
	return s.set(id, func(u *models.User) { u.Avatar = url })
}

func (s *MemoryIdentityStore) SetCover(_ context.Context, id primitive.ObjectID, url string) (models.User, error) {
	return s.set(id, func(u *models.User) { u.Cover = url })
}

func (s *MemoryIdentityStore) set(id primitive.ObjectID, apply func(*models.User)) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	apply(&user)
	s.users[id] = user
	return copyUser(user), nil
}

func (s *MemoryIdentityStore) AppendPostRef(_ context.Context, userID, postID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.YourPosts = append(user.YourPosts, postID)
	s.users[userID] = user
	return nil
}

// MemoryContentStore is an in-memory ContentStore used by tests. AddLike
// and RemoveLike are atomic under the store mutex, matching the
// $addToSet/$pull guarantees of the Mongo implementation.
type MemoryContentStore struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]models.Post
}

func NewMemoryContentStore() *MemoryContentStore {
	return &MemoryContentStore{posts: make(map[primitive.ObjectID]models.Post)}
}

func (s *MemoryContentStore) CreatePost(_ context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []string{}
	}
	s.posts[post.ID] = post
	return copyPost(post), nil
}

func (s *MemoryContentStore) FindPostByID(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return models.Post{}, ErrNotFound
	}
	return copyPost(post), nil
}

func (s *MemoryContentStore) ListPosts(_ context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]models.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, copyPost(post))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *MemoryContentStore) AddLike(_ context.Context, postID, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return ErrNotFound
	}
	for _, id := range post.Likes {
		if id == userID {
			return nil
		}
	}
	post.Likes = append(post.Likes, userID)
	s.posts[postID] = post
	return nil
}

func (s *MemoryContentStore) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return ErrNotFound
	}
	likes := post.Likes[:0:0]
	for _, id := range post.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	post.Likes = likes
	s.posts[postID] = post
	return nil
}

func (s *MemoryContentStore) AppendComment(_ context.Context, postID primitive.ObjectID, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[postID]
	if !ok {
		return ErrNotFound
	}
	post.Comments = append(post.Comments, comment)
	s.posts[postID] = post
	return nil
}

func copyUser(user models.User) models.User {
	user.YourPosts = append([]primitive.ObjectID(nil), user.YourPosts...)
	return user
}

func copyPost(post models.Post) models.Post {
	post.Likes = append([]primitive.ObjectID(nil), post.Likes...)
	post.Comments = append([]string(nil), post.Comments...)
	return post
}
