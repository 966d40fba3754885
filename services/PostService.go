package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zarjin/FaceBook-Clone/log"
	"github.com/zarjin/FaceBook-Clone/models"
	"github.com/zarjin/FaceBook-Clone/store"
)

type PostService struct {
	posts store.ContentStore
	users store.IdentityStore
}

func NewPostService(posts store.ContentStore, users store.IdentityStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create inserts the post, then records it on the author's denormalized
// post list. The two writes are not transactional; the post document is
// authoritative, so a failed back-reference only logs a warning.
func (s *PostService) Create(ctx context.Context, authorID primitive.ObjectID, text, imageURL string) (models.Post, error) {
	if authorID.IsZero() || text == "" {
		return models.Post{}, ErrValidation
	}

	post, err := s.posts.CreatePost(ctx, models.Post{
		User:      authorID,
		Text:      text,
		Image:     imageURL,
		Likes:     []primitive.ObjectID{},
		Comments:  []string{},
		CreatedAt: time.Now(),
	})
	if err != nil {
		return models.Post{}, err
	}

	if err := s.users.AppendPostRef(ctx, authorID, post.ID); err != nil {
		log.Warn.Printf("post %s not recorded on user %s: %v", post.ID.Hex(), authorID.Hex(), err)
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, postID primitive.ObjectID) (models.Post, error) {
	return s.posts.FindPostByID(ctx, postID)
}

// List returns the feed newest first with author and liker references
// resolved. A dangling reference resolves to a stub user carrying only the
// id, mirroring a failed populate.
func (s *PostService) List(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := s.posts.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	cache := make(map[primitive.ObjectID]models.User)
	resolve := func(id primitive.ObjectID) (models.User, error) {
		if user, ok := cache[id]; ok {
			return user, nil
		}
		user, err := s.users.FindUserByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			user = models.User{ID: id}
		} else if err != nil {
			return models.User{}, err
		}
		cache[id] = user
		return user, nil
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		author, err := resolve(post.User)
		if err != nil {
			return nil, err
		}
		likers := make([]models.User, 0, len(post.Likes))
		for _, id := range post.Likes {
			liker, err := resolve(id)
			if err != nil {
				return nil, err
			}
			likers = append(likers, liker)
		}
		feed = append(feed, models.FeedPost{
			ID:        post.ID,
			User:      author,
			Text:      post.Text,
			Image:     post.Image,
			Likes:     likers,
			Comments:  post.Comments,
			CreatedAt: post.CreatedAt,
		})
	}
	return feed, nil
}

// ToggleLike flips the user's membership in the post's liker set. The flip
// itself is an atomic store operation, so two concurrent toggles cannot
// duplicate an entry.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID primitive.ObjectID) (string, error) {
	post, err := s.posts.FindPostByID(ctx, postID)
	if err != nil {
		return "", err
	}

	for _, id := range post.Likes {
		if id == userID {
			if err := s.posts.RemoveLike(ctx, postID, userID); err != nil {
				return "", err
			}
			return "Unliked", nil
		}
	}

	if err := s.posts.AddLike(ctx, postID, userID); err != nil {
		return "", err
	}
	return "Liked", nil
}

// AddComment appends the comment text to the post. Comments are stored as
// bare strings with no author or timestamp, matching the persisted shape.
func (s *PostService) AddComment(ctx context.Context, userID, postID primitive.ObjectID, comment string) error {
	if userID.IsZero() || comment == "" {
		return ErrValidation
	}
	if _, err := s.posts.FindPostByID(ctx, postID); err != nil {
		return err
	}
	return s.posts.AppendComment(ctx, postID, comment)
}
