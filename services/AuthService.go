// Package services holds the state-transition logic between the HTTP
// boundary and the stores.
package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zarjin/FaceBook-Clone/auth"
	"github.com/zarjin/FaceBook-Clone/models"
	"github.com/zarjin/FaceBook-Clone/store"
)

var (
	// ErrValidation is returned for missing or empty required input.
	ErrValidation = errors.New("all fields are required")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users  store.IdentityStore
	codec  *auth.PasswordCodec
	tokens *auth.TokenService
}

func NewAuthService(users store.IdentityStore, codec *auth.PasswordCodec, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, codec: codec, tokens: tokens}
}

// Register creates a user and issues a session token for it. Attaching the
// token as a cookie is the boundary's job.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, "", ErrValidation
	}

	// Friendly pre-check; the unique email index catches the race.
	_, err := s.users.FindUserByEmail(ctx, email)
	if err == nil {
		return models.User{}, "", store.ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.User{}, "", err
	}

	hashed, err := s.codec.Hash(password)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Name:      name,
		Email:     email,
		Password:  hashed,
		YourPosts: []primitive.ObjectID{},
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", ErrValidation
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", err
	}

	ok, err := s.codec.Verify(password, user.Password)
	if err != nil {
		return models.User{}, "", err
	}
	if !ok {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
