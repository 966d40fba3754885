package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionTTL is how long an issued session token stays valid. There is no
// revocation list; logout only clears the cookie, so a retained token
// remains usable until this expiry.
const SessionTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for a bad signature, malformed payload, or
// expired token.
var ErrInvalidToken = errors.New("invalid session token")

// TokenService signs and verifies session tokens. The signing secret is
// process-wide configuration; rotating it invalidates every outstanding
// token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, ttl: SessionTTL}
}

// Issue signs a token whose subject is the user id.
func (s *TokenService) Issue(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user id.
func (s *TokenService) Verify(tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return userID, nil
}
