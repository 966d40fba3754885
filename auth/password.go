// Package auth holds the session primitives: password hashing and the
// signed session token.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHashing is returned when the hashing primitive itself fails, as
// opposed to a plain mismatch.
var ErrHashing = errors.New("password hashing failed")

// PasswordCodec hashes and verifies passwords with bcrypt. bcrypt salts
// every hash, so hashing the same plaintext twice yields different outputs
// that both verify.
type PasswordCodec struct {
	cost int
}

func NewPasswordCodec() *PasswordCodec {
	return &PasswordCodec{cost: bcrypt.DefaultCost}
}

func (c *PasswordCodec) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHashing, err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A mismatch is
// (false, nil); only a malformed stored hash produces an error.
func (c *PasswordCodec) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrHashing, err)
	}
}
