// Package media stores uploaded files and hands back public URLs.
package media

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no stored file matches the id.
var ErrNotFound = errors.New("file not found")

// Storage is the "save file, return URL" service backing avatar, cover and
// post image uploads.
type Storage interface {
	// Save stores the file and returns its public URL.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)

	// Open streams a stored file back, returning its original filename.
	Open(ctx context.Context, fileID string) (io.ReadCloser, string, error)
}
