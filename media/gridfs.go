package media

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// GridFSStorage keeps uploads in a GridFS bucket next to the rest of the
// data. URLs point back at this service's /media/:fileId route.
type GridFSStorage struct {
	bucket  *gridfs.Bucket
	baseURL string
}

func NewGridFSStorage(db *mongo.Database, baseURL string) (*GridFSStorage, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("opening gridfs bucket: %w", err)
	}
	return &GridFSStorage{bucket: bucket, baseURL: baseURL}, nil
}

func (s *GridFSStorage) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	fileID := primitive.NewObjectID()
	uploadStream, err := s.bucket.OpenUploadStreamWithID(fileID, filename)
	if err != nil {
		return "", fmt.Errorf("opening upload stream: %w", err)
	}
	defer uploadStream.Close()

	if _, err := io.Copy(uploadStream, r); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return s.baseURL + "/media/" + fileID.Hex(), nil
}

func (s *GridFSStorage) Open(_ context.Context, fileID string) (io.ReadCloser, string, error) {
	id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, "", ErrNotFound
	}
	stream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		return nil, "", ErrNotFound
	}
	return stream, stream.GetFile().Name, nil
}
