package media

import (
	"bytes"
	"context"
	"io"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStorage is an in-memory Storage used by tests.
type MemoryStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	names   map[string]string
	baseURL string
}

func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{
		files:   make(map[string][]byte),
		names:   make(map[string]string),
		baseURL: baseURL,
	}
}

func (s *MemoryStorage) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID().Hex()

	s.mu.Lock()
	s.files[id] = data
	s.names[id] = filename
	s.mu.Unlock()

	return s.baseURL + "/media/" + id, nil
}

func (s *MemoryStorage) Open(_ context.Context, fileID string) (io.ReadCloser, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[fileID]
	if !ok {
		return nil, "", ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), s.names[fileID], nil
}
