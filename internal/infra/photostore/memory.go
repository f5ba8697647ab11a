package photostore

import (
	"context"
	"sync"

	"github.com/jmfrazier/pawtrack/internal/domain/pets"
)

// MemoryStorage keeps photos in memory for tests/dev.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryStorage constructs an in-memory photo store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

// Put stores a photo under the key.
func (s *MemoryStorage) Put(_ context.Context, key string, data []byte, mimeType string) (pets.StoredPhoto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return pets.StoredPhoto{Key: key, Size: int64(len(data)), MimeType: mimeType}, nil
}

// Get returns a stored photo, for tests.
func (s *MemoryStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

var _ pets.PhotoStorage = (*MemoryStorage)(nil)
