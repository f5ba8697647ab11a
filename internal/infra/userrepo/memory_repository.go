package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/jmfrazier/pawtrack/internal/domain/auth"
)

// MemoryRepository provides an in-memory user store for tests/dev.
type MemoryRepository struct {
	mu        sync.RWMutex
	users     map[int64]auth.User
	nameIndex map[string]int64
	seq       int64
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:     make(map[int64]auth.User),
		nameIndex: make(map[string]int64),
	}
}

// CountByUsername reports how many stored users hold the username.
func (r *MemoryRepository) CountByUsername(_ context.Context, username string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.nameIndex[username]; ok {
		return 1, nil
	}
	return 0, nil
}

// Create stores the user record, enforcing username uniqueness.
func (r *MemoryRepository) Create(_ context.Context, username, passwordHash string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.nameIndex[username]; exists {
		return auth.User{}, auth.ErrUsernameTaken
	}
	r.seq++
	user := auth.User{
		ID:           r.seq,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[user.ID] = user
	r.nameIndex[username] = user.ID
	return user, nil
}

// GetByUsername returns a user by username.
func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (auth.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.nameIndex[username]; ok {
		return r.users[id], true, nil
	}
	return auth.User{}, false, nil
}

var _ auth.Repository = (*MemoryRepository)(nil)
