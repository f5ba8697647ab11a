package reviewrepo

import (
	"context"
	"sync"

	"github.com/jmfrazier/pawtrack/internal/domain/reviews"
)

// MemoryRepository provides an in-memory review store for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews []reviews.Review
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// List returns every stored review in insertion order.
func (r *MemoryRepository) List(_ context.Context) ([]reviews.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]reviews.Review, len(r.reviews))
	copy(out, r.reviews)
	return out, nil
}

// Create stores the review record.
func (r *MemoryRepository) Create(_ context.Context, review reviews.Review) (reviews.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return review, nil
}

var _ reviews.Repository = (*MemoryRepository)(nil)
