package petrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/jmfrazier/pawtrack/internal/domain/pets"
)

// MemoryRepository provides an in-memory pet store for tests/dev.
type MemoryRepository struct {
	mu   sync.RWMutex
	pets map[string]pets.Pet
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{pets: make(map[string]pets.Pet)}
}

// List returns every stored pet ordered by name.
func (r *MemoryRepository) List(_ context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]pets.Pet, 0, len(r.pets))
	for _, pet := range r.pets {
		out = append(out, pet)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Get fetches a pet by id.
func (r *MemoryRepository) Get(_ context.Context, id string) (pets.Pet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pet, ok := r.pets[id]
	return pet, ok, nil
}

// Create stores the pet record.
func (r *MemoryRepository) Create(_ context.Context, pet pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets[pet.ID] = pet
	return pet, nil
}

// Update replaces the pet record, reporting whether it existed.
func (r *MemoryRepository) Update(_ context.Context, pet pets.Pet) (pets.Pet, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[pet.ID]; !ok {
		return pets.Pet{}, false, nil
	}
	r.pets[pet.ID] = pet
	return pet, true, nil
}

// Delete removes the pet record, reporting whether it existed.
func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return false, nil
	}
	delete(r.pets, id)
	return true, nil
}

var _ pets.Repository = (*MemoryRepository)(nil)
