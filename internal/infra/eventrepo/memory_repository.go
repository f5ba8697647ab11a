package eventrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/jmfrazier/pawtrack/internal/domain/events"
)

// MemoryRepository provides an in-memory event store for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	events map[string]events.Event
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: make(map[string]events.Event)}
}

// List returns every stored event ordered by date then name.
func (r *MemoryRepository) List(_ context.Context) ([]events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]events.Event, 0, len(r.events))
	for _, event := range r.events {
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Get fetches an event by id.
func (r *MemoryRepository) Get(_ context.Context, id string) (events.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	return event, ok, nil
}

// Create stores the event record.
func (r *MemoryRepository) Create(_ context.Context, event events.Event) (events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = event
	return event, nil
}

// Update replaces the event record, reporting whether it existed.
func (r *MemoryRepository) Update(_ context.Context, event events.Event) (events.Event, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return events.Event{}, false, nil
	}
	r.events[event.ID] = event
	return event, true, nil
}

// Delete removes the event record, reporting whether it existed.
func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return false, nil
	}
	delete(r.events, id)
	return true, nil
}

var _ events.Repository = (*MemoryRepository)(nil)
