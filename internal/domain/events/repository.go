package events

import "context"

// Repository abstracts event persistence.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id string) (Event, bool, error)
	Create(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, event Event) (Event, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
