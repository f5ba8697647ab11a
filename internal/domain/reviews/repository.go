package reviews

import "context"

// Repository abstracts review persistence.
type Repository interface {
	List(ctx context.Context) ([]Review, error)
	Create(ctx context.Context, review Review) (Review, error)
}
