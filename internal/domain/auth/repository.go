package auth

import "context"

// Repository abstracts user persistence. Uniqueness is enforced by the
// store's own constraint; Create surfaces ErrUsernameTaken when a concurrent
// insert wins the race.
type Repository interface {
	CountByUsername(ctx context.Context, username string) (int64, error)
	Create(ctx context.Context, username, passwordHash string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
}
