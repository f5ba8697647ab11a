package reviews

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
)

// Service exposes review listing and creation.
type Service interface {
	List(ctx context.Context) ([]Review, error)
	Create(ctx context.Context, review Review) (Review, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "reviews.service"),
	}
}

func (s *service) List(ctx context.Context) ([]Review, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap("store_error", "failed to list reviews", err)
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, review Review) (Review, error) {
	if strings.TrimSpace(review.Title) == "" {
		return Review{}, apperrors.Wrap("invalid_input", "Missing title in request body", nil)
	}
	review.ID = uuid.NewString()
	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return Review{}, apperrors.Wrap("store_error", "failed to create review", err)
	}
	return created, nil
}
