package events

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
)

// Service exposes event CRUD.
type Service interface {
	List(ctx context.Context) ([]Event, error)
	Get(ctx context.Context, id string) (Event, error)
	Create(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, id string, event Event) (Event, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With("component", "events.service"),
	}
}

func (s *service) List(ctx context.Context) ([]Event, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap("store_error", "failed to list events", err)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (Event, error) {
	event, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Event{}, apperrors.Wrap("store_error", "failed to fetch event", err)
	}
	if !found {
		return Event{}, apperrors.Wrap("not_found", "event not found", nil)
	}
	return event, nil
}

func (s *service) Create(ctx context.Context, event Event) (Event, error) {
	if strings.TrimSpace(event.Name) == "" {
		return Event{}, apperrors.Wrap("invalid_input", "Missing name in request body", nil)
	}
	event.ID = uuid.NewString()
	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return Event{}, apperrors.Wrap("store_error", "failed to create event", err)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, event Event) (Event, error) {
	event.ID = id
	updated, found, err := s.repo.Update(ctx, event)
	if err != nil {
		return Event{}, apperrors.Wrap("store_error", "failed to update event", err)
	}
	if !found {
		return Event{}, apperrors.Wrap("not_found", "event not found", nil)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap("store_error", "failed to delete event", err)
	}
	if !found {
		return apperrors.Wrap("not_found", "event not found", nil)
	}
	s.logger.Info("event deleted", "id", id)
	return nil
}
