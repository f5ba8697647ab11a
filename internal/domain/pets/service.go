package pets

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
)

// Service exposes pet CRUD plus photo upload.
type Service interface {
	List(ctx context.Context) ([]Pet, error)
	Get(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, pet Pet) (Pet, error)
	Update(ctx context.Context, id string, pet Pet) (Pet, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, data []byte, mimeType string) (Pet, error)
}

type service struct {
	repo   Repository
	photos PhotoStorage
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(repo Repository, photos PhotoStorage, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		photos: photos,
		logger: logger.With("component", "pets.service"),
	}
}

func (s *service) List(ctx context.Context) ([]Pet, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap("store_error", "failed to list pets", err)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (Pet, error) {
	pet, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Pet{}, apperrors.Wrap("store_error", "failed to fetch pet", err)
	}
	if !found {
		return Pet{}, apperrors.Wrap("not_found", "pet not found", nil)
	}
	return pet, nil
}

func (s *service) Create(ctx context.Context, pet Pet) (Pet, error) {
	if strings.TrimSpace(pet.Name) == "" {
		return Pet{}, apperrors.Wrap("invalid_input", "Missing name in request body", nil)
	}
	pet.ID = uuid.NewString()
	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		return Pet{}, apperrors.Wrap("store_error", "failed to create pet", err)
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, pet Pet) (Pet, error) {
	pet.ID = id
	updated, found, err := s.repo.Update(ctx, pet)
	if err != nil {
		return Pet{}, apperrors.Wrap("store_error", "failed to update pet", err)
	}
	if !found {
		return Pet{}, apperrors.Wrap("not_found", "pet not found", nil)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap("store_error", "failed to delete pet", err)
	}
	if !found {
		return apperrors.Wrap("not_found", "pet not found", nil)
	}
	s.logger.Info("pet deleted", "id", id)
	return nil
}

func (s *service) UploadPhoto(ctx context.Context, id string, data []byte, mimeType string) (Pet, error) {
	if len(data) == 0 {
		return Pet{}, apperrors.Wrap("invalid_input", "photo payload is empty", nil)
	}
	pet, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return Pet{}, apperrors.Wrap("store_error", "failed to fetch pet", err)
	}
	if !found {
		return Pet{}, apperrors.Wrap("not_found", "pet not found", nil)
	}
	key := "pets/" + id + "/" + uuid.NewString()
	stored, err := s.photos.Put(ctx, key, data, mimeType)
	if err != nil {
		return Pet{}, apperrors.Wrap("store_error", "failed to store photo", err)
	}
	pet.Pic = stored.Key
	updated, _, err := s.repo.Update(ctx, pet)
	if err != nil {
		return Pet{}, apperrors.Wrap("store_error", "failed to update pet", err)
	}
	s.logger.Info("pet photo stored", "id", id, "key", stored.Key, "bytes", stored.Size)
	return updated, nil
}
