package pets

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
)

func TestService_CreateAndGet(t *testing.T) {
	svc := NewService(newStubRepo(), &stubPhotos{}, newTestLogger())

	created, err := svc.Create(context.Background(), Pet{
		User: "alice",
		Name: "Rex",
		Info: map[string]any{"breed": "corgi"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Rex", created.Name)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestService_CreateRequiresName(t *testing.T) {
	svc := NewService(newStubRepo(), &stubPhotos{}, newTestLogger())

	_, err := svc.Create(context.Background(), Pet{User: "alice"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestService_GetUnknown(t *testing.T) {
	svc := NewService(newStubRepo(), &stubPhotos{}, newTestLogger())

	_, err := svc.Get(context.Background(), "missing")
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestService_UpdateAndDelete(t *testing.T) {
	svc := NewService(newStubRepo(), &stubPhotos{}, newTestLogger())

	created, err := svc.Create(context.Background(), Pet{Name: "Rex"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, Pet{Name: "Rexford"})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Rexford", updated.Name)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	err = svc.Delete(context.Background(), created.ID)
	require.True(t, apperrors.IsCode(err, "not_found"))
}

func TestService_UploadPhoto(t *testing.T) {
	photos := &stubPhotos{}
	svc := NewService(newStubRepo(), photos, newTestLogger())

	created, err := svc.Create(context.Background(), Pet{Name: "Rex"})
	require.NoError(t, err)

	updated, err := svc.UploadPhoto(context.Background(), created.ID, []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	require.NotEmpty(t, updated.Pic)
	require.Equal(t, updated.Pic, photos.lastKey)
	require.Equal(t, "image/jpeg", photos.lastMime)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, updated.Pic, got.Pic)
}

func TestService_UploadPhotoEmptyBody(t *testing.T) {
	svc := NewService(newStubRepo(), &stubPhotos{}, newTestLogger())

	_, err := svc.UploadPhoto(context.Background(), "any", nil, "image/png")
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubRepo struct {
	pets map[string]Pet
}

func newStubRepo() *stubRepo {
	return &stubRepo{pets: make(map[string]Pet)}
}

func (r *stubRepo) List(context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.pets))
	for _, pet := range r.pets {
		out = append(out, pet)
	}
	return out, nil
}

func (r *stubRepo) Get(_ context.Context, id string) (Pet, bool, error) {
	pet, ok := r.pets[id]
	return pet, ok, nil
}

func (r *stubRepo) Create(_ context.Context, pet Pet) (Pet, error) {
	r.pets[pet.ID] = pet
	return pet, nil
}

func (r *stubRepo) Update(_ context.Context, pet Pet) (Pet, bool, error) {
	if _, ok := r.pets[pet.ID]; !ok {
		return Pet{}, false, nil
	}
	r.pets[pet.ID] = pet
	return pet, true, nil
}

func (r *stubRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := r.pets[id]; !ok {
		return false, nil
	}
	delete(r.pets, id)
	return true, nil
}

type stubPhotos struct {
	lastKey  string
	lastMime string
}

func (s *stubPhotos) Put(_ context.Context, key string, data []byte, mimeType string) (StoredPhoto, error) {
	s.lastKey = key
	s.lastMime = mimeType
	return StoredPhoto{Key: key, Size: int64(len(data)), MimeType: mimeType}, nil
}
