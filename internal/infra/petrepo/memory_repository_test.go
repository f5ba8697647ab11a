package petrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmfrazier/pawtrack/internal/domain/pets"
)

func TestMemoryRepository_Crud(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Create(context.Background(), pets.Pet{ID: "p2", Name: "Ziggy"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), pets.Pet{ID: "p1", Name: "Arlo"})
	require.NoError(t, err)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Arlo", all[0].Name)

	got, found, err := repo.Get(context.Background(), "p2")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Ziggy", got.Name)

	updated, found, err := repo.Update(context.Background(), pets.Pet{ID: "p2", Name: "Ziggy Jr"})
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Ziggy Jr", updated.Name)

	_, found, err = repo.Update(context.Background(), pets.Pet{ID: "missing", Name: "Ghost"})
	require.NoError(t, err)
	require.False(t, found)

	deleted, err := repo.Delete(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), "p1")
	require.NoError(t, err)
	require.False(t, deleted)
}
