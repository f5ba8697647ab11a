package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("password1")
	require.NoError(t, err)
	require.NotEqual(t, "password1", hashed)
	require.True(t, strings.HasPrefix(hashed, "$2"))

	require.True(t, VerifyPassword("password1", hashed))
	require.False(t, VerifyPassword("password2", hashed))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("password1")
	require.NoError(t, err)
	second, err := HashPassword("password1")
	require.NoError(t, err)
	// Each hash carries its own salt, so equal inputs never collide.
	require.NotEqual(t, first, second)
	require.True(t, VerifyPassword("password1", first))
	require.True(t, VerifyPassword("password1", second))
}

func TestVerifyPassword_GarbageHash(t *testing.T) {
	require.False(t, VerifyPassword("password1", "not-a-bcrypt-hash"))
}
