package http

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveOrigin(t *testing.T) {
	allowed := []string{"https://app.pawtrack.dev", "https://staging.pawtrack.dev"}

	require.Equal(t, "*", resolveOrigin("https://anywhere.example", nil))
	require.Equal(t, "*", resolveOrigin("https://anywhere.example", []string{"*"}))

	require.Equal(t, "https://app.pawtrack.dev", resolveOrigin("https://app.pawtrack.dev", allowed))
	require.Equal(t, "https://APP.pawtrack.dev", resolveOrigin("https://APP.pawtrack.dev", allowed))

	// Unknown or absent origins must not be answered with someone else's.
	require.Empty(t, resolveOrigin("https://evil.example", allowed))
	require.Empty(t, resolveOrigin("", allowed))
}
