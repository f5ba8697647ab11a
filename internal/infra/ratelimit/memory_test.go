package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_BurstThenDeny(t *testing.T) {
	limiter := NewMemoryLimiter(60, 3)

	for i := 0; i < 3; i++ {
		require.True(t, limiter.Allow(context.Background(), "10.0.0.1"))
	}
	require.False(t, limiter.Allow(context.Background(), "10.0.0.1"))

	// A different key has its own bucket.
	require.True(t, limiter.Allow(context.Background(), "10.0.0.2"))
}
