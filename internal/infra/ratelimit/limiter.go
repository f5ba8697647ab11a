package ratelimit

import "context"

// Limiter answers whether a caller identified by key may proceed. Keys are
// client IPs in practice.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}
