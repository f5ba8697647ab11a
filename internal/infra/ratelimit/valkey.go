package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyLimiter is a fixed-window counter shared across instances. Each key
// gets a one-minute window; the first increment sets the window expiry.
type ValkeyLimiter struct {
	client valkey.Client
	prefix string
	limit  int64
	logger *slog.Logger
}

// NewValkeyLimiter constructs a limiter backed by a Valkey-compatible server.
func NewValkeyLimiter(client valkey.Client, prefix string, requestsPerMinute int, logger *slog.Logger) *ValkeyLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ValkeyLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(requestsPerMinute),
		logger: logger.With("component", "ratelimit.valkey"),
	}
}

// Allow increments the key's window counter and compares it to the limit.
// Backend failures fail open so a cache outage cannot take the API down.
func (l *ValkeyLimiter) Allow(ctx context.Context, key string) bool {
	windowKey := l.windowKey(key)
	count, err := l.client.Do(ctx, l.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		l.logger.Warn("rate limit counter unavailable, allowing request", "error", err)
		return true
	}
	if count == 1 {
		if err := l.client.Do(ctx, l.client.B().Expire().Key(windowKey).Seconds(60).Build()).Error(); err != nil {
			l.logger.Warn("failed to set window expiry", "error", err)
		}
	}
	return count <= l.limit
}

func (l *ValkeyLimiter) windowKey(key string) string {
	window := time.Now().Unix() / 60
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, window)
}

var _ Limiter = (*ValkeyLimiter)(nil)
