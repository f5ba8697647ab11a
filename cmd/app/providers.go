package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/jmfrazier/pawtrack/internal/domain/auth"
	"github.com/jmfrazier/pawtrack/internal/domain/events"
	"github.com/jmfrazier/pawtrack/internal/domain/pets"
	"github.com/jmfrazier/pawtrack/internal/domain/reviews"
	"github.com/jmfrazier/pawtrack/internal/infra/config"
	"github.com/jmfrazier/pawtrack/internal/infra/eventrepo"
	"github.com/jmfrazier/pawtrack/internal/infra/petrepo"
	"github.com/jmfrazier/pawtrack/internal/infra/photostore"
	"github.com/jmfrazier/pawtrack/internal/infra/ratelimit"
	"github.com/jmfrazier/pawtrack/internal/infra/reviewrepo"
	"github.com/jmfrazier/pawtrack/internal/infra/userrepo"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

// providePostgresPool returns a ready pool, or nil when no DSN is configured
// or the database is unreachable; repositories fall back to memory then.
func providePostgresPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Postgres.MaxConns
	}
	if cfg.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repositories enabled")
	return pool
}

func provideUserRepository(pool *pgxpool.Pool) auth.Repository {
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func providePetRepository(pool *pgxpool.Pool) pets.Repository {
	if pool == nil {
		return petrepo.NewMemoryRepository()
	}
	return petrepo.NewPostgresRepository(pool)
}

func provideEventRepository(pool *pgxpool.Pool) events.Repository {
	if pool == nil {
		return eventrepo.NewMemoryRepository()
	}
	return eventrepo.NewPostgresRepository(pool)
}

func provideReviewRepository(pool *pgxpool.Pool) reviews.Repository {
	if pool == nil {
		return reviewrepo.NewMemoryRepository()
	}
	return reviewrepo.NewPostgresRepository(pool)
}

func providePhotoStorage(cfg *config.Config, logger *slog.Logger) pets.PhotoStorage {
	if !cfg.Photos.Enabled {
		return photostore.NewMemoryStorage()
	}
	storage, err := photostore.NewMinioStorage(
		cfg.Photos.Endpoint,
		cfg.Photos.AccessKey,
		cfg.Photos.SecretKey,
		cfg.Photos.Bucket,
		cfg.Photos.Region,
		logger,
	)
	if err != nil {
		logger.Error("failed to initialize photo storage, falling back to memory", "error", err)
		return photostore.NewMemoryStorage()
	}
	logger.Info("photo storage enabled", "bucket", cfg.Photos.Bucket)
	return storage
}

func provideRateLimiter(cfg *config.Config, logger *slog.Logger) ratelimit.Limiter {
	rl := cfg.HTTP.RateLimit
	if !rl.Enabled || rl.RequestsPerMinute <= 0 {
		return nil
	}
	if rl.Valkey.Enabled {
		opt, err := buildValkeyOptions(rl.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory limiter", "error", err)
			return ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory limiter", "error", err)
			return ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory limiter", "error", err)
		} else {
			logger.Info("valkey rate limiter enabled", "addr", rl.Valkey.Addr)
			return ratelimit.NewValkeyLimiter(client, "ratelimit", rl.RequestsPerMinute, logger)
		}
	}
	return ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(addr, "://") {
		opt, err = valkey.ParseURL(addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
