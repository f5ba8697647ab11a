package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/pawtrack")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "env-secret", cfg.Auth.Secret)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.Equal(t, "postgres://localhost/pawtrack", cfg.Postgres.DSN)
}

func TestValidate_RequiresSecret(t *testing.T) {
	cfg := defaultConfig()
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "auth.secret")

	cfg.Auth.Secret = "some-secret"
	require.NoError(t, cfg.Validate())
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.Secret = "some-secret"
	cfg.HTTP.RateLimit.RequestsPerMinute = 0
	require.Error(t, cfg.Validate())

	cfg.HTTP.RateLimit.RequestsPerMinute = 60
	cfg.HTTP.RateLimit.Valkey.Enabled = true
	require.Error(t, cfg.Validate())

	cfg.HTTP.RateLimit.Valkey.Addr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
	require.False(t, cfg.Photos.Enabled)
}
