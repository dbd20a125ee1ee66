package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/courts")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "dev")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PROD_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("SLOT_LOCK_TTL", "")
	t.Setenv("STORAGE_PATH", "/var/lib/quadras")
}

func TestFromEnvDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.SlotLockTTL)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "/var/lib/quadras", cfg.StoragePath)
}

func TestFromEnvOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PROD_ORIGINS", "https://quadras.example.com")
	t.Setenv("REQUEST_TIMEOUT", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SLOT_LOCK_TTL", "2s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 2*time.Second, cfg.SlotLockTTL)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"missing dsn", "DB_DSN", ""},
		{"missing secret", "JWT_SECRET", ""},
		{"production without origins", "APP_ENV", "prod"},
		{"timeout too short", "REQUEST_TIMEOUT", "2s"},
		{"timeout not a duration", "REQUEST_TIMEOUT", "ten"},
		{"redis db not an int", "REDIS_DB", "one"},
		{"lock ttl negative", "SLOT_LOCK_TTL", "-1s"},
		{"empty storage path", "STORAGE_PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
