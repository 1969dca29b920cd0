package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("BACKEND_BASE_URL", "http://localhost:8081")
		t.Setenv("POSTGRES_HOST", "")

		c, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", c.AppPort)
		assert.Equal(t, 300*time.Millisecond, c.SuggestConfig.Debounce)
		assert.Equal(t, 4*time.Second, c.SuggestConfig.SourceTimeout)
		assert.Equal(t, 5*time.Second, c.BackendConfig.Timeout)
		assert.Equal(t, 10, c.CacheTTLMinutes)
		assert.Equal(t, "", c.RedisConfig.Addr())
		assert.Equal(t, "", c.Postgres.DSN())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("BACKEND_BASE_URL", "http://backend")
		t.Setenv("REDIS_HOST", "redis")
		t.Setenv("SUGGEST_DEBOUNCE_MS", "150")
		t.Setenv("POSTGRES_HOST", "db")
		t.Setenv("POSTGRES_PASSWORD", "p@ss")

		c, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "redis:6379", c.RedisConfig.Addr())
		assert.Equal(t, 150*time.Millisecond, c.SuggestConfig.Debounce)
		assert.Equal(t, "postgres://postgres:p%40ss@db:5432/tripfinder?sslmode=disable", c.Postgres.DSN())
	})

	t.Run("missing and malformed values are joined", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("BACKEND_BASE_URL", "")
		t.Setenv("CACHE_TTL_MINUTES", "ten")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing env: APP_ENV")
		assert.Contains(t, err.Error(), "missing env: BACKEND_BASE_URL")
		assert.Contains(t, err.Error(), "conversion failed env: CACHE_TTL_MINUTES")
	})
}
