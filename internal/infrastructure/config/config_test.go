package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ordertaking-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, 5*time.Minute, cfg.Redis.PriceTTL)
		assert.Equal(t, "1.00", cfg.Catalog.DefaultPrice)
		assert.Equal(t, "log", cfg.Letters.Sender)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("ORDERTAKING_APP_PORT", "9090")
		t.Setenv("ORDERTAKING_LOG_LEVEL", "debug")
		t.Setenv("ORDERTAKING_REDIS_HOST", "redis.internal")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr())
	})

	t.Run("rejects an unknown letter sender", func(t *testing.T) {
		t.Setenv("ORDERTAKING_LETTERS_SENDER", "carrier-pigeon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "letters.sender")
	})
}
