package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"LOANBOOK_APP_NAME":             os.Getenv("LOANBOOK_APP_NAME"),
		"LOANBOOK_APP_ENV":              os.Getenv("LOANBOOK_APP_ENV"),
		"LOANBOOK_APP_PORT":             os.Getenv("LOANBOOK_APP_PORT"),
		"LOANBOOK_STORE_BACKEND":        os.Getenv("LOANBOOK_STORE_BACKEND"),
		"LOANBOOK_STORE_REDIS_HOST":     os.Getenv("LOANBOOK_STORE_REDIS_HOST"),
		"LOANBOOK_STORE_REDIS_PORT":     os.Getenv("LOANBOOK_STORE_REDIS_PORT"),
		"LOANBOOK_STORE_REDIS_PASSWORD": os.Getenv("LOANBOOK_STORE_REDIS_PASSWORD"),
		"LOANBOOK_LOG_LEVEL":            os.Getenv("LOANBOOK_LOG_LEVEL"),
		"LOANBOOK_LOG_FORMAT":           os.Getenv("LOANBOOK_LOG_FORMAT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "loanbook-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "memory", cfg.Store.Backend)
		assert.Equal(t, "localhost", cfg.Store.Redis.Host)
		assert.Equal(t, 6379, cfg.Store.Redis.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	})

	t.Run("loads values from environment variables with LOANBOOK prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("LOANBOOK_APP_NAME", "test-app")
		os.Setenv("LOANBOOK_APP_PORT", "9000")
		os.Setenv("LOANBOOK_STORE_BACKEND", "redis")
		os.Setenv("LOANBOOK_STORE_REDIS_HOST", "redis.local")
		os.Setenv("LOANBOOK_STORE_REDIS_PORT", "6380")
		os.Setenv("LOANBOOK_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "redis", cfg.Store.Backend)
		assert.Equal(t, "redis.local", cfg.Store.Redis.Host)
		assert.Equal(t, 6380, cfg.Store.Redis.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("rejects unknown store backend", func(t *testing.T) {
		clearEnv()
		os.Setenv("LOANBOOK_STORE_BACKEND", "postgres")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store.backend")
	})

	t.Run("rejects memory backend in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("LOANBOOK_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not durable")
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", r.Addr())
}

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("wildcard CORS origin rejected in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Store.Backend = "redis"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("redis backend allowed in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Store.Backend = "redis"
		assert.NoError(t, cfg.validate())
	})
}
