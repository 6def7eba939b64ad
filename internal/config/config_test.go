package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, `
log-level: debug
http-port: "9191"
socket-port: "8181"
redis:
  host: redis
  port: "6380"
game:
  finished-ttl: 10m
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every value is taken from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9191", conf.HTTPPort)
		assert.Equal(t, "8181", conf.SocketPort)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 10*time.Minute, conf.Game.FinishedTTL)
	})

	t.Run("Applies defaults", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Game.FinishedTTL)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "redis:\n  host: redis\n")
		t.Setenv("REDIS_HOST", "cache")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "cache", conf.Redis.Host)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
