package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123"

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/northwind")
	t.Setenv("ANTIFORGERY_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("QUERY_TIMEOUT", "750ms")

	_, err := Load()
	// an explicit config file that does not exist is a read error
	require.Error(t, err)

	t.Setenv(ConfigFileEnv, "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://u:p@localhost:5432/northwind", cfg.DatabaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.QueryTimeout)
	assert.Equal(t, 2*time.Hour, cfg.AntiforgeryTTL)
	assert.Equal(t, 5*time.Minute, cfg.ReferenceCacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.AutoMigrate)
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := []byte("database_url: postgres://file/northwind\nantiforgery_secret: " + testSecret + "\nredis_addr: localhost:6379\nauto_migrate: true\nport: 8000\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("PORT", "8081")
	// empty variables do not shadow file values
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("AUTO_MIGRATE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/northwind", cfg.DatabaseURL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 8081, cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:              8080,
		DatabaseURL:       "postgres://x",
		AntiforgerySecret: testSecret,
		RateLimitRPS:      1,
		RateLimitBurst:    1,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }, DatabaseURLKey},
		{"short secret", func(c *Config) { c.AntiforgerySecret = "short" }, AntiforgerySecretKey},
		{"bad port", func(c *Config) { c.Port = 70000 }, PortKey},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, "rate limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
