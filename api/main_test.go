package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "tasks.db", cfg.DB.DSN)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 15*time.Minute, cfg.DB.MaxIdleTime)
	assert.Empty(t, cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.False(t, cfg.RequireAuth)
	assert.Equal(t, []string{"*"}, cfg.CORS.TrustedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestParseConfigEnvironment(t *testing.T) {
	cfg, err := parseConfig(nil, map[string]string{
		"PORT":                 "8080",
		"DATABASE_URL":         "postgres://tasks@localhost/tasks?sslmode=disable",
		"JWT_SECRET":           "from-env",
		"JWT_TTL":              "1h",
		"REQUIRE_AUTH":         "true",
		"CORS_TRUSTED_ORIGINS": "https://a.example.com https://b.example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://tasks@localhost/tasks?sslmode=disable", cfg.DB.DSN)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.True(t, cfg.RequireAuth)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.TrustedOrigins)
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-port", "9000",
		"-jwt-secret", "from-flag",
		"-require-auth=false",
		"-cors-trusted-origins", "https://c.example.com",
		"-db-dsn", ":memory:",
	}, map[string]string{
		"PORT":         "8080",
		"JWT_SECRET":   "from-env",
		"REQUIRE_AUTH": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "from-flag", cfg.JWT.Secret)
	assert.False(t, cfg.RequireAuth)
	assert.Equal(t, []string{"https://c.example.com"}, cfg.CORS.TrustedOrigins)
	assert.Equal(t, ":memory:", cfg.DB.DSN)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := parseConfig(nil, map[string]string{"PORT": "not-a-number"})
	assert.ErrorContains(t, err, "parse env")

	_, err = parseConfig([]string{"-jwt-ttl", "forever"}, map[string]string{})
	assert.Error(t, err)
}
