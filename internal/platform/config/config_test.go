package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/currency")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/currency", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "10-M", cfg.SeedRateLimit)
	assert.Equal(t, 1000, cfg.DetectionMaxRows)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.RequireAdminAuth)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")
	t.Setenv("REQUIRE_ADMIN_AUTH", "true")
	t.Setenv("ADMIN_SECRET_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DETECTION_MAX_ROWS", "50")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.True(t, cfg.RequireAdminAuth)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 50, cfg.DetectionMaxRows)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("DETECTION_MAX_ROWS", "-3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 1000, cfg.DetectionMaxRows)
}
