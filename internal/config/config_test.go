package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setGatewayURLs(t *testing.T) {
	t.Helper()
	t.Setenv("AI_CHAT_URL", "http://ai.local/chat")
	t.Setenv("AI_SUMMARY_URL", "http://ai.local/summary")
	t.Setenv("AI_MOOD_REFLECTION_URL", "http://ai.local/refleksi")
	t.Setenv("AI_REFLECTION_FEEDBACK_URL", "http://ai.local/feedback")
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadDefaults(t *testing.T) {
	setGatewayURLs(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "", cfg.HTTPBasePath)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 10.0, cfg.AI.RateLimit)
	assert.Equal(t, 5, cfg.AI.RateBurst)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	setGatewayURLs(t)
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("HTTP_BASE_PATH", "/api/")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("AI_RATE_BURST", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "/api", cfg.HTTPBasePath)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 2, cfg.AI.RateBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\nHTTP_ADDR=:9999\n"), 0o600))
	t.Setenv("HTTP_ADDR", ":7000")
	t.Setenv("LOG_LEVEL", "")
	// godotenv only fills unset variables.
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "thirty")
	t.Setenv("AI_RATE_BURST", "many")

	_, err := Load(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_TIMEOUT")
	assert.Contains(t, err.Error(), "AI_RATE_BURST")
}

func TestValidate(t *testing.T) {
	cfg := &Config{StorageDriver: "sqlite", HTTPBasePath: "api", AI: AIConfig{Timeout: time.Second}}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"sqlite", "AI_CHAT_URL", "AI_SUMMARY_URL", "AI_MOOD_REFLECTION_URL", "AI_REFLECTION_FEEDBACK_URL", "HTTP_BASE_PATH"} {
		assert.Contains(t, err.Error(), want)
	}
}
