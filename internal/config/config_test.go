package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "CACHE_TTL_SECONDS", "CORS_ORIGINS", "STORAGE_DRIVER", "MAX_UPLOAD_BYTES", "IS_PROD"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, int64(51200), cfg.MaxUploadBytes)
	assert.False(t, cfg.IsProd)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("CACHE_TTL_SECONDS", "not-a-number")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("CONTACT_RATE_PER_MINUTE", "3")
	t.Setenv("IS_PROD", "true")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "site")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, 60, cfg.CacheTTLSeconds, "malformed values fall back")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3, cfg.ContactPerMin)
	assert.True(t, cfg.IsProd)
	assert.Equal(t, "portal:pw@tcp(db:3307)/site?parseTime=true&charset=utf8mb4", cfg.DSN())
}
