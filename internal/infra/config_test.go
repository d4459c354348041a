package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_TTL_MINUTES", "CORS_ALLOWED_ORIGINS", "AI_PROVIDER", "AUTO_MIGRATE", "APP_ENV"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "*", cfg.CORSAllowedOrigins)
	assert.Equal(t, "none", cfg.AIProvider)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("GEMINI_MODEL", "gemini-x")
	t.Setenv("APP_ENV", "development")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.False(t, cfg.AutoMigrate)
	assert.True(t, cfg.IsDevelopment())

	key, model := cfg.AIKey()
	assert.Equal(t, "g-key", key)
	assert.Equal(t, "gemini-x", model)
}

func TestLoadConfig_BadTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "-3")
	assert.Equal(t, 60*time.Minute, LoadConfig().JWTTTL)
}
